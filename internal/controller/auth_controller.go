package controller

import (
	"event_passport_backend/internal/service"
	"event_passport_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// LoginRequest 管理员登录
// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 管理员登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body LoginRequest true "用户名与密码"
// @Success 200 {object} service.LoginResult
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse "用户名或密码错误"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Logout godoc
// @Summary 退出登录，服务端会话立即失效
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	claims := util.GetAdminFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.AuthService.Logout(ctx.Request.Context(), claims); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Logged out"})
}

// Me godoc
// @Summary 当前管理员
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object
// @Failure 401 {object} util.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := util.GetAdminFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"username":  claims.Username,
		"role":      claims.Role,
		"expiresAt": claims.ExpiresAt.Time,
	})
}
