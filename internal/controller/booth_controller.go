package controller

import (
	"event_passport_backend/internal/service"
	"event_passport_backend/internal/util"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BoothController 展位目录
type BoothController struct {
	BoothService *service.BoothService
}

func NewBoothController(boothService *service.BoothService) *BoothController {
	return &BoothController{BoothService: boothService}
}

// ListBooths godoc
// @Summary 获取启用中的展位列表
// @Tags 展位
// @Produce json
// @Success 200 {array} model.Booth
// @Failure 500 {object} util.ErrorResponse
// @Router /booths [get]
func (c *BoothController) ListBooths(ctx *gin.Context) {
	booths, err := c.BoothService.ListActive(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, booths)
}

// GetBoothByQRCode godoc
// @Summary 通过扫码令牌获取展位
// @Tags 展位
// @Produce json
// @Param token path string true "扫码令牌"
// @Success 200 {object} model.Booth
// @Failure 404 {object} util.ErrorResponse "展位不存在或已停用"
// @Router /booths/qr/{token} [get]
func (c *BoothController) GetBoothByQRCode(ctx *gin.Context) {
	booth, err := c.BoothService.GetByQRCode(ctx.Request.Context(), ctx.Param("token"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, booth)
}

// GetBooth godoc
// @Summary 通过 ID 获取展位（包含已停用）
// @Tags 展位
// @Produce json
// @Security BearerAuth
// @Param id path string true "展位ID"
// @Success 200 {object} model.Booth
// @Failure 401 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /booths/{id} [get]
func (c *BoothController) GetBooth(ctx *gin.Context) {
	booth, err := c.BoothService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, booth)
}

// CreateBooth godoc
// @Summary 创建展位
// @Description 自动生成扫码令牌；hasQuestions 为 false 时忽略题目
// @Tags 展位
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateBoothRequest true "展位信息"
// @Success 201 {object} model.Booth
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /booths [post]
func (c *BoothController) CreateBooth(ctx *gin.Context) {
	var req service.CreateBoothRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	booth, err := c.BoothService.Create(ctx.Request.Context(), &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, booth)
}

// UpdateBooth godoc
// @Summary 更新展位
// @Description 只修改请求中出现的字段，questions 整体替换
// @Tags 展位
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "展位ID"
// @Param body body service.UpdateBoothRequest true "需要修改的字段"
// @Success 200 {object} model.Booth
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /booths/{id} [put]
func (c *BoothController) UpdateBooth(ctx *gin.Context) {
	var req service.UpdateBoothRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	booth, err := c.BoothService.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, booth)
}

// DeleteBooth godoc
// @Summary 停用展位（软删除）
// @Tags 展位
// @Produce json
// @Security BearerAuth
// @Param id path string true "展位ID"
// @Success 200 {object} model.Booth
// @Failure 404 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /booths/{id} [delete]
func (c *BoothController) DeleteBooth(ctx *gin.Context) {
	booth, err := c.BoothService.SoftDelete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, booth)
}

// GetQRCode godoc
// @Summary 渲染展位二维码
// @Description 返回 PNG data URL，停用的展位同样可以渲染
// @Tags 展位
// @Produce json
// @Param token path string true "扫码令牌"
// @Success 200 {object} service.QRCodeResult
// @Failure 404 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /booths/{token}/qr [get]
func (c *BoothController) GetQRCode(ctx *gin.Context) {
	result, err := c.BoothService.QRCode(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// GetPoster godoc
// @Summary 下载展位海报
// @Tags 展位
// @Produce application/pdf
// @Security BearerAuth
// @Param token path string true "扫码令牌"
// @Success 200 {file} binary
// @Failure 404 {object} util.ErrorResponse
// @Router /booths/{token}/poster [get]
func (c *BoothController) GetPoster(ctx *gin.Context) {
	_, pdf, err := c.BoothService.Poster(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("inline; filename=\"booth-%s.pdf\"", ctx.Param("id")))
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}
