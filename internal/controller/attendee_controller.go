package controller

import (
	"event_passport_backend/internal/service"
	"event_passport_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttendeeController struct {
	AttendeeService *service.AttendeeService
}

func NewAttendeeController(attendeeService *service.AttendeeService) *AttendeeController {
	return &AttendeeController{AttendeeService: attendeeService}
}

// ListAttendees godoc
// @Summary 获取参会者列表（按创建时间倒序）
// @Tags 参会者
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Attendee
// @Failure 401 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /attendees [get]
func (c *AttendeeController) ListAttendees(ctx *gin.Context) {
	attendees, err := c.AttendeeService.List(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, attendees)
}

// GetByEmail godoc
// @Summary 通过邮箱查询参会者
// @Description 邮箱不区分大小写
// @Tags 参会者
// @Produce json
// @Param email path string true "邮箱"
// @Success 200 {object} model.Attendee
// @Failure 404 {object} util.ErrorResponse
// @Router /attendees/email/{email} [get]
func (c *AttendeeController) GetByEmail(ctx *gin.Context) {
	attendee, err := c.AttendeeService.GetByEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, attendee)
}

// GetVisits godoc
// @Summary 获取参会者及其访问历史
// @Tags 参会者
// @Produce json
// @Param id path string true "参会者ID"
// @Success 200 {object} service.AttendeeVisits
// @Failure 404 {object} util.ErrorResponse
// @Router /attendees/{id}/visits [get]
func (c *AttendeeController) GetVisits(ctx *gin.Context) {
	result, err := c.AttendeeService.GetWithVisits(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// GetStats godoc
// @Summary 参会者完成情况
// @Tags 参会者
// @Produce json
// @Param id path string true "参会者ID"
// @Success 200 {object} service.AttendeeStats
// @Failure 404 {object} util.ErrorResponse
// @Router /attendees/{id}/stats [get]
func (c *AttendeeController) GetStats(ctx *gin.Context) {
	stats, err := c.AttendeeService.Stats(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// CreateAttendee godoc
// @Summary 登记参会者
// @Tags 参会者
// @Accept json
// @Produce json
// @Param body body service.AttendeeData true "参会者信息"
// @Success 201 {object} model.Attendee
// @Failure 400 {object} util.ErrorResponse "参数错误或邮箱已存在"
// @Router /attendees [post]
func (c *AttendeeController) CreateAttendee(ctx *gin.Context) {
	var req service.AttendeeData
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attendee, err := c.AttendeeService.Create(ctx.Request.Context(), &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, attendee)
}
