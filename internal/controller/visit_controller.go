package controller

import (
	"event_passport_backend/internal/service"
	"event_passport_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VisitController struct {
	CheckinService  *service.CheckinService
	StatsService    *service.StatsService
	AttendeeService *service.AttendeeService
	VisitService    *service.VisitService
}

func NewVisitController(
	checkinService *service.CheckinService,
	statsService *service.StatsService,
	attendeeService *service.AttendeeService,
	visitService *service.VisitService,
) *VisitController {
	return &VisitController{
		CheckinService:  checkinService,
		StatsService:    statsService,
		AttendeeService: attendeeService,
		VisitService:    visitService,
	}
}

// Checkin godoc
// @Summary 展位签到
// @Description 按扫码令牌定位展位，登记参会者，有题目时判分（70 分及以上视为完成）
// @Tags 访问
// @Accept json
// @Produce json
// @Param body body service.CheckinRequest true "签到信息"
// @Success 200 {object} service.CheckinResult
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse "展位不存在或已停用"
// @Failure 500 {object} util.ErrorResponse
// @Router /visits/checkin [post]
func (c *VisitController) Checkin(ctx *gin.Context) {
	var req service.CheckinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.CheckinService.Checkin(ctx.Request.Context(), &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Rate godoc
// @Summary 为已完成的访问评分
// @Tags 访问
// @Accept json
// @Produce json
// @Param id path string true "访问ID"
// @Param body body service.RateRequest true "评分 1-5 及可选评论"
// @Success 200 {object} service.RateResult
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /visits/{id}/rate [post]
func (c *VisitController) Rate(ctx *gin.Context) {
	var req service.RateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.CheckinService.RateVisit(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// GetStats godoc
// @Summary 汇总统计
// @Tags 访问
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Stats
// @Failure 401 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /visits/stats [get]
func (c *VisitController) GetStats(ctx *gin.Context) {
	stats, err := c.StatsService.GetStats(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// ListVisits godoc
// @Summary 获取全部访问记录
// @Tags 访问
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Visit
// @Failure 401 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /visits [get]
func (c *VisitController) ListVisits(ctx *gin.Context) {
	visits, err := c.VisitService.ListAll(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, visits)
}

// ListAttendeeVisits godoc
// @Summary 获取某位参会者的访问历史
// @Tags 访问
// @Produce json
// @Param attendeeId path string true "参会者ID"
// @Success 200 {array} model.Visit
// @Failure 500 {object} util.ErrorResponse
// @Router /visits/attendee/{attendeeId} [get]
func (c *VisitController) ListAttendeeVisits(ctx *gin.Context) {
	visits, err := c.AttendeeService.ListVisits(ctx.Request.Context(), ctx.Param("attendeeId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, visits)
}
