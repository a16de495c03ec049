package controller

import (
	"mathquest_backend/internal/service"
	"mathquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CheckinController struct {
	CheckinService *service.CheckinService
}

func NewCheckinController(checkinService *service.CheckinService) *CheckinController {
	return &CheckinController{CheckinService: checkinService}
}

// @Summary 每日签到
// @Description 昨天有签到则连续天数 +1，连续天数参与徽章评估
// @Tags 签到
// @Produce json
// @Param id path int true "学生ID"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response "今天已签到"
// @Router /students/{id}/checkin [post]
func (c *CheckinController) Checkin(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	result, err := c.CheckinService.Checkin(ctx.Request.Context(), studentID)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// @Summary 获取签到统计
// @Description 当前连续天数与累计签到次数
// @Tags 签到
// @Produce json
// @Param id path int true "学生ID"
// @Success 200 {object} util.Response
// @Router /students/{id}/checkin/streak [get]
func (c *CheckinController) Stats(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	stats, err := c.CheckinService.Stats(studentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
