package controller

import (
	"mathquest_backend/internal/service"
	"mathquest_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PointsController struct {
	PointsService *service.PointsService
}

func NewPointsController(pointsService *service.PointsService) *PointsController {
	return &PointsController{PointsService: pointsService}
}

// @Summary 获取积分流水
// @Description 按时间倒序分页返回积分台账
// @Tags 积分
// @Produce json
// @Param id path int true "学生ID"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response
// @Router /students/{id}/points/history [get]
func (c *PointsController) History(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	entries, total, err := c.PointsService.History(studentID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: entries, Total: total, Page: page, Limit: limit})
}

// @Summary 积分排行榜
// @Description 按累计获得积分排序的前 N 名，数据来自 Redis 有序集合
// @Tags 积分
// @Produce json
// @Param limit query int false "数量" default(10)
// @Success 200 {object} util.Response
// @Router /leaderboard/points [get]
func (c *PointsController) Leaderboard(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	entries, err := c.PointsService.TopStudents(ctx.Request.Context(), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}

type grantRequest struct {
	Delta     int    `json:"delta" binding:"required"`
	Reference string `json:"reference"`
}

// @Summary 手工调整积分（管理员）
// @Description 正数发放负数扣减，余额不会为负
// @Tags 积分
// @Accept json
// @Produce json
// @Param id path int true "学生ID"
// @Param grant body grantRequest true "调整内容"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "扣减超出当前余额"
// @Router /admin/students/{id}/points/grant [post]
func (c *PointsController) Grant(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	var req grantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.PointsService.AdminGrant(ctx.Request.Context(), studentID, req.Delta, req.Reference)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}
