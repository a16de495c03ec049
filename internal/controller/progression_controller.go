package controller

import (
	"mathquest_backend/internal/service"
	"mathquest_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProgressionController struct {
	PlacementService   *service.PlacementService
	ProgressionService *service.ProgressionService
}

func NewProgressionController(placementService *service.PlacementService, progressionService *service.ProgressionService) *ProgressionController {
	return &ProgressionController{
		PlacementService:   placementService,
		ProgressionService: progressionService,
	}
}

// studentIDParam 解析路径里的学生 ID
func studentIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "Invalid student ID")
		return 0, false
	}
	return uint(id), true
}

type placementRequest struct {
	CorrectCount   int `json:"correctCount" binding:"min=0"`
	TotalQuestions int `json:"totalQuestions" binding:"required,min=1"`
}

// @Summary 定位测试结算
// @Description 根据诊断测验结果给学生分配初始档位，仅允许一次
// @Tags 进阶引擎
// @Accept json
// @Produce json
// @Param id path int true "学生ID"
// @Param result body placementRequest true "诊断结果"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response "已完成定位"
// @Router /students/{id}/placement [post]
func (c *ProgressionController) Place(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	var req placementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.CorrectCount > req.TotalQuestions {
		util.BadRequest(ctx, "correctCount exceeds totalQuestions")
		return
	}

	result, err := c.PlacementService.Place(ctx.Request.Context(), studentID, req.CorrectCount, req.TotalQuestions)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// @Summary 获取进阶档案
// @Description 学生当前档位、连败计数与积分余额
// @Tags 进阶引擎
// @Produce json
// @Param id path int true "学生ID"
// @Success 200 {object} util.Response
// @Router /students/{id}/progress [get]
func (c *ProgressionController) GetProgress(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	progress, err := c.ProgressionService.GetProgress(studentID)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary 判分结果结算
// @Description 测验子系统判分后回传，驱动档位状态机、技能积分与徽章评估
// @Tags 进阶引擎
// @Accept json
// @Produce json
// @Param id path int true "学生ID"
// @Param attempt body service.QuizGradedRequest true "判分结果"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response "attempt 已结算过"
// @Router /students/{id}/attempts [post]
func (c *ProgressionController) SubmitAttempt(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	var req service.QuizGradedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ProgressionService.OnQuizGraded(ctx.Request.Context(), studentID, req)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
