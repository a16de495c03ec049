package controller

import (
	"mathquest_backend/internal/model"
	"mathquest_backend/internal/service"
	"mathquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SkillController struct {
	MasteryService *service.MasteryService
}

func NewSkillController(masteryService *service.MasteryService) *SkillController {
	return &SkillController{MasteryService: masteryService}
}

// @Summary 获取技能掌握度
// @Description 四项技能的积分、等级与解锁状态；解锁状态由当前档位实时推导
// @Tags 技能
// @Produce json
// @Param id path int true "学生ID"
// @Success 200 {object} util.Response
// @Router /students/{id}/skills [get]
func (c *SkillController) GetSkills(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	skills, err := c.MasteryService.GetSkills(ctx.Request.Context(), studentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, skills)
}

type skillAwardRequest struct {
	SkillName model.SkillName `json:"skillName" binding:"required"`
	Points    int             `json:"points" binding:"required,min=1"`
}

// @Summary 手工补录技能积分
// @Description 管理端给指定技能加分（判分流程之外的来源）
// @Tags 技能
// @Accept json
// @Produce json
// @Param id path int true "学生ID"
// @Param award body skillAwardRequest true "加分内容"
// @Success 200 {object} util.Response
// @Router /admin/students/{id}/skills/award [post]
func (c *SkillController) AwardPoints(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	var req skillAwardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.MasteryService.AwardSkillPoints(ctx.Request.Context(), studentID, req.SkillName, req.Points)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, view)
}
