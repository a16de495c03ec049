package controller

import (
	"fmt"
	"mathquest_backend/internal/model"
	"mathquest_backend/internal/service"
	"mathquest_backend/internal/util"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BadgeController struct {
	BadgeService       *service.BadgeService
	ProgressionService *service.ProgressionService
	StorageService     *service.StorageService
}

func NewBadgeController(badgeService *service.BadgeService, progressionService *service.ProgressionService, storageService *service.StorageService) *BadgeController {
	return &BadgeController{
		BadgeService:       badgeService,
		ProgressionService: progressionService,
		StorageService:     storageService,
	}
}

// @Summary 获取已获得的徽章
// @Tags 徽章
// @Produce json
// @Param id path int true "学生ID"
// @Success 200 {object} util.Response
// @Router /students/{id}/badges [get]
func (c *BadgeController) ListEarned(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	earned, err := c.BadgeService.ListEarned(studentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, earned)
}

// @Summary 获取徽章目录
// @Description 所有启用中的徽章及解锁条件
// @Tags 徽章
// @Produce json
// @Success 200 {object} util.Response
// @Router /badges [get]
func (c *BadgeController) ListCatalog(ctx *gin.Context) {
	badges, err := c.BadgeService.ListCatalog()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, badges)
}

type evaluateRequest struct {
	AssignmentsCompleted int `json:"assignmentsCompleted" binding:"min=0"`
}

// @Summary 触发徽章评估
// @Description 作业批改等外部系统在计数变化后回调，返回本次新解锁的徽章
// @Tags 徽章
// @Accept json
// @Produce json
// @Param id path int true "学生ID"
// @Param counters body evaluateRequest true "外部计数"
// @Success 200 {object} util.Response
// @Router /students/{id}/badges/evaluate [post]
func (c *BadgeController) Evaluate(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	var req evaluateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	newBadges, err := c.ProgressionService.EvaluateBadges(ctx.Request.Context(), studentID, req.AssignmentsCompleted)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"newBadges": newBadges})
}

type badgeRequest struct {
	Name          string                  `json:"name" binding:"required"`
	Description   string                  `json:"description"`
	Icon          string                  `json:"icon"`
	CriteriaType  model.BadgeCriteriaType `json:"criteriaType" binding:"required"`
	CriteriaValue int                     `json:"criteriaValue" binding:"required,min=1"`
	Rarity        model.BadgeRarity       `json:"rarity"`
	Enabled       *bool                   `json:"enabled"`
}

func (r *badgeRequest) toModel() *model.Badge {
	badge := &model.Badge{
		Name:          r.Name,
		Description:   r.Description,
		Icon:          r.Icon,
		CriteriaType:  r.CriteriaType,
		CriteriaValue: r.CriteriaValue,
		Rarity:        r.Rarity,
		Enabled:       true,
	}
	if r.Rarity == "" {
		badge.Rarity = model.RarityCommon
	}
	if r.Enabled != nil {
		badge.Enabled = *r.Enabled
	}
	return badge
}

// @Summary 创建徽章（管理员）
// @Tags 徽章管理
// @Accept json
// @Produce json
// @Param badge body badgeRequest true "徽章定义"
// @Success 201 {object} util.Response
// @Router /admin/badges [post]
func (c *BadgeController) Create(ctx *gin.Context) {
	var req badgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !model.ValidCriteriaType(req.CriteriaType) {
		util.BadRequest(ctx, "invalid criteriaType")
		return
	}

	badge := req.toModel()
	if err := c.BadgeService.CreateBadge(ctx.Request.Context(), badge); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, badge)
}

// @Summary 更新徽章（管理员）
// @Description 已有学生获得该徽章时不允许修改解锁条件
// @Tags 徽章管理
// @Accept json
// @Produce json
// @Param id path int true "徽章ID"
// @Param badge body badgeRequest true "徽章定义"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response "条件已锁定"
// @Router /admin/badges/{id} [put]
func (c *BadgeController) Update(ctx *gin.Context) {
	badgeID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid badge ID")
		return
	}

	var req badgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !model.ValidCriteriaType(req.CriteriaType) {
		util.BadRequest(ctx, "invalid criteriaType")
		return
	}

	badge, err := c.BadgeService.UpdateBadge(ctx.Request.Context(), uint(badgeID), req.toModel())
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, badge)
}

// @Summary 删除徽章（管理员）
// @Tags 徽章管理
// @Produce json
// @Param id path int true "徽章ID"
// @Success 200 {object} util.Response
// @Router /admin/badges/{id} [delete]
func (c *BadgeController) Delete(ctx *gin.Context) {
	badgeID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid badge ID")
		return
	}

	if err := c.BadgeService.DeleteBadge(ctx.Request.Context(), uint(badgeID)); err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": badgeID})
}

// @Summary 上传徽章图标（管理员）
// @Tags 徽章管理
// @Accept multipart/form-data
// @Produce json
// @Param icon formData file true "图标文件"
// @Success 200 {object} util.Response
// @Router /admin/badges/icon [post]
func (c *BadgeController) UploadIcon(ctx *gin.Context) {
	file, err := ctx.FormFile("icon")
	if err != nil {
		util.BadRequest(ctx, "icon file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".webp": true, ".svg": true}
	if !allowed[ext] {
		util.BadRequest(ctx, "unsupported file type")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	filename := fmt.Sprintf("badges/%s%s", uuid.New().String(), ext)
	contentType := file.Header.Get("Content-Type")
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, file.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
