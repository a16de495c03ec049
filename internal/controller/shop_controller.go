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

type ShopController struct {
	ShopService    *service.ShopService
	StorageService *service.StorageService
}

func NewShopController(shopService *service.ShopService, storageService *service.StorageService) *ShopController {
	return &ShopController{ShopService: shopService, StorageService: storageService}
}

// @Summary 获取商店商品列表
// @Description 启用中的商品，库存 -1 表示不限量
// @Tags 商店
// @Produce json
// @Success 200 {object} util.Response
// @Router /shop/items [get]
func (c *ShopController) ListItems(ctx *gin.Context) {
	items, err := c.ShopService.ListItems()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, items)
}

// @Summary 购买商品
// @Description 扣减积分余额与库存并写入购买记录，同一商品每人限购一次
// @Tags 商店
// @Produce json
// @Param id path int true "学生ID"
// @Param itemId path int true "商品ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "积分不足"
// @Failure 409 {object} util.Response "已拥有或已售罄"
// @Router /students/{id}/shop/items/{itemId}/purchase [post]
func (c *ShopController) Purchase(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(ctx.Param("itemId"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid item ID")
		return
	}

	purchase, err := c.ShopService.Purchase(ctx.Request.Context(), studentID, uint(itemID))
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, purchase)
}

// @Summary 获取购买记录
// @Tags 商店
// @Produce json
// @Param id path int true "学生ID"
// @Success 200 {object} util.Response
// @Router /students/{id}/shop/purchases [get]
func (c *ShopController) ListPurchases(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	purchases, err := c.ShopService.ListPurchases(studentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, purchases)
}

type shopItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Cost        *int   `json:"cost" binding:"required,min=0"`
	Stock       *int   `json:"stock" binding:"required,min=-1"`
	Enabled     *bool  `json:"enabled"`
}

func (r *shopItemRequest) toModel() *model.ShopItem {
	item := &model.ShopItem{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		Cost:        *r.Cost,
		Stock:       *r.Stock,
		Enabled:     true,
	}
	if r.Enabled != nil {
		item.Enabled = *r.Enabled
	}
	return item
}

// @Summary 获取全部商品（管理员）
// @Description 含停用与售罄的商品
// @Tags 商店管理
// @Produce json
// @Success 200 {object} util.Response
// @Router /admin/shop/items [get]
func (c *ShopController) ListAllItems(ctx *gin.Context) {
	items, err := c.ShopService.ListAllItems()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, items)
}

// @Summary 创建商品（管理员）
// @Tags 商店管理
// @Accept json
// @Produce json
// @Param item body shopItemRequest true "商品定义"
// @Success 201 {object} util.Response
// @Router /admin/shop/items [post]
func (c *ShopController) CreateItem(ctx *gin.Context) {
	var req shopItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item := req.toModel()
	if err := c.ShopService.CreateItem(item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, item)
}

// @Summary 更新商品（管理员）
// @Tags 商店管理
// @Accept json
// @Produce json
// @Param id path int true "商品ID"
// @Param item body shopItemRequest true "商品定义"
// @Success 200 {object} util.Response
// @Router /admin/shop/items/{id} [put]
func (c *ShopController) UpdateItem(ctx *gin.Context) {
	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid item ID")
		return
	}

	var req shopItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.ShopService.UpdateItem(uint(itemID), req.toModel())
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, item)
}

// @Summary 删除商品（管理员）
// @Tags 商店管理
// @Produce json
// @Param id path int true "商品ID"
// @Success 200 {object} util.Response
// @Router /admin/shop/items/{id} [delete]
func (c *ShopController) DeleteItem(ctx *gin.Context) {
	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid item ID")
		return
	}

	if err := c.ShopService.DeleteItem(uint(itemID)); err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": itemID})
}

// @Summary 上传商品图片（管理员）
// @Tags 商店管理
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "图片文件"
// @Success 200 {object} util.Response
// @Router /admin/shop/items/image [post]
func (c *ShopController) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		util.BadRequest(ctx, "image file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".webp": true}
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

	filename := fmt.Sprintf("shop/%s%s", uuid.New().String(), ext)
	contentType := file.Header.Get("Content-Type")
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, file.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
