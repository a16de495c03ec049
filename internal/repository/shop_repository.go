package repository

import (
	"mathquest_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShopRepository struct {
	DB *gorm.DB
}

func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{DB: db}
}

func (r *ShopRepository) ListEnabled() ([]model.ShopItem, error) {
	var items []model.ShopItem
	err := r.DB.Where("enabled = ?", true).Order("cost ASC").Find(&items).Error
	return items, err
}

func (r *ShopRepository) ListAll() ([]model.ShopItem, error) {
	var items []model.ShopItem
	err := r.DB.Order("id ASC").Find(&items).Error
	return items, err
}

func (r *ShopRepository) FindItemByID(id uint) (*model.ShopItem, error) {
	var item model.ShopItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// LockItemByID 在购买事务内对商品行加锁，限量商品的最后一件只卖一次
func (r *ShopRepository) LockItemByID(tx *gorm.DB, id uint) (*model.ShopItem, error) {
	var item model.ShopItem
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ShopRepository) CreateItem(item *model.ShopItem) error {
	return r.DB.Create(item).Error
}

func (r *ShopRepository) UpdateItem(item *model.ShopItem) error {
	return r.DB.Save(item).Error
}

func (r *ShopRepository) DeleteItem(id uint) error {
	return r.DB.Delete(&model.ShopItem{}, id).Error
}

// HasPurchase 学生是否已购买过该商品（装饰类商品不允许重复购买）
func (r *ShopRepository) HasPurchase(tx *gorm.DB, studentID, itemID uint) (bool, error) {
	var count int64
	err := tx.Model(&model.Purchase{}).
		Where("student_id = ? AND item_id = ?", studentID, itemID).
		Count(&count).Error
	return count > 0, err
}

func (r *ShopRepository) ListPurchasesByStudent(studentID uint) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.DB.Preload("Item").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&purchases).Error
	return purchases, err
}
