package service

import (
	"context"
	"mathquest_backend/internal/model"
	"mathquest_backend/internal/repository"
	"mathquest_backend/internal/util"
	"mathquest_backend/pkg/logger"
	"mathquest_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ShopService 积分商城：余额校验与购买的原子结算
type ShopService struct {
	ShopRepo     *repository.ShopRepository
	ProgressRepo *repository.ProgressRepository
	Points       *PointsService
	DB           *gorm.DB
}

func NewShopService(shopRepo *repository.ShopRepository, progressRepo *repository.ProgressRepository, points *PointsService, db *gorm.DB) *ShopService {
	return &ShopService{
		ShopRepo:     shopRepo,
		ProgressRepo: progressRepo,
		Points:       points,
		DB:           db,
	}
}

// ListItems 上架中的商品
func (s *ShopService) ListItems() ([]model.ShopItem, error) {
	return s.ShopRepo.ListEnabled()
}

// ListPurchases 学生的购买记录
func (s *ShopService) ListPurchases(studentID uint) ([]model.Purchase, error) {
	return s.ShopRepo.ListPurchasesByStudent(studentID)
}

// Purchase 购买商品：扣余额、减库存、写购买记录在同一事务内提交
// 商品行与学生行都加锁，限量商品的最后一件并发下单只会成功一单
// 失败按原因返回可区分的错误，前端据此提示
func (s *ShopService) Purchase(ctx context.Context, studentID, itemID uint) (*model.Purchase, error) {
	var purchase *model.Purchase

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.ShopRepo.LockItemByID(tx, itemID)
		if err != nil {
			return util.ErrItemNotFound
		}
		if !item.Enabled {
			return util.ErrItemNotFound
		}

		progress, err := s.ProgressRepo.LockByStudentID(tx, studentID)
		if err != nil {
			return util.ErrStudentNotFound
		}

		owned, err := s.ShopRepo.HasPurchase(tx, studentID, itemID)
		if err != nil {
			return err
		}
		if owned {
			return util.ErrAlreadyOwned
		}
		if item.Stock == 0 {
			return util.ErrOutOfStock
		}
		if progress.TotalPoints < item.Cost {
			return util.ErrInsufficientPoints
		}

		purchase = &model.Purchase{
			StudentID: studentID,
			ItemID:    itemID,
			CostPaid:  item.Cost,
		}
		if err := tx.Create(purchase).Error; err != nil {
			return err
		}

		if err := s.Points.grantTx(tx, progress, -item.Cost, model.PointsReasonShopPurchase, purchase.ID); err != nil {
			return err
		}
		if err := tx.Save(progress).Error; err != nil {
			return err
		}

		if item.Stock != model.UnlimitedStock {
			item.Stock--
			if err := tx.Save(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		monitoring.PurchaseCounter.WithLabelValues(purchaseResultLabel(err)).Inc()
		return nil, err
	}

	monitoring.PurchaseCounter.WithLabelValues("success").Inc()
	logger.Log.Info("shop purchase completed",
		zap.Uint("studentId", studentID),
		zap.Uint("itemId", itemID),
		zap.Int("costPaid", purchase.CostPaid),
	)
	return purchase, nil
}

func purchaseResultLabel(err error) string {
	switch err {
	case util.ErrAlreadyOwned:
		return "already_owned"
	case util.ErrInsufficientPoints:
		return "insufficient_points"
	case util.ErrOutOfStock:
		return "out_of_stock"
	case util.ErrItemNotFound:
		return "item_not_found"
	case util.ErrStudentNotFound:
		return "student_not_found"
	}
	return "error"
}

// 管理端商品维护

func (s *ShopService) ListAllItems() ([]model.ShopItem, error) {
	return s.ShopRepo.ListAll()
}

func (s *ShopService) CreateItem(item *model.ShopItem) error {
	return s.ShopRepo.CreateItem(item)
}

func (s *ShopService) UpdateItem(itemID uint, updated *model.ShopItem) (*model.ShopItem, error) {
	item, err := s.ShopRepo.FindItemByID(itemID)
	if err != nil {
		return nil, util.ErrItemNotFound
	}

	item.Name = updated.Name
	item.Description = updated.Description
	item.Image = updated.Image
	item.Cost = updated.Cost
	item.Stock = updated.Stock
	item.Enabled = updated.Enabled

	if err := s.ShopRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ShopService) DeleteItem(itemID uint) error {
	return s.ShopRepo.DeleteItem(itemID)
}
