package repository

import (
	"context"
	"encoding/json"
	"mathquest_backend/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const badgeCatalogCacheKey = "badges:catalog:enabled"

type BadgeRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewBadgeRepository(db *gorm.DB, rdb *redis.Client) *BadgeRepository {
	return &BadgeRepository{DB: db, Redis: rdb}
}

// ListEnabled 返回启用中的徽章目录，优先走 Redis 缓存
func (r *BadgeRepository) ListEnabled(ctx context.Context) ([]model.Badge, error) {
	if r.Redis != nil {
		if raw, err := r.Redis.Get(ctx, badgeCatalogCacheKey).Bytes(); err == nil {
			var cached []model.Badge
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	var badges []model.Badge
	err := r.DB.Where("enabled = ?", true).Order("id ASC").Find(&badges).Error
	if err != nil {
		return nil, err
	}

	if r.Redis != nil {
		if raw, err := json.Marshal(badges); err == nil {
			r.Redis.Set(ctx, badgeCatalogCacheKey, raw, 5*time.Minute)
		}
	}
	return badges, nil
}

// InvalidateCatalogCache 管理端增删改徽章后调用
func (r *BadgeRepository) InvalidateCatalogCache(ctx context.Context) {
	if r.Redis != nil {
		r.Redis.Del(ctx, badgeCatalogCacheKey)
	}
}

func (r *BadgeRepository) FindByID(id uint) (*model.Badge, error) {
	var badge model.Badge
	if err := r.DB.First(&badge, id).Error; err != nil {
		return nil, err
	}
	return &badge, nil
}

func (r *BadgeRepository) ListAll() ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Order("id ASC").Find(&badges).Error
	return badges, err
}

func (r *BadgeRepository) Create(badge *model.Badge) error {
	return r.DB.Create(badge).Error
}

func (r *BadgeRepository) Update(badge *model.Badge) error {
	return r.DB.Save(badge).Error
}

func (r *BadgeRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Badge{}, id).Error
}

// HasEarnedReference 判断徽章是否已有获得记录，有则禁止修改判定条件
func (r *BadgeRepository) HasEarnedReference(badgeID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.EarnedBadge{}).Where("badge_id = ?", badgeID).Count(&count).Error
	return count > 0, err
}

func (r *BadgeRepository) ListEarnedByStudent(studentID uint) ([]model.EarnedBadge, error) {
	var earned []model.EarnedBadge
	err := r.DB.Preload("Badge").
		Where("student_id = ?", studentID).
		Order("earned_at DESC").
		Find(&earned).Error
	return earned, err
}

// EarnedBadgeIDs 返回学生已获得的徽章 ID 集合
func (r *BadgeRepository) EarnedBadgeIDs(studentID uint) (map[uint]bool, error) {
	var ids []uint
	err := r.DB.Model(&model.EarnedBadge{}).
		Where("student_id = ?", studentID).
		Pluck("badge_id", &ids).Error
	if err != nil {
		return nil, err
	}
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (r *BadgeRepository) CreateEarned(earned *model.EarnedBadge) error {
	return r.DB.Create(earned).Error
}
