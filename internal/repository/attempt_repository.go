package repository

import (
	"mathquest_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

// Create 写入已处理的判分记录，attempt_id 撞唯一索引说明是重放提交
func (r *AttemptRepository) Create(tx *gorm.DB, attempt *model.ProcessedAttempt) error {
	return tx.Create(attempt).Error
}

func (r *AttemptRepository) ExistsByAttemptID(attemptID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ProcessedAttempt{}).
		Where("attempt_id = ?", attemptID).
		Count(&count).Error
	return count > 0, err
}
