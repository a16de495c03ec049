package repository

import (
	"mathquest_backend/internal/model"

	"gorm.io/gorm"
)

type PointsRepository struct {
	DB *gorm.DB
}

func NewPointsRepository(db *gorm.DB) *PointsRepository {
	return &PointsRepository{DB: db}
}

func (r *PointsRepository) Create(tx *gorm.DB, entry *model.PointsEntry) error {
	return tx.Create(entry).Error
}

func (r *PointsRepository) ListByStudent(studentID uint, page, limit int) ([]model.PointsEntry, int64, error) {
	var entries []model.PointsEntry
	var total int64

	query := r.DB.Model(&model.PointsEntry{}).Where("student_id = ?", studentID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&entries).Error
	return entries, total, err
}
