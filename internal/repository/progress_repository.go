package repository

import (
	"errors"
	"mathquest_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByStudentID(studentID uint) (*model.StudentProgress, error) {
	var progress model.StudentProgress
	err := r.DB.Where("student_id = ?", studentID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// FindOrCreate 学生首次被观察到时建档：档位为空、未定位
func (r *ProgressRepository) FindOrCreate(studentID uint) (*model.StudentProgress, error) {
	var progress model.StudentProgress
	err := r.DB.Where(model.StudentProgress{StudentID: studentID}).
		FirstOrCreate(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// LockByStudentID 在事务内按学生行加排他锁，同一学生的读改写串行化
func (r *ProgressRepository) LockByStudentID(tx *gorm.DB, studentID uint) (*model.StudentProgress, error) {
	var progress model.StudentProgress
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("student_id = ?", studentID).
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
