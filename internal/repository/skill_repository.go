package repository

import (
	"mathquest_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SkillRepository struct {
	DB *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

// EnsureAll 懒初始化：首次访问时四项技能各建一条 0 分记录
func (r *SkillRepository) EnsureAll(tx *gorm.DB, studentID uint) error {
	for _, skill := range model.AllSkills {
		state := model.SkillState{StudentID: studentID, SkillName: skill}
		err := tx.Where(model.SkillState{StudentID: studentID, SkillName: skill}).
			FirstOrCreate(&state).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *SkillRepository) FindByStudent(studentID uint) ([]model.SkillState, error) {
	var states []model.SkillState
	err := r.DB.Where("student_id = ?", studentID).
		Order("id ASC").
		Find(&states).Error
	return states, err
}

// LockBySkill 在事务内锁定单条技能记录
func (r *SkillRepository) LockBySkill(tx *gorm.DB, studentID uint, skill model.SkillName) (*model.SkillState, error) {
	var state model.SkillState
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("student_id = ? AND skill_name = ?", studentID, skill).
		First(&state).Error
	if err != nil {
		return nil, err
	}
	return &state, nil
}
