package service

import (
	"context"
	"mathquest_backend/internal/model"
	"mathquest_backend/internal/repository"
	"mathquest_backend/internal/util"

	"gorm.io/gorm"
)

// SkillView 技能的读取视图：等级与解锁状态在这里现算，库里只有原始积分
type SkillView struct {
	SkillName model.SkillName `json:"skillName"`
	Points    int             `json:"points"`
	Level     int             `json:"currentLevel"`
	Unlocked  bool            `json:"unlocked"`
}

// MasteryService 按技能累计积分并推导等级
type MasteryService struct {
	SkillRepo    *repository.SkillRepository
	ProgressRepo *repository.ProgressRepository
	Rules        *Ruleset
	DB           *gorm.DB
}

func NewMasteryService(skillRepo *repository.SkillRepository, progressRepo *repository.ProgressRepository, rules *Ruleset, db *gorm.DB) *MasteryService {
	return &MasteryService{
		SkillRepo:    skillRepo,
		ProgressRepo: progressRepo,
		Rules:        rules,
		DB:           db,
	}
}

// awardTx 在调用方事务内给单项技能加分，返回更新后的记录
// 技能处于锁定状态时积分照常累计，锁只限制练习入口，不影响加分有效性
func (s *MasteryService) awardTx(tx *gorm.DB, studentID uint, skill model.SkillName, delta int) (*model.SkillState, error) {
	if !model.ValidSkill(skill) {
		return nil, util.ErrUnknownSkill
	}
	if err := s.SkillRepo.EnsureAll(tx, studentID); err != nil {
		return nil, err
	}

	state, err := s.SkillRepo.LockBySkill(tx, studentID, skill)
	if err != nil {
		return nil, err
	}
	state.Points += delta
	if state.Points < 0 {
		state.Points = 0
	}
	if err := tx.Save(state).Error; err != nil {
		return nil, err
	}
	return state, nil
}

// AwardSkillPoints 独立的技能加分入口（判分流程之外的来源，如教师补录）
func (s *MasteryService) AwardSkillPoints(ctx context.Context, studentID uint, skill model.SkillName, delta int) (*SkillView, error) {
	var state *model.SkillState
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		state, err = s.awardTx(tx, studentID, skill, delta)
		return err
	})
	if err != nil {
		return nil, err
	}

	view := s.viewOf(*state, s.profileOf(studentID))
	return &view, nil
}

// GetSkills 返回学生四项技能的完整视图，首次访问时懒初始化
func (s *MasteryService) GetSkills(ctx context.Context, studentID uint) ([]SkillView, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.SkillRepo.EnsureAll(tx, studentID)
	})
	if err != nil {
		return nil, err
	}

	states, err := s.SkillRepo.FindByStudent(studentID)
	if err != nil {
		return nil, err
	}

	profile := s.profileOf(studentID)
	views := make([]SkillView, 0, len(states))
	for _, state := range states {
		views = append(views, s.viewOf(state, profile))
	}
	return views, nil
}

func (s *MasteryService) viewOf(state model.SkillState, profile int) SkillView {
	cfg := s.Rules.Snapshot()
	return SkillView{
		SkillName: state.SkillName,
		Points:    state.Points,
		Level:     LevelForPoints(cfg, state.Points),
		Unlocked:  SkillUnlocked(cfg, state.SkillName, profile),
	}
}

// profileOf 解锁判定用的当前档位，未建档或未定位按 0 处理（高级技能保持锁定）
func (s *MasteryService) profileOf(studentID uint) int {
	progress, err := s.ProgressRepo.FindByStudentID(studentID)
	if err != nil {
		return 0
	}
	return progress.ProfileOrZero()
}
