package service

import (
	"context"
	"fmt"
	"mathquest_backend/internal/repository"
	"mathquest_backend/internal/util"
	"mathquest_backend/pkg/logger"
	"mathquest_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PlacementService 定位测试：一次性把新学生分到初始档位
type PlacementService struct {
	ProgressRepo *repository.ProgressRepository
	SkillRepo    *repository.SkillRepository
	Rules        *Ruleset
	DB           *gorm.DB
}

func NewPlacementService(progressRepo *repository.ProgressRepository, skillRepo *repository.SkillRepository, rules *Ruleset, db *gorm.DB) *PlacementService {
	return &PlacementService{
		ProgressRepo: progressRepo,
		SkillRepo:    skillRepo,
		Rules:        rules,
		DB:           db,
	}
}

// PlacementResult 定位结果
type PlacementResult struct {
	StudentID  uint    `json:"studentId"`
	Percentage float64 `json:"percentage"`
	Profile    int     `json:"profile"`
}

// Place 根据诊断测验结果确定初始档位
// 只允许执行一次，重复调用返回 ErrAlreadyPlaced 且不改动任何状态
// 定位本身不发积分
func (s *PlacementService) Place(ctx context.Context, studentID uint, correctCount, totalQuestions int) (*PlacementResult, error) {
	if totalQuestions <= 0 {
		return nil, fmt.Errorf("totalQuestions must be positive, got %d", totalQuestions)
	}
	if correctCount < 0 || correctCount > totalQuestions {
		return nil, fmt.Errorf("correctCount %d out of range [0, %d]", correctCount, totalQuestions)
	}

	cfg := s.Rules.Snapshot()
	percentage := float64(correctCount) / float64(totalQuestions) * 100
	profile := ProfileForScore(cfg, percentage)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// 首次定位时建档，随后锁行防止并发的重复定位
		if _, err := s.ProgressRepo.FindOrCreate(studentID); err != nil {
			return err
		}
		progress, err := s.ProgressRepo.LockByStudentID(tx, studentID)
		if err != nil {
			return err
		}
		if progress.PlacementDone {
			return util.ErrAlreadyPlaced
		}

		progress.CurrentProfile = &profile
		progress.PlacementDone = true
		progress.ConsecutiveFails = 0
		if err := tx.Save(progress).Error; err != nil {
			return err
		}

		return s.SkillRepo.EnsureAll(tx, studentID)
	})
	if err != nil {
		return nil, err
	}

	monitoring.PlacementCounter.Inc()
	logger.Log.Info("student placed",
		zap.Uint("studentId", studentID),
		zap.Float64("percentage", percentage),
		zap.Int("profile", profile),
	)

	return &PlacementResult{
		StudentID:  studentID,
		Percentage: percentage,
		Profile:    profile,
	}, nil
}
