package service

import (
	"context"
	"mathquest_backend/internal/model"
	"mathquest_backend/internal/repository"
	"mathquest_backend/internal/util"
	"mathquest_backend/pkg/logger"
	"mathquest_backend/pkg/monitoring"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BadgeCounters 徽章判定的输入计数器快照
// 来源可以是判分流程、签到、作业批改等互不协调的路径，评估本身无状态
type BadgeCounters struct {
	QuizzesCompleted     int `json:"quizzesCompleted"`
	LoginStreak          int `json:"loginStreak"`
	PerfectScores        int `json:"perfectScores"`
	HighScores           int `json:"highScores"`
	PointsEarned         int `json:"pointsEarned"`
	AssignmentsCompleted int `json:"assignmentsCompleted"`
}

// counterFor 取出徽章判定类型对应的计数值
func counterFor(counters BadgeCounters, criteriaType model.BadgeCriteriaType) int {
	switch criteriaType {
	case model.CriteriaQuizzesCompleted:
		return counters.QuizzesCompleted
	case model.CriteriaLoginStreak:
		return counters.LoginStreak
	case model.CriteriaPerfectScores:
		return counters.PerfectScores
	case model.CriteriaHighScores:
		return counters.HighScores
	case model.CriteriaPointsEarned:
		return counters.PointsEarned
	case model.CriteriaAssignmentsCompleted:
		return counters.AssignmentsCompleted
	}
	return 0
}

// criteriaMet 达标即解锁，计数达到或超过阈值
func criteriaMet(badge model.Badge, counters BadgeCounters) bool {
	return counterFor(counters, badge.CriteriaType) >= badge.CriteriaValue
}

// BadgeService 徽章目录维护与解锁评估
type BadgeService struct {
	BadgeRepo *repository.BadgeRepository
	DB        *gorm.DB
}

func NewBadgeService(badgeRepo *repository.BadgeRepository, db *gorm.DB) *BadgeService {
	return &BadgeService{BadgeRepo: badgeRepo, DB: db}
}

// Evaluate 扫描目录中未获得的徽章，达标的全部解锁并返回
// 可重复调用：已获得的徽章不会重复判定，计数器回落也不会撤销
func (s *BadgeService) Evaluate(ctx context.Context, studentID uint, counters BadgeCounters) ([]model.Badge, error) {
	catalog, err := s.BadgeRepo.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}
	earned, err := s.BadgeRepo.EarnedBadgeIDs(studentID)
	if err != nil {
		return nil, err
	}

	newlyEarned := make([]model.Badge, 0)
	now := time.Now()
	for _, badge := range catalog {
		if earned[badge.ID] || !criteriaMet(badge, counters) {
			continue
		}

		record := &model.EarnedBadge{
			StudentID:     studentID,
			BadgeID:       badge.ID,
			EarnedAt:      now,
			CriteriaType:  badge.CriteriaType,
			CriteriaValue: badge.CriteriaValue,
		}
		if err := s.BadgeRepo.CreateEarned(record); err != nil {
			// 并发评估时撞唯一索引说明另一路已经解锁，按已获得处理
			if isDuplicateKeyError(err) {
				continue
			}
			return nil, err
		}

		monitoring.BadgeCounter.Inc()
		logger.Log.Info("badge awarded",
			zap.Uint("studentId", studentID),
			zap.Uint("badgeId", badge.ID),
			zap.String("badge", badge.Name),
		)
		newlyEarned = append(newlyEarned, badge)
	}
	return newlyEarned, nil
}

// countersFromProgress 由存量状态拼出引擎内部来源的计数器
// 作业完成数来自外部评估调用，这里恒为 0
func countersFromProgress(progress *model.StudentProgress, loginStreak int) BadgeCounters {
	return BadgeCounters{
		QuizzesCompleted: progress.QuizzesCompleted,
		LoginStreak:      loginStreak,
		PerfectScores:    progress.PerfectScores,
		HighScores:       progress.HighScores,
		PointsEarned:     progress.LifetimePoints,
	}
}

// ListEarned 学生已获得的徽章
func (s *BadgeService) ListEarned(studentID uint) ([]model.EarnedBadge, error) {
	return s.BadgeRepo.ListEarnedByStudent(studentID)
}

// ListCatalog 完整目录（管理端）
func (s *BadgeService) ListCatalog() ([]model.Badge, error) {
	return s.BadgeRepo.ListAll()
}

func (s *BadgeService) CreateBadge(ctx context.Context, badge *model.Badge) error {
	if err := s.BadgeRepo.Create(badge); err != nil {
		return err
	}
	s.BadgeRepo.InvalidateCatalogCache(ctx)
	return nil
}

// UpdateBadge 已有获得记录的徽章不允许再改判定条件，防止追溯性失效
func (s *BadgeService) UpdateBadge(ctx context.Context, badgeID uint, updated *model.Badge) (*model.Badge, error) {
	badge, err := s.BadgeRepo.FindByID(badgeID)
	if err != nil {
		return nil, util.ErrBadgeNotFound
	}

	criteriaChanged := badge.CriteriaType != updated.CriteriaType || badge.CriteriaValue != updated.CriteriaValue
	if criteriaChanged {
		referenced, err := s.BadgeRepo.HasEarnedReference(badgeID)
		if err != nil {
			return nil, err
		}
		if referenced {
			return nil, util.ErrBadgeCriteriaLocked
		}
		badge.CriteriaType = updated.CriteriaType
		badge.CriteriaValue = updated.CriteriaValue
	}

	badge.Name = updated.Name
	badge.Description = updated.Description
	badge.Icon = updated.Icon
	badge.Rarity = updated.Rarity
	badge.Enabled = updated.Enabled

	if err := s.BadgeRepo.Update(badge); err != nil {
		return nil, err
	}
	s.BadgeRepo.InvalidateCatalogCache(ctx)
	return badge, nil
}

func (s *BadgeService) DeleteBadge(ctx context.Context, badgeID uint) error {
	if err := s.BadgeRepo.Delete(badgeID); err != nil {
		return err
	}
	s.BadgeRepo.InvalidateCatalogCache(ctx)
	return nil
}

// isDuplicateKeyError MySQL 1062 / 通用唯一键冲突识别
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "duplicate key")
}
