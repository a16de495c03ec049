package service

import (
	"context"
	"mathquest_backend/internal/model"
	"mathquest_backend/internal/repository"
	"mathquest_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// CheckinService 每日签到，连续天数作为 login_streak 徽章的计数来源
type CheckinService struct {
	CheckinRepo  *repository.CheckinRepository
	ProgressRepo *repository.ProgressRepository
	Badges       *BadgeService
	DB           *gorm.DB
}

func NewCheckinService(checkinRepo *repository.CheckinRepository, progressRepo *repository.ProgressRepository, badges *BadgeService, db *gorm.DB) *CheckinService {
	return &CheckinService{
		CheckinRepo:  checkinRepo,
		ProgressRepo: progressRepo,
		Badges:       badges,
		DB:           db,
	}
}

// CheckinResult 签到结果，附带本次触发的新徽章
type CheckinResult struct {
	Checkin   *model.Checkin `json:"checkin"`
	NewBadges []model.Badge  `json:"newBadges"`
}

// Checkin 当日签到；昨天有签到则连续天数 +1，否则重新从 1 开始
func (s *CheckinService) Checkin(ctx context.Context, studentID uint) (*CheckinResult, error) {
	now := time.Now()

	if _, err := s.CheckinRepo.FindByStudentAndDate(studentID, now); err == nil {
		return nil, util.ErrAlreadyCheckedIn
	}

	streak := 1
	if latest, err := s.CheckinRepo.FindLatestByStudent(studentID); err == nil {
		if checkedInOn(latest.CheckinAt, now.AddDate(0, 0, -1)) {
			streak = latest.StreakDays + 1
		}
	}

	checkin := &model.Checkin{
		StudentID:   studentID,
		CheckinAt:   now,
		CheckinDate: model.DateKey(now),
		StreakDays:  streak,
	}
	if err := s.CheckinRepo.Create(checkin); err != nil {
		// 并发签到撞唯一索引，另一路已经落库，当作重复签到处理
		if isDuplicateKeyError(err) {
			return nil, util.ErrAlreadyCheckedIn
		}
		return nil, err
	}

	result := &CheckinResult{Checkin: checkin, NewBadges: []model.Badge{}}

	// 签到是 login_streak 的唯一来源，顺手做一轮徽章评估
	if progress, err := s.ProgressRepo.FindByStudentID(studentID); err == nil {
		if badges, err := s.Badges.Evaluate(ctx, studentID, countersFromProgress(progress, streak)); err == nil {
			result.NewBadges = badges
		}
	}
	return result, nil
}

// CheckinStats 签到统计
type CheckinStats struct {
	TotalCheckins int64 `json:"totalCheckins"`
	CurrentStreak int   `json:"currentStreak"`
}

// Stats 总次数与当前有效连续天数
func (s *CheckinService) Stats(studentID uint) (*CheckinStats, error) {
	total, err := s.CheckinRepo.CountByStudent(studentID)
	if err != nil {
		return nil, err
	}

	stats := &CheckinStats{TotalCheckins: total}
	if latest, err := s.CheckinRepo.FindLatestByStudent(studentID); err == nil {
		stats.CurrentStreak = activeStreak(latest)
	}
	return stats, nil
}

// activeStreak 连续天数的有效性：最近一次签到在今天或昨天才算仍在连续
func activeStreak(latest *model.Checkin) int {
	if latest == nil {
		return 0
	}
	now := time.Now()
	if checkedInOn(latest.CheckinAt, now) || checkedInOn(latest.CheckinAt, now.AddDate(0, 0, -1)) {
		return latest.StreakDays
	}
	return 0
}

func checkedInOn(checkinAt, day time.Time) bool {
	y1, m1, d1 := checkinAt.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
