package service

import (
	"context"
	"mathquest_backend/internal/model"
	"mathquest_backend/internal/repository"
	"mathquest_backend/internal/util"
	"strconv"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const leaderboardKey = "leaderboard:points"

// PointsService 积分台账：流水追加 + 余额维护 + 排行榜数据源
type PointsService struct {
	PointsRepo   *repository.PointsRepository
	ProgressRepo *repository.ProgressRepository
	Redis        *redis.Client
	DB           *gorm.DB
}

func NewPointsService(pointsRepo *repository.PointsRepository, progressRepo *repository.ProgressRepository, rdb *redis.Client, db *gorm.DB) *PointsService {
	return &PointsService{
		PointsRepo:   pointsRepo,
		ProgressRepo: progressRepo,
		Redis:        rdb,
		DB:           db,
	}
}

// applyDelta 调整余额：正数同时累计 LifetimePoints（只增不减），负数只动余额
// 余额不会为负，扣减超出余额时整笔拒绝
func applyDelta(progress *model.StudentProgress, delta int) error {
	if progress.TotalPoints+delta < 0 {
		return util.ErrInsufficientPoints
	}
	progress.TotalPoints += delta
	if delta > 0 {
		progress.LifetimePoints += delta
	}
	return nil
}

// grantTx 在调用方事务内记一笔流水并调整余额；progress 由调用方保存
func (s *PointsService) grantTx(tx *gorm.DB, progress *model.StudentProgress, delta int, reason model.PointsReason, reference string) error {
	if err := applyDelta(progress, delta); err != nil {
		return err
	}

	entry := &model.PointsEntry{
		StudentID: progress.StudentID,
		Delta:     delta,
		Reason:    reason,
		Reference: reference,
	}
	return s.PointsRepo.Create(tx, entry)
}

// AdminGrant 管理端手工发放积分（奖励补发等）
func (s *PointsService) AdminGrant(ctx context.Context, studentID uint, delta int, reference string) (*model.StudentProgress, error) {
	var progress *model.StudentProgress
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		p, err := s.ProgressRepo.LockByStudentID(tx, studentID)
		if err != nil {
			if s.ProgressRepo.IsNotFound(err) {
				return util.ErrStudentNotFound
			}
			return err
		}
		if err := s.grantTx(tx, p, delta, model.PointsReasonAdminGrant, reference); err != nil {
			return err
		}
		progress = p
		return tx.Save(p).Error
	})
	if err != nil {
		return nil, err
	}

	s.SyncLeaderboard(ctx, progress.StudentID, progress.LifetimePoints)
	return progress, nil
}

// History 积分流水分页查询
func (s *PointsService) History(studentID uint, page, limit int) ([]model.PointsEntry, int64, error) {
	return s.PointsRepo.ListByStudent(studentID, page, limit)
}

// SyncLeaderboard 以历史累计积分为榜单分值，写入是幂等的
func (s *PointsService) SyncLeaderboard(ctx context.Context, studentID uint, lifetimePoints int) {
	if s.Redis == nil {
		return
	}
	s.Redis.ZAdd(ctx, leaderboardKey, &redis.Z{
		Score:  float64(lifetimePoints),
		Member: studentID,
	})
}

// LeaderboardEntry 排行榜条目，仪表盘直接渲染
type LeaderboardEntry struct {
	Rank      int   `json:"rank"`
	StudentID uint  `json:"studentId"`
	Points    int64 `json:"points"`
}

// TopStudents 按历史累计积分取前 N 名
func (s *PointsService) TopStudents(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if s.Redis == nil {
		return []LeaderboardEntry{}, nil
	}
	zs, err := s.Redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(zs))
	for i, z := range zs {
		member, _ := z.Member.(string)
		studentID, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			Rank:      i + 1,
			StudentID: uint(studentID),
			Points:    int64(z.Score),
		})
	}
	return entries, nil
}
