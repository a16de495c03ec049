package service

import (
	"context"
	"mathquest_backend/internal/model"
	"mathquest_backend/internal/repository"
	"mathquest_backend/internal/util"
	"mathquest_backend/pkg/logger"
	"mathquest_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProgressionService 档位状态机：消费判分结果，驱动档位、技能积分与徽章
type ProgressionService struct {
	ProgressRepo *repository.ProgressRepository
	AttemptRepo  *repository.AttemptRepository
	CheckinRepo  *repository.CheckinRepository
	Mastery      *MasteryService
	Points       *PointsService
	Badges       *BadgeService
	Rules        *Ruleset
	DB           *gorm.DB
}

func NewProgressionService(
	progressRepo *repository.ProgressRepository,
	attemptRepo *repository.AttemptRepository,
	checkinRepo *repository.CheckinRepository,
	mastery *MasteryService,
	points *PointsService,
	badges *BadgeService,
	rules *Ruleset,
	db *gorm.DB,
) *ProgressionService {
	return &ProgressionService{
		ProgressRepo: progressRepo,
		AttemptRepo:  attemptRepo,
		CheckinRepo:  checkinRepo,
		Mastery:      mastery,
		Points:       points,
		Badges:       badges,
		Rules:        rules,
		DB:           db,
	}
}

// QuizGradedRequest 测验子系统判分后的回传：得分率与按技能拆分的答对数
type QuizGradedRequest struct {
	AttemptID   string                  `json:"attemptId" binding:"required,uuid"`
	Percentage  float64                 `json:"percentage" binding:"min=0,max=100"`
	SkillPoints map[model.SkillName]int `json:"skillPoints"`
}

// QuizGradedResult 一次判分的完整作用结果
type QuizGradedResult struct {
	Transition    TransitionResult `json:"transition"`
	PointsAwarded int              `json:"pointsAwarded"`
	TotalPoints   int              `json:"totalPoints"`
	NewBadges     []model.Badge    `json:"newBadges"`
}

// OnQuizGraded 对一次判分结果做完整结算，整个读改写在单事务内按学生行串行化
// attempt_id 去重保证同一次提交重放不会二次计数
func (s *ProgressionService) OnQuizGraded(ctx context.Context, studentID uint, req QuizGradedRequest) (*QuizGradedResult, error) {
	for skill := range req.SkillPoints {
		if !model.ValidSkill(skill) {
			return nil, util.ErrUnknownSkill
		}
	}

	cfg := s.Rules.Snapshot()
	var result QuizGradedResult
	var progress *model.StudentProgress

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		p, err := s.ProgressRepo.LockByStudentID(tx, studentID)
		if err != nil {
			if s.ProgressRepo.IsNotFound(err) {
				return util.ErrStudentNotFound
			}
			return err
		}
		if !p.PlacementDone {
			return util.ErrPlacementRequired
		}

		// 学生行已锁定，先查再插没有竞态
		exists, err := s.AttemptRepo.ExistsByAttemptID(req.AttemptID)
		if err != nil {
			return err
		}
		if exists {
			return util.ErrDuplicateAttempt
		}

		result.Transition = applyTransition(p, req.Percentage, cfg)

		p.QuizzesCompleted++
		if req.Percentage >= 100 {
			p.PerfectScores++
		}
		if req.Percentage >= cfg.HighScoreThreshold {
			p.HighScores++
		}

		if reward := QuizReward(cfg, req.Percentage); reward > 0 {
			if err := s.Points.grantTx(tx, p, reward, model.PointsReasonQuizReward, req.AttemptID); err != nil {
				return err
			}
			result.PointsAwarded = reward
		}

		for skill, delta := range req.SkillPoints {
			if delta <= 0 {
				continue
			}
			if _, err := s.Mastery.awardTx(tx, studentID, skill, delta); err != nil {
				return err
			}
		}

		if err := tx.Save(p).Error; err != nil {
			return err
		}

		attempt := &model.ProcessedAttempt{
			AttemptID:  req.AttemptID,
			StudentID:  studentID,
			Percentage: req.Percentage,
			OldProfile: result.Transition.OldProfile,
			NewProfile: result.Transition.NewProfile,
			ChangeType: result.Transition.ChangeType,
		}
		if err := s.AttemptRepo.Create(tx, attempt); err != nil {
			return err
		}

		progress = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.TransitionCounter.WithLabelValues(result.Transition.ChangeType).Inc()
	logger.Log.Info("quiz attempt settled",
		zap.Uint("studentId", studentID),
		zap.String("attemptId", req.AttemptID),
		zap.Float64("percentage", req.Percentage),
		zap.Int("oldProfile", result.Transition.OldProfile),
		zap.Int("newProfile", result.Transition.NewProfile),
		zap.String("change", result.Transition.ChangeType),
	)

	result.TotalPoints = progress.TotalPoints
	s.Points.SyncLeaderboard(ctx, studentID, progress.LifetimePoints)

	// 徽章评估放在结算事务之外：计数器来源本就允许互不协调，评估自身幂等
	newBadges, err := s.Badges.Evaluate(ctx, studentID, countersFromProgress(progress, s.loginStreak(studentID)))
	if err != nil {
		logger.Log.Error("badge evaluation failed after settlement", zap.Error(err), zap.Uint("studentId", studentID))
	} else {
		result.NewBadges = newBadges
	}
	if result.NewBadges == nil {
		result.NewBadges = []model.Badge{}
	}

	return &result, nil
}

// GetProgress 读取学生进阶档案
func (s *ProgressionService) GetProgress(studentID uint) (*model.StudentProgress, error) {
	progress, err := s.ProgressRepo.FindByStudentID(studentID)
	if err != nil {
		if s.ProgressRepo.IsNotFound(err) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}
	return progress, nil
}

// loginStreak 当前有效的连续签到天数，今天或昨天有签到才算连续
func (s *ProgressionService) loginStreak(studentID uint) int {
	latest, err := s.CheckinRepo.FindLatestByStudent(studentID)
	if err != nil {
		return 0
	}
	return activeStreak(latest)
}

// EvaluateBadges 外部计数来源触发的徽章评估
// 作业批改等引擎之外的系统完成后回调，把自己维护的计数带进来
func (s *ProgressionService) EvaluateBadges(ctx context.Context, studentID uint, assignmentsCompleted int) ([]model.Badge, error) {
	progress, err := s.GetProgress(studentID)
	if err != nil {
		return nil, err
	}
	counters := countersFromProgress(progress, s.loginStreak(studentID))
	if assignmentsCompleted > counters.AssignmentsCompleted {
		counters.AssignmentsCompleted = assignmentsCompleted
	}
	return s.Badges.Evaluate(ctx, studentID, counters)
}
