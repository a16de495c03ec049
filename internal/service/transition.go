package service

import (
	"mathquest_backend/internal/config"
	"mathquest_backend/internal/model"
)

// ChangeType 档位变化类型
const (
	ChangeAdvance = "advance"
	ChangeDemote  = "demote"
	ChangeNone    = "none"
)

// TransitionResult 一次判分对档位状态机的作用结果
type TransitionResult struct {
	OldProfile int    `json:"oldProfile"`
	NewProfile int    `json:"newProfile"`
	ChangeType string `json:"changeType"`
}

// applyTransition 档位状态机的纯归约函数：
//   - 得分率 >= advance_threshold：清零连败，未到顶档则升一档
//   - 得分率 >= fail_threshold：清零连败，档位不变
//   - 否则连败 +1，攒满 demote_streak 次降一档并清零
//
// 档位始终被钳制在 [min_profile, max_profile] 内
func applyTransition(progress *model.StudentProgress, percentage float64, cfg config.ProgressionConfig) TransitionResult {
	old := progress.ProfileOrZero()
	result := TransitionResult{OldProfile: old, NewProfile: old, ChangeType: ChangeNone}

	switch {
	case percentage >= cfg.AdvanceThreshold:
		progress.ConsecutiveFails = 0
		if old < cfg.MaxProfile {
			next := old + 1
			progress.CurrentProfile = &next
			result.NewProfile = next
			result.ChangeType = ChangeAdvance
		}
	case percentage >= cfg.FailThreshold:
		progress.ConsecutiveFails = 0
	default:
		progress.ConsecutiveFails++
		if progress.ConsecutiveFails >= cfg.DemoteStreak {
			progress.ConsecutiveFails = 0
			next := old - 1
			if next < cfg.MinProfile {
				next = cfg.MinProfile
			}
			progress.CurrentProfile = &next
			result.NewProfile = next
			result.ChangeType = ChangeDemote
		}
	}
	return result
}
