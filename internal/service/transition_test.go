package service

import (
	"testing"

	"mathquest_backend/internal/config"
	"mathquest_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProgressionConfig() config.ProgressionConfig {
	cfg := config.ProgressionConfig{
		AdvanceThreshold:     70,
		FailThreshold:        50,
		DemoteStreak:         6,
		HighScoreThreshold:   90,
		MinProfile:           1,
		MaxProfile:           10,
		SkillUnlockProfile:   6,
		SkillLevelThresholds: []int{0, 25, 50, 100, 200, 400},
		QuizBasePoints:       10,
		PerfectBonusPoints:   5,
	}
	for i := 0; i < 10; i++ {
		cfg.PlacementBands = append(cfg.PlacementBands, config.PlacementBand{
			MinPercent: float64(i * 10),
			Profile:    i + 1,
		})
	}
	return cfg
}

func progressAt(profile, fails int) *model.StudentProgress {
	return &model.StudentProgress{CurrentProfile: &profile, ConsecutiveFails: fails}
}

func TestApplyTransition(t *testing.T) {
	cfg := testProgressionConfig()

	tests := []struct {
		name       string
		profile    int
		fails      int
		percentage float64
		wantNew    int
		wantChange string
		wantFails  int
	}{
		{"advance at threshold", 5, 0, 70, 6, ChangeAdvance, 0},
		{"advance above threshold", 5, 0, 100, 6, ChangeAdvance, 0},
		{"advance resets streak", 5, 5, 85, 6, ChangeAdvance, 0},
		{"advance clamped at top", 10, 0, 95, 10, ChangeNone, 0},
		{"pass resets streak", 5, 5, 50, 5, ChangeNone, 0},
		{"pass just below advance", 5, 0, 69.9, 5, ChangeNone, 0},
		{"fail increments streak", 5, 0, 49.9, 5, ChangeNone, 1},
		{"fail below demote trigger", 5, 4, 20, 5, ChangeNone, 5},
		{"sixth fail demotes", 5, 5, 20, 4, ChangeDemote, 0},
		{"demote clamped at bottom", 1, 5, 0, 1, ChangeDemote, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := progressAt(tt.profile, tt.fails)
			result := applyTransition(progress, tt.percentage, cfg)

			assert.Equal(t, tt.profile, result.OldProfile)
			assert.Equal(t, tt.wantNew, result.NewProfile)
			assert.Equal(t, tt.wantChange, result.ChangeType)
			assert.Equal(t, tt.wantNew, progress.ProfileOrZero())
			assert.Equal(t, tt.wantFails, progress.ConsecutiveFails)
		})
	}
}

// 连续低分的完整序列：第 6 次才降档，期间档位保持不变
func TestApplyTransition_FailSequence(t *testing.T) {
	cfg := testProgressionConfig()
	progress := progressAt(5, 0)

	for i := 1; i <= 5; i++ {
		result := applyTransition(progress, 30, cfg)
		require.Equal(t, ChangeNone, result.ChangeType, "fail %d", i)
		require.Equal(t, 5, progress.ProfileOrZero())
		require.Equal(t, i, progress.ConsecutiveFails)
	}

	result := applyTransition(progress, 30, cfg)
	assert.Equal(t, ChangeDemote, result.ChangeType)
	assert.Equal(t, 4, progress.ProfileOrZero())
	assert.Equal(t, 0, progress.ConsecutiveFails)
}

// 连败途中一次及格清零计数，之后重新累计
func TestApplyTransition_PassBreaksStreak(t *testing.T) {
	cfg := testProgressionConfig()
	progress := progressAt(3, 5)

	applyTransition(progress, 55, cfg)
	require.Equal(t, 0, progress.ConsecutiveFails)

	result := applyTransition(progress, 10, cfg)
	assert.Equal(t, ChangeNone, result.ChangeType)
	assert.Equal(t, 3, progress.ProfileOrZero())
	assert.Equal(t, 1, progress.ConsecutiveFails)
}

// 任意长的混合判分序列都不能把档位推出 [1,10]
func TestApplyTransition_ProfileStaysInRange(t *testing.T) {
	cfg := testProgressionConfig()
	percentages := []float64{95, 10, 0, 80, 45, 100, 30, 30, 30, 30, 30, 30, 60, 5}

	for _, start := range []int{1, 5, 10} {
		progress := progressAt(start, 0)
		for i := 0; i < 100; i++ {
			result := applyTransition(progress, percentages[i%len(percentages)], cfg)
			require.GreaterOrEqual(t, result.NewProfile, cfg.MinProfile)
			require.LessOrEqual(t, result.NewProfile, cfg.MaxProfile)
			require.Equal(t, result.NewProfile, progress.ProfileOrZero())
		}
	}
}
