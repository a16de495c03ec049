package service

import (
	"testing"

	"mathquest_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileForScore(t *testing.T) {
	cfg := testProgressionConfig()

	tests := []struct {
		percentage float64
		want       int
	}{
		{0, 1},
		{9.9, 1},
		{10, 2},
		{35, 4},
		{50, 6},
		{89.9, 9},
		{90, 10},
		{100, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ProfileForScore(cfg, tt.percentage), "percentage %v", tt.percentage)
	}
}

func TestLevelForPoints(t *testing.T) {
	cfg := testProgressionConfig()

	tests := []struct {
		points int
		want   int
	}{
		{0, 0},
		{24, 0},
		{25, 1},
		{49, 1},
		{50, 2},
		{100, 3},
		{200, 4},
		{399, 4},
		{400, 5},
		{100000, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForPoints(cfg, tt.points), "points %d", tt.points)
	}
}

func TestSkillUnlocked(t *testing.T) {
	cfg := testProgressionConfig()

	tests := []struct {
		skill   model.SkillName
		profile int
		want    bool
	}{
		{model.SkillAddition, 1, true},
		{model.SkillSubtraction, 1, true},
		{model.SkillMultiplication, 5, false},
		{model.SkillMultiplication, 6, true},
		{model.SkillDivision, 5, false},
		{model.SkillDivision, 10, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SkillUnlocked(cfg, tt.skill, tt.profile), "%s at profile %d", tt.skill, tt.profile)
	}
}

func TestQuizReward(t *testing.T) {
	cfg := testProgressionConfig()

	tests := []struct {
		percentage float64
		want       int
	}{
		{0, 0},
		{49.9, 0},
		{50, 10},
		{99.9, 10},
		{100, 15},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, QuizReward(cfg, tt.percentage), "percentage %v", tt.percentage)
	}
}

// 非法的新配置被拒绝，旧阈值表保持生效
func TestRulesetUpdate_RejectsInvalid(t *testing.T) {
	rules := NewRuleset(testProgressionConfig())

	bad := testProgressionConfig()
	bad.FailThreshold = 80

	err := rules.Update(bad)
	require.Error(t, err)
	assert.Equal(t, 50.0, rules.Snapshot().FailThreshold)

	good := testProgressionConfig()
	good.AdvanceThreshold = 75
	require.NoError(t, rules.Update(good))
	assert.Equal(t, 75.0, rules.Snapshot().AdvanceThreshold)
}
