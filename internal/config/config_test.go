package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressionDefaults(t *testing.T) {
	var p ProgressionConfig
	p.applyDefaults()

	assert.Equal(t, 70.0, p.AdvanceThreshold)
	assert.Equal(t, 50.0, p.FailThreshold)
	assert.Equal(t, 6, p.DemoteStreak)
	assert.Equal(t, 90.0, p.HighScoreThreshold)
	assert.Equal(t, 1, p.MinProfile)
	assert.Equal(t, 10, p.MaxProfile)
	assert.Equal(t, 6, p.SkillUnlockProfile)
	assert.Equal(t, []int{0, 25, 50, 100, 200, 400}, p.SkillLevelThresholds)
	assert.Equal(t, 10, p.QuizBasePoints)
	assert.Equal(t, 5, p.PerfectBonusPoints)

	require.Len(t, p.PlacementBands, 10)
	assert.Equal(t, 0.0, p.PlacementBands[0].MinPercent)
	assert.Equal(t, 1, p.PlacementBands[0].Profile)
	assert.Equal(t, 90.0, p.PlacementBands[9].MinPercent)
	assert.Equal(t, 10, p.PlacementBands[9].Profile)

	require.NoError(t, p.Validate())
}

func TestProgressionValidate(t *testing.T) {
	valid := func() ProgressionConfig {
		var p ProgressionConfig
		p.applyDefaults()
		return p
	}

	tests := []struct {
		name   string
		mutate func(*ProgressionConfig)
	}{
		{"fail above advance", func(p *ProgressionConfig) { p.FailThreshold = 80 }},
		{"zero demote streak", func(p *ProgressionConfig) { p.DemoteStreak = 0 }},
		{"inverted profile range", func(p *ProgressionConfig) { p.MaxProfile = 1 }},
		{"empty thresholds", func(p *ProgressionConfig) { p.SkillLevelThresholds = nil }},
		{"empty bands", func(p *ProgressionConfig) { p.PlacementBands = nil }},
		{"thresholds not ascending", func(p *ProgressionConfig) { p.SkillLevelThresholds = []int{0, 50, 25} }},
		{"thresholds not starting at zero", func(p *ProgressionConfig) { p.SkillLevelThresholds = []int{10, 25} }},
		{"bands not covering zero", func(p *ProgressionConfig) { p.PlacementBands[0].MinPercent = 5 }},
		{"band profile out of range", func(p *ProgressionConfig) { p.PlacementBands[3].Profile = 99 }},
		{"bands not ascending", func(p *ProgressionConfig) { p.PlacementBands[5].MinPercent = 10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}
