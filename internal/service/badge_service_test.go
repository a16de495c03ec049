package service

import (
	"testing"

	"mathquest_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCounterFor(t *testing.T) {
	counters := BadgeCounters{
		QuizzesCompleted:     10,
		LoginStreak:          7,
		PerfectScores:        3,
		HighScores:           5,
		PointsEarned:         250,
		AssignmentsCompleted: 2,
	}

	tests := []struct {
		criteriaType model.BadgeCriteriaType
		want         int
	}{
		{model.CriteriaQuizzesCompleted, 10},
		{model.CriteriaLoginStreak, 7},
		{model.CriteriaPerfectScores, 3},
		{model.CriteriaHighScores, 5},
		{model.CriteriaPointsEarned, 250},
		{model.CriteriaAssignmentsCompleted, 2},
		{model.BadgeCriteriaType("unknown"), 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, counterFor(counters, tt.criteriaType), "criteria %s", tt.criteriaType)
	}
}

func TestCriteriaMet(t *testing.T) {
	counters := BadgeCounters{QuizzesCompleted: 25, LoginStreak: 6}

	tests := []struct {
		name  string
		badge model.Badge
		want  bool
	}{
		{"exactly at threshold", model.Badge{CriteriaType: model.CriteriaQuizzesCompleted, CriteriaValue: 25}, true},
		{"above threshold", model.Badge{CriteriaType: model.CriteriaQuizzesCompleted, CriteriaValue: 10}, true},
		{"below threshold", model.Badge{CriteriaType: model.CriteriaLoginStreak, CriteriaValue: 7}, false},
		{"zero counter", model.Badge{CriteriaType: model.CriteriaPerfectScores, CriteriaValue: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, criteriaMet(tt.badge, counters))
		})
	}
}

// 积分徽章按累计获得计数，不受商店消费影响
func TestCountersFromProgress_UsesLifetimePoints(t *testing.T) {
	progress := &model.StudentProgress{
		TotalPoints:      30,
		LifetimePoints:   500,
		QuizzesCompleted: 12,
		PerfectScores:    2,
		HighScores:       4,
	}

	counters := countersFromProgress(progress, 3)

	assert.Equal(t, 500, counters.PointsEarned)
	assert.Equal(t, 12, counters.QuizzesCompleted)
	assert.Equal(t, 2, counters.PerfectScores)
	assert.Equal(t, 4, counters.HighScores)
	assert.Equal(t, 3, counters.LoginStreak)
	assert.Equal(t, 0, counters.AssignmentsCompleted)
}
