package service

import (
	"testing"
	"time"

	"mathquest_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestActiveStreak(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		latest *model.Checkin
		want   int
	}{
		{"no checkin yet", nil, 0},
		{"checked in today", &model.Checkin{CheckinAt: now, StreakDays: 4}, 4},
		{"checked in yesterday", &model.Checkin{CheckinAt: now.AddDate(0, 0, -1), StreakDays: 7}, 7},
		{"streak broken", &model.Checkin{CheckinAt: now.AddDate(0, 0, -2), StreakDays: 9}, 0},
		{"long gone", &model.Checkin{CheckinAt: now.AddDate(0, -1, 0), StreakDays: 30}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, activeStreak(tt.latest))
		})
	}
}

func TestCheckedInOn(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)

	assert.True(t, checkedInOn(time.Date(2026, 3, 14, 23, 59, 0, 0, time.Local), day))
	assert.True(t, checkedInOn(time.Date(2026, 3, 14, 0, 0, 1, 0, time.Local), day))
	assert.False(t, checkedInOn(time.Date(2026, 3, 13, 23, 59, 0, 0, time.Local), day))
	assert.False(t, checkedInOn(time.Date(2026, 3, 15, 0, 0, 1, 0, time.Local), day))
}

// 同一自然日的任何时刻都落到同一个索引键，跨日必然不同
func TestDateKey(t *testing.T) {
	morning := time.Date(2026, 8, 29, 0, 0, 1, 0, time.Local)
	night := time.Date(2026, 8, 29, 23, 59, 59, 0, time.Local)
	nextDay := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)

	assert.Equal(t, "2026-08-29", model.DateKey(morning))
	assert.Equal(t, model.DateKey(morning), model.DateKey(night))
	assert.NotEqual(t, model.DateKey(night), model.DateKey(nextDay))
}
