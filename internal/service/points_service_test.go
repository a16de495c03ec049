package service

import (
	"testing"

	"mathquest_backend/internal/model"
	"mathquest_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDelta(t *testing.T) {
	tests := []struct {
		name         string
		total        int
		lifetime     int
		delta        int
		wantErr      error
		wantTotal    int
		wantLifetime int
	}{
		{"positive accrues both", 30, 100, 20, nil, 50, 120},
		{"negative only touches balance", 30, 100, -20, nil, 10, 100},
		{"deduction to exactly zero", 30, 100, -30, nil, 0, 100},
		{"deduction beyond balance rejected", 30, 100, -31, util.ErrInsufficientPoints, 30, 100},
		{"deduction from empty balance rejected", 0, 100, -1, util.ErrInsufficientPoints, 0, 100},
		{"zero delta is a no-op", 30, 100, 0, nil, 30, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := &model.StudentProgress{TotalPoints: tt.total, LifetimePoints: tt.lifetime}
			err := applyDelta(progress, tt.delta)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantTotal, progress.TotalPoints)
			assert.Equal(t, tt.wantLifetime, progress.LifetimePoints)
		})
	}
}

// 连续扣减只会停在 0，不会把余额打穿成负数
func TestApplyDelta_BalanceNeverNegative(t *testing.T) {
	progress := &model.StudentProgress{TotalPoints: 25, LifetimePoints: 25}

	require.NoError(t, applyDelta(progress, -10))
	require.NoError(t, applyDelta(progress, -15))
	require.ErrorIs(t, applyDelta(progress, -1), util.ErrInsufficientPoints)

	assert.Equal(t, 0, progress.TotalPoints)
	assert.Equal(t, 25, progress.LifetimePoints)
}
