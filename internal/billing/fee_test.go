package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeFee(t *testing.T) {
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		exit        time.Time
		rate        float64
		wantCost    float64
		wantMinutes int
	}{
		{
			name:        "five minutes bills the fifteen minute floor",
			exit:        entry.Add(5 * time.Minute),
			rate:        2.5,
			wantCost:    0.63, // 0.25h * 2.5 rounded to 2dp
			wantMinutes: 5,
		},
		{
			name:        "ninety minutes at two per hour",
			exit:        entry.Add(90 * time.Minute),
			rate:        2.0,
			wantCost:    3.00,
			wantMinutes: 90,
		},
		{
			name:        "exactly fifteen minutes",
			exit:        entry.Add(15 * time.Minute),
			rate:        2.5,
			wantCost:    0.63,
			wantMinutes: 15,
		},
		{
			name:        "twenty minutes at default rate",
			exit:        entry.Add(20 * time.Minute),
			rate:        DefaultHourlyRate,
			wantCost:    0.83, // (20/60)h * 2.5 = 0.8333 -> 0.83
			wantMinutes: 20,
		},
		{
			name:        "partial minute rounds duration up",
			exit:        entry.Add(2*time.Minute + 30*time.Second),
			rate:        2.5,
			wantCost:    0.63,
			wantMinutes: 3,
		},
		{
			name:        "zero elapsed still bills the floor",
			exit:        entry,
			rate:        4.0,
			wantCost:    1.00,
			wantMinutes: 0,
		},
		{
			name:        "clock skew: exit before entry still bills the floor",
			exit:        entry.Add(-10 * time.Minute),
			rate:        2.5,
			wantCost:    0.63,
			wantMinutes: 0,
		},
		{
			name:        "long session",
			exit:        entry.Add(10 * time.Hour),
			rate:        1.75,
			wantCost:    17.50,
			wantMinutes: 600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, minutes := ComputeFee(entry, tt.exit, tt.rate)
			assert.InDelta(t, tt.wantCost, cost, 0.0001)
			assert.Equal(t, tt.wantMinutes, minutes)
		})
	}
}

func TestComputeFeeCostIndependentOfDisplayedDuration(t *testing.T) {
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	// Two stays under the floor must bill identically even though their
	// displayed durations differ.
	costA, minA := ComputeFee(entry, entry.Add(3*time.Minute), 2.5)
	costB, minB := ComputeFee(entry, entry.Add(12*time.Minute), 2.5)

	assert.Equal(t, costA, costB)
	assert.Equal(t, 3, minA)
	assert.Equal(t, 12, minB)
}
