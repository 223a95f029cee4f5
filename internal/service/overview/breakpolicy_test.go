package overview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyBreakPolicy(t *testing.T) {
	tests := []struct {
		name          string
		totalHours    float64
		expectedPause float64
		wantWork      float64
		wantPause     float64
		wantViolates  bool
	}{
		{
			name:          "short day keeps contractual pause",
			totalHours:    5.0,
			expectedPause: 0.5,
			wantWork:      4.5,
			wantPause:     0.5,
		},
		{
			name:          "mid tier raises pause to half hour",
			totalHours:    7.0,
			expectedPause: 0.25,
			wantWork:      6.5,
			wantPause:     0.5,
		},
		{
			name:          "mid tier keeps larger contractual pause",
			totalHours:    7.0,
			expectedPause: 1.0,
			wantWork:      6.0,
			wantPause:     1.0,
		},
		{
			name:          "long tier raises pause to three quarters",
			totalHours:    9.5,
			expectedPause: 0.5,
			wantWork:      8.25,
			wantPause:     0.75,
		},
		{
			name:          "work at exactly ten hours violates the limit",
			totalHours:    11.0,
			expectedPause: 0.25,
			wantWork:      10.0,
			wantPause:     0.75,
			wantViolates:  true,
		},
		{
			name:          "extreme day",
			totalHours:    19.75,
			expectedPause: 0.75,
			wantWork:      18.25,
			wantPause:     0.75,
			wantViolates:  true,
		},
		{
			name:       "zero contractual pause below six hours",
			totalHours: 5.5,
			wantWork:   5.5,
			wantPause:  0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyBreakPolicy(tt.totalHours, tt.expectedPause)

			assert.InDelta(t, tt.wantWork, got.Work, 1e-9)
			assert.InDelta(t, tt.wantPause, got.Pause, 1e-9)
			assert.Equal(t, tt.wantViolates, got.Violates)
		})
	}
}

func TestApplyBreakPolicy_NetBoundaries(t *testing.T) {
	// Net time sits exactly on the six hour boundary: the statutory
	// half hour applies.
	got := applyBreakPolicy(6.5, 0.5)
	assert.InDelta(t, 0.5, got.Pause, 1e-9)
	assert.InDelta(t, 6.0, got.Work, 1e-9)

	// Net time sits exactly on the nine hour boundary: the statutory
	// three quarter hour applies to the net total.
	got = applyBreakPolicy(9.25, 0.25)
	assert.InDelta(t, 0.75, got.Pause, 1e-9)
	assert.InDelta(t, 8.25, got.Work, 1e-9)
	assert.False(t, got.Violates)
}
