package ops

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScanStatsCheckInRate(t *testing.T) {
	tests := []struct {
		name     string
		stats    ScanStats
		expected float64
	}{
		{"all valid", ScanStats{Total: 10, Valid: 10}, 1.0},
		{"half valid", ScanStats{Total: 10, Valid: 5}, 0.5},
		{"no scans", ScanStats{}, 0},
		{"all invalid", ScanStats{Total: 4, Valid: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.stats.CheckInRate(), 0.0001)
		})
	}
}

func TestScanStatsScansPerMinute(t *testing.T) {
	stats := ScanStats{Total: 120, Valid: 100}

	assert.InDelta(t, 2.0, stats.ScansPerMinute(time.Hour), 0.0001)
	assert.InDelta(t, 12.0, stats.ScansPerMinute(10*time.Minute), 0.0001)
	assert.Zero(t, stats.ScansPerMinute(0))
}

func TestIncidentStatusIsValid(t *testing.T) {
	assert.True(t, IncidentOpen.IsValid())
	assert.True(t, IncidentAcknowledged.IsValid())
	assert.True(t, IncidentResolved.IsValid())
	assert.False(t, IncidentStatus("closed").IsValid())
}

func TestComponentStateIsValid(t *testing.T) {
	assert.True(t, StateOperational.IsValid())
	assert.True(t, StateDegraded.IsValid())
	assert.True(t, StateDown.IsValid())
	assert.False(t, ComponentState("").IsValid())
}
