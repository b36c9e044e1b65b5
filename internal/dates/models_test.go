package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationDaysBetween(t *testing.T) {
	tests := []struct {
		name      string
		departure string
		ret       string
		want      int
	}{
		{"week long trip is inclusive", "2025-06-01", "2025-06-07", 7},
		{"same day trip", "2025-06-01", "2025-06-01", 1},
		{"overnight trip", "2025-06-01", "2025-06-02", 2},
		{"return before departure is not guarded", "2025-06-07", "2025-06-01", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			departure, _ := time.Parse("2006-01-02", tt.departure)
			ret, _ := time.Parse("2006-01-02", tt.ret)
			assert.Equal(t, tt.want, DurationDaysBetween(departure, ret))
		})
	}
}

func TestAvailableSeats(t *testing.T) {
	d := &TourDate{TotalSeats: 50, BookedSeats: 12}
	assert.Equal(t, 38, d.AvailableSeats())

	// Overbooked rows are floored at zero for display only.
	over := &TourDate{TotalSeats: 50, BookedSeats: 52}
	assert.Equal(t, 0, over.AvailableSeats())
}

func TestAvailabilityLabel(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		booked int
		want   string
	}{
		{"full date is sold out", 50, 50, AvailabilitySoldOut},
		{"five left is few seats", 50, 45, AvailabilityFewSeats},
		{"one left is few seats", 50, 49, AvailabilityFewSeats},
		{"six left is available", 50, 44, AvailabilityAvailable},
		{"empty date is available", 50, 0, AvailabilityAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &TourDate{TotalSeats: tt.total, BookedSeats: tt.booked}
			assert.Equal(t, tt.want, d.AvailabilityLabel())
		})
	}
}
