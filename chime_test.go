// ABOUTME: Tests for hour-boundary detection driving the chime.
// ABOUTME: Covers boundary crossings, zero values, and backwards clocks.

package main

import (
	"testing"
	"time"
)

func TestCrossedHour(t *testing.T) {
	at := func(h, m, s int) time.Time {
		return time.Date(2024, 6, 15, h, m, s, 0, time.Local)
	}

	tests := []struct {
		name     string
		prev     time.Time
		now      time.Time
		expected bool
	}{
		{
			name:     "same hour",
			prev:     at(10, 15, 0),
			now:      at(10, 45, 0),
			expected: false,
		},
		{
			name:     "crosses top of hour",
			prev:     at(10, 59, 59),
			now:      at(11, 0, 0),
			expected: true,
		},
		{
			name:     "exactly on the hour",
			prev:     at(10, 59, 59),
			now:      at(11, 0, 1),
			expected: true,
		},
		{
			name:     "multiple hours apart",
			prev:     at(8, 0, 0),
			now:      at(11, 30, 0),
			expected: true,
		},
		{
			name:     "zero prev never chimes",
			prev:     time.Time{},
			now:      at(11, 0, 0),
			expected: false,
		},
		{
			name:     "clock moved backwards",
			prev:     at(11, 0, 1),
			now:      at(10, 59, 0),
			expected: false,
		},
		{
			name:     "same instant",
			prev:     at(11, 0, 0),
			now:      at(11, 0, 0),
			expected: false,
		},
		{
			name:     "crosses midnight",
			prev:     at(23, 59, 59),
			now:      time.Date(2024, 6, 16, 0, 0, 0, 0, time.Local),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := crossedHour(tt.prev, tt.now); got != tt.expected {
				t.Errorf("crossedHour(%v, %v) = %v, want %v", tt.prev, tt.now, got, tt.expected)
			}
		})
	}
}

func TestCrossedHourSubsecondTicks(t *testing.T) {
	// A 200ms refresh observes many instants within one hour; only the first
	// tick after the boundary may report a crossing.
	prev := time.Date(2024, 6, 15, 10, 59, 59, 900000000, time.Local)
	boundary := time.Date(2024, 6, 15, 11, 0, 0, 100000000, time.Local)

	if !crossedHour(prev, boundary) {
		t.Error("crossing just past the boundary not detected")
	}

	next := boundary.Add(200 * time.Millisecond)
	if crossedHour(boundary, next) {
		t.Error("tick after the boundary chimed again")
	}
}
