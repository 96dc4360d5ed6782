//go:build unit

package dateutil_test

import (
	"testing"
	"time"

	"reservation-management/internal/pkg/dateutil"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		months   int
		expected time.Time
	}{
		{
			name:     "plain month addition",
			start:    date(2026, time.March, 15),
			months:   6,
			expected: date(2026, time.September, 15),
		},
		{
			name:     "clamps to leap February",
			start:    date(2024, time.January, 31),
			months:   1,
			expected: date(2024, time.February, 29),
		},
		{
			name:     "clamps to non-leap February",
			start:    date(2026, time.January, 31),
			months:   1,
			expected: date(2026, time.February, 28),
		},
		{
			name:     "clamps 31st into a 30-day month",
			start:    date(2026, time.March, 31),
			months:   1,
			expected: date(2026, time.April, 30),
		},
		{
			name:     "crosses a year boundary",
			start:    date(2026, time.November, 15),
			months:   3,
			expected: date(2027, time.February, 15),
		},
		{
			name:     "twelve months keeps the day",
			start:    date(2026, time.February, 28),
			months:   12,
			expected: date(2027, time.February, 28),
		},
		{
			name:     "zero months is identity",
			start:    date(2026, time.July, 4),
			months:   0,
			expected: date(2026, time.July, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dateutil.AddMonths(tt.start, tt.months))
		})
	}
}

func TestAddMonthsPreservesClockTime(t *testing.T) {
	start := time.Date(2026, time.January, 31, 14, 30, 45, 0, time.UTC)
	got := dateutil.AddMonths(start, 1)
	assert.Equal(t, time.Date(2026, time.February, 28, 14, 30, 45, 0, time.UTC), got)
}

func TestYearsBetween(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{
			name:     "anniversary reached",
			from:     date(2000, time.June, 1),
			to:       date(2026, time.June, 1),
			expected: 26,
		},
		{
			name:     "day before anniversary",
			from:     date(2000, time.June, 1),
			to:       date(2026, time.May, 31),
			expected: 25,
		},
		{
			name:     "day after anniversary",
			from:     date(2000, time.June, 1),
			to:       date(2026, time.June, 2),
			expected: 26,
		},
		{
			name:     "leap day birthday in a non-leap year",
			from:     date(2008, time.February, 29),
			to:       date(2026, time.February, 28),
			expected: 18,
		},
		{
			name:     "same instant",
			from:     date(2026, time.January, 1),
			to:       date(2026, time.January, 1),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dateutil.YearsBetween(tt.from, tt.to))
		})
	}
}
