package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		slot   string
		hour   int
		minute int
	}{
		{"9:00 AM", 9, 0},
		{"10:00 AM", 10, 0},
		{"11:00 AM", 11, 0},
		{"12:00 PM", 12, 0},
		{"2:00 PM", 14, 0},
		{"4:00 PM", 16, 0},
		{"12:00 AM", 0, 0},
		{"11:45 PM", 23, 45},
	}

	for _, tt := range tests {
		t.Run(tt.slot, func(t *testing.T) {
			hour, minute, err := ParseTimeOfDay(tt.slot)
			assert.NoError(t, err)
			assert.Equal(t, tt.hour, hour)
			assert.Equal(t, tt.minute, minute)
		})
	}

	t.Run("Malformed", func(t *testing.T) {
		for _, slot := range []string{"", "10:00", "10 AM", "25:00 PM", "10:61 AM", "10:00 XM"} {
			_, _, err := ParseTimeOfDay(slot)
			assert.Error(t, err, "slot %q should not parse", slot)
		}
	})
}

func TestTimeSlotRoundTrip(t *testing.T) {
	// Every offered slot must survive parse -> format unchanged.
	for _, slot := range TimeSlots {
		hour, minute, err := ParseTimeOfDay(slot)
		assert.NoError(t, err)
		assert.Equal(t, slot, FormatTimeOfDay(hour, minute))
	}
}

func TestCombineDateTime(t *testing.T) {
	date := time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC)

	ts, err := CombineDateTime(date, "2:00 PM")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.February, 5, 14, 0, 0, 0, time.UTC), ts)

	// Time-of-day on the input date is ignored.
	noisy := time.Date(2025, time.February, 5, 23, 59, 0, 0, time.UTC)
	ts, err = CombineDateTime(noisy, "9:00 AM")
	assert.NoError(t, err)
	assert.Equal(t, 9, ts.Hour())

	_, err = CombineDateTime(date, "not a time")
	assert.Error(t, err)
}

func TestMonthGrid(t *testing.T) {
	t.Run("February 2025", func(t *testing.T) {
		// Feb 1, 2025 is a Saturday (weekday 6), 28 days.
		grid := MonthGrid(2025, time.February)
		assert.Len(t, grid, 6+28)
		for i := 0; i < 6; i++ {
			assert.Nil(t, grid[i])
		}
		assert.Equal(t, 1, grid[6].Day())
		assert.Equal(t, 28, grid[len(grid)-1].Day())
	})

	t.Run("Leap February", func(t *testing.T) {
		grid := MonthGrid(2024, time.February)
		assert.Equal(t, 29, grid[len(grid)-1].Day())
	})

	t.Run("Grid invariant across a year", func(t *testing.T) {
		for month := time.January; month <= time.December; month++ {
			grid := MonthGrid(2025, month)

			first := time.Date(2025, month, 1, 0, 0, 0, 0, time.UTC)
			last := time.Date(2025, month+1, 0, 0, 0, 0, 0, time.UTC)
			assert.Len(t, grid, int(first.Weekday())+last.Day())

			var prev *time.Time
			for _, cell := range grid {
				if cell == nil {
					continue
				}
				if prev != nil {
					assert.Equal(t, prev.AddDate(0, 0, 1), *cell)
				}
				prev = cell
			}
		}
	})
}

func TestAddMonths(t *testing.T) {
	t.Run("Backward from January", func(t *testing.T) {
		ref := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
		prev := AddMonths(ref, -1)
		assert.Equal(t, 2024, prev.Year())
		assert.Equal(t, time.December, prev.Month())
	})

	t.Run("Forward from December", func(t *testing.T) {
		ref := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
		next := AddMonths(ref, 1)
		assert.Equal(t, 2025, next.Year())
		assert.Equal(t, time.January, next.Month())
	})

	t.Run("Mid-year", func(t *testing.T) {
		ref := time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, time.June, AddMonths(ref, 1).Month())
		assert.Equal(t, time.April, AddMonths(ref, -1).Month())
	})
}
