package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeSlots is the fixed set of pickup times offered on the booking screen.
// The set does not depend on shop operating hours.
var TimeSlots = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"2:00 PM",
	"4:00 PM",
}

// ParseTimeOfDay converts a "h:mm AM" / "h:mm PM" display string into
// 24-hour components. PM adds 12 unless the hour is already 12; 12 AM
// maps to hour 0.
func ParseTimeOfDay(slot string) (hour, minute int, err error) {
	parts := strings.Fields(slot)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, expected \"h:mm AM/PM\"", slot)
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, expected \"h:mm AM/PM\"", slot)
	}

	hour, err = strconv.Atoi(hm[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour in %q: %v", slot, err)
	}
	minute, err = strconv.Atoi(hm[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute in %q: %v", slot, err)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", slot)
	}

	switch strings.ToUpper(parts[1]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	default:
		return 0, 0, fmt.Errorf("invalid meridiem in %q", slot)
	}

	return hour, minute, nil
}

// FormatTimeOfDay renders 24-hour components back into the display form
// used by the slot list.
func FormatTimeOfDay(hour, minute int) string {
	meridiem := "AM"
	h := hour
	switch {
	case hour == 0:
		h = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		h = hour - 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, meridiem)
}

// CombineDateTime merges a calendar date with a time slot into a single
// UTC timestamp. Only the year/month/day of date are used.
func CombineDateTime(date time.Time, slot string) (time.Time, error) {
	hour, minute, err := ParseTimeOfDay(slot)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC), nil
}

// MonthGrid builds the selectable-day grid for a month: one nil cell per
// weekday preceding the 1st (Sunday = 0), then one cell per day of the
// month. len(grid) == weekday(first) + daysInMonth.
func MonthGrid(year int, month time.Month) []*time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the next month is the last day of this one.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)

	padding := int(first.Weekday())
	daysInMonth := last.Day()

	grid := make([]*time.Time, 0, padding+daysInMonth)
	for i := 0; i < padding; i++ {
		grid = append(grid, nil)
	}
	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		grid = append(grid, &d)
	}
	return grid
}

// AddMonths navigates the calendar by delta months from ref, keeping day 1
// so that oversized days cannot spill into the following month. Year
// boundaries roll over naturally in both directions.
func AddMonths(ref time.Time, delta int) time.Time {
	return time.Date(ref.Year(), ref.Month()+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
}
