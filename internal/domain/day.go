package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDay is returned for an unknown day name
var ErrInvalidDay = errors.New("invalid day of week")

// DayOfWeek is a lowercase English day name
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

var allDays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// AllDays returns every day of the week starting with Monday
func AllDays() []DayOfWeek {
	days := make([]DayOfWeek, len(allDays))
	copy(days, allDays)
	return days
}

// ParseDayOfWeek parses a day name case-insensitively
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	day := DayOfWeek(strings.ToLower(strings.TrimSpace(s)))
	if !day.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return day, nil
}

// DayFromWeekday converts time.Weekday to DayOfWeek
func DayFromWeekday(w time.Weekday) DayOfWeek {
	switch w {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// IsValid returns true if the day belongs to the closed set of week days
func (d DayOfWeek) IsValid() bool {
	for _, day := range allDays {
		if d == day {
			return true
		}
	}
	return false
}

func (d DayOfWeek) String() string {
	return string(d)
}
