package domain

import "time"

// MemberFreeTime is one participant's weekly availability.
// Intervals inside a day are unordered and may overlap each other.
type MemberFreeTime struct {
	MemberID  int64
	Days      map[DayOfWeek][]Interval
	UpdatedAt time.Time
}

// ForDay returns a copy of the member's intervals for the given day
func (m *MemberFreeTime) ForDay(day DayOfWeek) []Interval {
	src := m.Days[day]
	out := make([]Interval, len(src))
	copy(out, src)
	return out
}

// IsEmpty returns true if the member has no free time on any day
func (m *MemberFreeTime) IsEmpty() bool {
	for _, intervals := range m.Days {
		if len(intervals) > 0 {
			return false
		}
	}
	return true
}

// TotalIntervals returns the number of intervals across all days
func (m *MemberFreeTime) TotalIntervals() int {
	total := 0
	for _, intervals := range m.Days {
		total += len(intervals)
	}
	return total
}
