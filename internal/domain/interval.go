package domain

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// ErrInvalidInterval is returned when an interval's start is not strictly before its end
// or either bound falls outside of a day.
var ErrInvalidInterval = errors.New("invalid interval")

// Interval represents free time on a single implicit day as a half-open range
// [Start, End) of minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// NewInterval creates a validated interval
func NewInterval(start, end int) (Interval, error) {
	i := Interval{Start: start, End: end}
	if err := i.Validate(); err != nil {
		return Interval{}, err
	}
	return i, nil
}

// ParseInterval creates an interval from two "HH:MM" strings
func ParseInterval(start, end string) (Interval, error) {
	s, err := types.ParseMinutes(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := types.ParseMinutes(end)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(s, e)
}

// Validate checks 0 <= Start < End < MinutesPerDay
func (i Interval) Validate() error {
	if i.Start < 0 || i.End >= types.MinutesPerDay {
		return fmt.Errorf("%w: [%d, %d) is outside of a day", ErrInvalidInterval, i.Start, i.End)
	}
	if i.Start >= i.End {
		return fmt.Errorf("%w: start %d is not before end %d", ErrInvalidInterval, i.Start, i.End)
	}
	return nil
}

// Duration returns the interval length in minutes
func (i Interval) Duration() int {
	return i.End - i.Start
}

// Overlaps reports whether two intervals share at least one minute.
// Touching endpoints are not an overlap.
func (i Interval) Overlaps(o Interval) bool {
	return max(i.Start, o.Start) < min(i.End, o.End)
}

// StartTime returns the start as "HH:MM"
func (i Interval) StartTime() types.TimeString {
	return formatBound(i.Start)
}

// EndTime returns the end as "HH:MM"
func (i Interval) EndTime() types.TimeString {
	return formatBound(i.End)
}

// formatBound falls back to the raw minute count for bounds outside of a day
func formatBound(m int) types.TimeString {
	ts, err := types.FormatMinutes(m)
	if err != nil {
		return types.TimeString(strconv.Itoa(m))
	}
	return ts
}

func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", i.StartTime(), i.EndTime())
}
