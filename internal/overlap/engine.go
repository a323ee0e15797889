// Package overlap finds time windows in which every member of a group is free.
//
// All functions are pure: inputs are never mutated and every call builds a fresh result,
// so they are safe for concurrent use.
package overlap

import (
	"fmt"
	"slices"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// TimeRange is an interval expressed as a pair of "HH:MM" strings
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// Rejection describes an input interval dropped at ingestion
type Rejection struct {
	Member   int
	Interval domain.Interval
	Err      error
}

// Result is the common availability of all members for one day,
// sorted ascending by start and already filtered by minimum duration.
type Result struct {
	Intervals []domain.Interval
	Rejected  []Rejection
}

// TimeRanges returns the result intervals as "HH:MM" pairs
func (r *Result) TimeRanges() []TimeRange {
	ranges := make([]TimeRange, len(r.Intervals))
	for i, in := range r.Intervals {
		ranges[i] = TimeRange{Start: in.StartTime(), End: in.EndTime()}
	}
	return ranges
}

// FindOverlap computes the intersection of all members' intervals for one day and
// drops windows shorter than minDurationMinutes. Invalid intervals are excluded
// from the computation and reported in Result.Rejected.
func FindOverlap(members [][]domain.Interval, minDurationMinutes int) (*Result, error) {
	if minDurationMinutes < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDuration, minDurationMinutes)
	}

	valid, rejected := normalize(members)

	intervals := FilterByDuration(Reduce(valid), minDurationMinutes)
	slices.SortStableFunc(intervals, compareIntervals)

	return &Result{
		Intervals: intervals,
		Rejected:  rejected,
	}, nil
}

// FindOverlapTimes is FindOverlap for intervals given as "HH:MM" strings.
// A malformed time string fails the whole call.
func FindOverlapTimes(members [][]TimeRange, minDurationMinutes int) (*Result, error) {
	parsed := make([][]domain.Interval, len(members))
	for mi, ranges := range members {
		list := make([]domain.Interval, 0, len(ranges))
		for _, r := range ranges {
			start, err := r.Start.Minutes()
			if err != nil {
				return nil, fmt.Errorf("%w: member %d: %w", ErrInvalidTime, mi, err)
			}
			end, err := r.End.Minutes()
			if err != nil {
				return nil, fmt.Errorf("%w: member %d: %w", ErrInvalidTime, mi, err)
			}
			list = append(list, domain.Interval{Start: start, End: end})
		}
		parsed[mi] = list
	}

	return FindOverlap(parsed, minDurationMinutes)
}

func normalize(members [][]domain.Interval) ([][]domain.Interval, []Rejection) {
	valid := make([][]domain.Interval, len(members))
	var rejected []Rejection

	for mi, list := range members {
		kept := make([]domain.Interval, 0, len(list))
		for _, in := range list {
			if err := in.Validate(); err != nil {
				rejected = append(rejected, Rejection{Member: mi, Interval: in, Err: err})
				continue
			}
			kept = append(kept, in)
		}
		valid[mi] = kept
	}

	return valid, rejected
}
