package overlap

import (
	"cmp"
	"slices"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Intersect returns the common parts of two interval lists of the same day.
//
// Both lists are copied and sorted by start, then by end, and walked with two
// cursors: each step emits the intersection of the current pair and advances
// the cursor whose interval ends first. Touching endpoints do not intersect.
//
// Intervals inside one list are not merged, so a member with self-overlapping
// intervals may produce overlapping output.
func Intersect(a, b []domain.Interval) []domain.Interval {
	result := make([]domain.Interval, 0)
	if len(a) == 0 || len(b) == 0 {
		return result
	}

	a = sortedCopy(a)
	b = sortedCopy(b)

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		start := max(a[i].Start, b[j].Start)
		end := min(a[i].End, b[j].End)
		if start < end {
			result = append(result, domain.Interval{Start: start, End: end})
		}

		if a[i].End < b[j].End {
			i++
		} else {
			j++
		}
	}

	return result
}

func sortedCopy(in []domain.Interval) []domain.Interval {
	out := slices.Clone(in)
	slices.SortStableFunc(out, compareIntervals)
	return out
}

func compareIntervals(x, y domain.Interval) int {
	if c := cmp.Compare(x.Start, y.Start); c != 0 {
		return c
	}
	return cmp.Compare(x.End, y.End)
}
