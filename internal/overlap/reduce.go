package overlap

import (
	"slices"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

type intersectFunc func(a, b []domain.Interval) []domain.Interval

// Reduce folds Intersect over all members from left to right.
// No members yield an empty list and a single member yields a copy of its list as is.
// The fold stops as soon as the accumulator becomes empty.
func Reduce(members [][]domain.Interval) []domain.Interval {
	return reduce(members, Intersect)
}

func reduce(members [][]domain.Interval, intersect intersectFunc) []domain.Interval {
	switch len(members) {
	case 0:
		return []domain.Interval{}
	case 1:
		return slices.Clone(members[0])
	}

	acc := members[0]
	if len(acc) == 0 {
		return []domain.Interval{}
	}

	for _, next := range members[1:] {
		acc = intersect(acc, next)
		if len(acc) == 0 {
			return []domain.Interval{}
		}
	}

	return acc
}
