package overlap

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// FilterByDuration keeps intervals at least minMinutes long, preserving order
func FilterByDuration(intervals []domain.Interval, minMinutes int) []domain.Interval {
	result := make([]domain.Interval, 0, len(intervals))
	for _, in := range intervals {
		if in.Duration() >= minMinutes {
			result = append(result, in)
		}
	}
	return result
}
