package compute_overlap

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.MinDurationMinutes < domain.MinMinDurationMinutes || req.MinDurationMinutes > domain.MaxMinDurationMinutes {
		return fmt.Errorf("%w: minDuration must be in %d..%d",
			ErrInvalidInput, domain.MinMinDurationMinutes, domain.MaxMinDurationMinutes)
	}

	if len(req.Members) > domain.MaxMembersPerComputation {
		return fmt.Errorf("%w: at most %d members allowed", ErrInvalidInput, domain.MaxMembersPerComputation)
	}

	for i, ranges := range req.Members {
		if len(ranges) > domain.MaxIntervalsPerDay {
			return fmt.Errorf("%w: member %d has more than %d intervals", ErrInvalidInput, i, domain.MaxIntervalsPerDay)
		}
	}

	return nil
}
