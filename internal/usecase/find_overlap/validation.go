package find_overlap

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ProjectID <= 0 {
		return fmt.Errorf("%w: projectID must be positive", ErrInvalidInput)
	}

	if req.Day != nil && !req.Day.IsValid() {
		return fmt.Errorf("%w: unknown day %q", ErrInvalidInput, *req.Day)
	}

	if req.MinDurationMinutes != nil {
		if err := validateMinDuration(*req.MinDurationMinutes); err != nil {
			return err
		}
	}

	return nil
}

func validateMinDuration(minutes int) error {
	if minutes < domain.MinMinDurationMinutes || minutes > domain.MaxMinDurationMinutes {
		return fmt.Errorf("%w: minDuration must be in %d..%d",
			ErrInvalidInput, domain.MinMinDurationMinutes, domain.MaxMinDurationMinutes)
	}
	return nil
}
