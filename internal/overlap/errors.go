package overlap

import "errors"

var (
	// ErrNegativeDuration is returned for a minimum duration below zero
	ErrNegativeDuration = errors.New("overlap: minimum duration must not be negative")

	// ErrInvalidTime is returned when an interval bound is not a valid "HH:MM" string
	ErrInvalidTime = errors.New("overlap: invalid time")
)
