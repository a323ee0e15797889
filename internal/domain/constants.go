package domain

import "github.com/m04kA/SMC-SchedulingService/pkg/types"

// Default configuration values
const (
	DefaultMinDurationMinutes = 30
)

// Business validation constants
const (
	MinMinDurationMinutes    = 0
	MaxMinDurationMinutes    = types.MinutesPerDay
	MaxIntervalsPerDay       = 48
	MaxMembersPerComputation = 100
)
