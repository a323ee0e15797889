package domain

import "time"

// ProjectSettings holds per-project scheduling preferences
type ProjectSettings struct {
	ProjectID                 int64
	DefaultMinDurationMinutes int
	UpdatedBy                 int64
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}
