package overlap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ivs builds intervals from "HH:MM" pairs: ivs(t, "09:00", "10:00", "11:00", "12:00")
func ivs(t *testing.T, bounds ...string) []domain.Interval {
	t.Helper()
	require.Zero(t, len(bounds)%2, "odd number of bounds")

	out := make([]domain.Interval, 0, len(bounds)/2)
	for i := 0; i < len(bounds); i += 2 {
		in, err := domain.ParseInterval(bounds[i], bounds[i+1])
		require.NoError(t, err)
		out = append(out, in)
	}
	return out
}
