package compute_overlap

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/overlap"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
)

func newUseCase() (*UseCase, *metrics.Metrics) {
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	return NewUseCase(m, logger.NewNop()), m
}

func TestExecute(t *testing.T) {
	uc, m := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Members: [][]overlap.TimeRange{
			{{Start: "09:00", End: "17:00"}},
			{{Start: "09:00", End: "12:00"}, {Start: "13:00", End: "17:00"}},
			{{Start: "11:00", End: "14:00"}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []overlap.TimeRange{
		{Start: "11:00", End: "12:00"},
		{Start: "13:00", End: "14:00"},
	}, resp.Intervals)
	assert.Empty(t, resp.Rejected)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OverlapComputations.WithLabelValues("adhoc", "found")))
}

func TestExecute_MinDuration(t *testing.T) {
	uc, _ := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Members: [][]overlap.TimeRange{
			{{Start: "08:00", End: "12:00"}},
			{{Start: "09:00", End: "09:15"}},
		},
		MinDurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Intervals)
}

func TestExecute_NoMembers(t *testing.T) {
	uc, _ := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Empty(t, resp.Intervals)
}

func TestExecute_RejectedIntervals(t *testing.T) {
	uc, _ := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Members: [][]overlap.TimeRange{
			{{Start: "12:00", End: "10:00"}, {Start: "09:00", End: "11:00"}},
			{{Start: "10:00", End: "12:00"}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []overlap.TimeRange{{Start: "10:00", End: "11:00"}}, resp.Intervals)
	require.Len(t, resp.Rejected, 1)
	assert.Equal(t, 0, resp.Rejected[0].Member)
	assert.Equal(t, overlap.TimeRange{Start: "12:00", End: "10:00"}, resp.Rejected[0].Range)
}

func TestExecute_Errors(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Execute(context.Background(), &Request{MinDurationMinutes: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Members: [][]overlap.TimeRange{{{Start: "9:00", End: "10:00"}}},
	})
	assert.ErrorIs(t, err, ErrInvalidTime)
}
