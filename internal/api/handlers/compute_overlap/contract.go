package compute_overlap

import (
	"context"

	computeOverlap "github.com/m04kA/SMC-SchedulingService/internal/usecase/compute_overlap"
)

type ComputeOverlapUseCase interface {
	Execute(ctx context.Context, req *computeOverlap.Request) (*computeOverlap.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
