package find_overlap

import (
	"context"

	findOverlap "github.com/m04kA/SMC-SchedulingService/internal/usecase/find_overlap"
)

type FindOverlapUseCase interface {
	Execute(ctx context.Context, req *findOverlap.Request) (*findOverlap.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
