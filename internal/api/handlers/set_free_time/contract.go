package set_free_time

import (
	"context"

	setFreeTime "github.com/m04kA/SMC-SchedulingService/internal/usecase/set_free_time"
)

type SetFreeTimeUseCase interface {
	Execute(ctx context.Context, req *setFreeTime.Request) (*setFreeTime.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
