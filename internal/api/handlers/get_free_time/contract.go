package get_free_time

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/freetime/models"
)

type FreeTimeService interface {
	Get(ctx context.Context, memberID int64) (*models.FreeTimeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
