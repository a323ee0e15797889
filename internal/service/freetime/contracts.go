package freetime

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// FreeTimeRepository интерфейс репозитория свободного времени
type FreeTimeRepository interface {
	GetByMember(ctx context.Context, memberID int64) (*domain.MemberFreeTime, error)
	DeleteByMember(ctx context.Context, memberID int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
