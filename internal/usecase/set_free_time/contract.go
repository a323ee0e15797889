package set_free_time

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// FreeTimeRepository интерфейс репозитория свободного времени
type FreeTimeRepository interface {
	DeleteByMember(ctx context.Context, memberID int64) (int64, error)
	CreateBatch(ctx context.Context, ft *domain.MemberFreeTime) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
