package find_overlap

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/projectservice"
)

// FreeTimeRepository интерфейс репозитория свободного времени
type FreeTimeRepository interface {
	GetByMembers(ctx context.Context, memberIDs []int64) (map[int64]*domain.MemberFreeTime, error)
}

// SettingsRepository интерфейс репозитория настроек проекта
type SettingsRepository interface {
	GetByProject(ctx context.Context, projectID int64) (*domain.ProjectSettings, error)
}

// ProjectServiceClient интерфейс клиента для ProjectService
type ProjectServiceClient interface {
	GetProject(ctx context.Context, projectID int64) (*projectservice.Project, error)
}

// OverlapObserver получает размер каждого вычисленного пересечения (метрики)
type OverlapObserver interface {
	ObserveOverlap(source string, intervals int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NopObserver используется, когда метрики выключены
type NopObserver struct{}

// ObserveOverlap ничего не делает
func (NopObserver) ObserveOverlap(string, int) {}
