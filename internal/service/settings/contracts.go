package settings

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/projectservice"
)

// SettingsRepository интерфейс репозитория настроек проекта
type SettingsRepository interface {
	GetByProject(ctx context.Context, projectID int64) (*domain.ProjectSettings, error)
	Upsert(ctx context.Context, s *domain.ProjectSettings) (*domain.ProjectSettings, error)
}

// ProjectServiceClient интерфейс клиента для ProjectService
type ProjectServiceClient interface {
	GetProject(ctx context.Context, projectID int64) (*projectservice.Project, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
