package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/settings"
	projectClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/projectservice"
	"github.com/m04kA/SMC-SchedulingService/internal/service/settings/models"
)

// Service сервис настроек планирования проектов
type Service struct {
	settingsRepo       SettingsRepository
	projectClient      ProjectServiceClient
	defaultMinDuration int
	logger             Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	settingsRepo SettingsRepository,
	projectClient ProjectServiceClient,
	defaultMinDuration int,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo:       settingsRepo,
		projectClient:      projectClient,
		defaultMinDuration: defaultMinDuration,
		logger:             logger,
	}
}

// Get получает настройки проекта
// Если настройки не сохранены, возвращает значение по умолчанию из конфига
func (s *Service) Get(ctx context.Context, projectID int64) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for project=%d", projectID)

	if projectID <= 0 {
		return nil, fmt.Errorf("%w: projectID must be positive", ErrInvalidInput)
	}

	// 1. Проверяем существование проекта
	if _, err := s.getProject(ctx, projectID); err != nil {
		return nil, err
	}

	// 2. Получаем сохранённые настройки
	stored, err := s.settingsRepo.GetByProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("Get: no settings for project=%d, using default=%d", projectID, s.defaultMinDuration)
			return models.DefaultSettings(projectID, s.defaultMinDuration), nil
		}
		s.logger.Error("Get: repository error for project=%d: %v", projectID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(stored), nil
}

// Update сохраняет настройки проекта
// Доступно только владельцу проекта
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: user=%d updating settings of project=%d, minDuration=%d",
		req.UserID, req.ProjectID, req.DefaultMinDurationMinutes)

	// 1. Валидируем входные данные
	if err := validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем проект для проверки прав доступа
	project, err := s.getProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	// 3. Изменять настройки может только владелец
	if project.OwnerID != req.UserID {
		s.logger.Warn("Update: user=%d is not the owner of project=%d", req.UserID, req.ProjectID)
		return nil, ErrAccessDenied
	}

	// 4. Сохраняем
	saved, err := s.settingsRepo.Upsert(ctx, &domain.ProjectSettings{
		ProjectID:                 req.ProjectID,
		DefaultMinDurationMinutes: req.DefaultMinDurationMinutes,
		UpdatedBy:                 req.UserID,
	})
	if err != nil {
		s.logger.Error("Update: repository error for project=%d: %v", req.ProjectID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings of project=%d saved", req.ProjectID)
	return models.FromDomainSettings(saved), nil
}

func (s *Service) getProject(ctx context.Context, projectID int64) (*projectClient.Project, error) {
	project, err := s.projectClient.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, projectClient.ErrProjectNotFound) {
			s.logger.Warn("project id=%d not found", projectID)
			return nil, ErrProjectNotFound
		}
		s.logger.Error("failed to get project id=%d: %v", projectID, err)
		return nil, fmt.Errorf("%w: failed to get project: %v", ErrInternal, err)
	}
	return project, nil
}

func validateUpdate(req *models.UpdateSettingsRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.ProjectID <= 0 {
		return fmt.Errorf("%w: projectID must be positive", ErrInvalidInput)
	}
	if req.DefaultMinDurationMinutes < domain.MinMinDurationMinutes ||
		req.DefaultMinDurationMinutes > domain.MaxMinDurationMinutes {
		return fmt.Errorf("%w: defaultMinDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinMinDurationMinutes, domain.MaxMinDurationMinutes)
	}
	return nil
}
