package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// UpdateSettingsRequest запрос на обновление настроек проекта
type UpdateSettingsRequest struct {
	UserID                    int64 `json:"-"`
	ProjectID                 int64 `json:"-"`
	DefaultMinDurationMinutes int   `json:"defaultMinDurationMinutes"`
}

// SettingsResponse настройки планирования проекта
type SettingsResponse struct {
	ProjectID                 int64      `json:"projectId"`
	DefaultMinDurationMinutes int        `json:"defaultMinDurationMinutes"`
	IsDefault                 bool       `json:"isDefault"` // Настройки не сохранены, используется значение из конфига
	UpdatedBy                 *int64     `json:"updatedBy,omitempty"`
	UpdatedAt                 *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainSettings конвертирует domain.ProjectSettings в SettingsResponse
func FromDomainSettings(s *domain.ProjectSettings) *SettingsResponse {
	return &SettingsResponse{
		ProjectID:                 s.ProjectID,
		DefaultMinDurationMinutes: s.DefaultMinDurationMinutes,
		UpdatedBy:                 ptr.Ptr(s.UpdatedBy),
		UpdatedAt:                 ptr.Ptr(s.UpdatedAt),
	}
}

// DefaultSettings возвращает ответ с настройками по умолчанию
func DefaultSettings(projectID int64, minDuration int) *SettingsResponse {
	return &SettingsResponse{
		ProjectID:                 projectID,
		DefaultMinDurationMinutes: minDuration,
		IsDefault:                 true,
	}
}
