package update_project_settings

import "github.com/m04kA/SMC-SchedulingService/internal/service/settings/models"

// UpdateSettingsRequest HTTP request model
type UpdateSettingsRequest struct {
	DefaultMinDurationMinutes *int `json:"defaultMinDurationMinutes"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateSettingsRequest) ToServiceRequest(userID, projectID int64) *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		UserID:                    userID,
		ProjectID:                 projectID,
		DefaultMinDurationMinutes: *r.DefaultMinDurationMinutes,
	}
}
