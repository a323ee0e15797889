package update_project_settings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/settings"
)

const (
	msgInvalidProjectID   = "некорректный ID проекта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingDuration    = "defaultMinDurationMinutes обязателен"
	msgInvalidDuration    = "минимальная длительность должна быть от 0 до 1440 минут"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgProjectNotFound    = "проект не найден"
	msgForbidden          = "изменять настройки может только владелец проекта"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/projects/{projectId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(mux.Vars(r)["projectId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /projects/{id}/settings - Invalid project ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProjectID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /projects/{id}/settings - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /projects/{id}/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.DefaultMinDurationMinutes == nil {
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(userID, projectID))
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrProjectNotFound):
			h.logger.Warn("PUT /projects/{id}/settings - Project not found: project_id=%d", projectID)
			handlers.RespondNotFound(w, msgProjectNotFound)

		case errors.Is(err, settings.ErrAccessDenied):
			h.logger.Warn("PUT /projects/{id}/settings - Access denied: user_id=%d, project_id=%d", userID, projectID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /projects/{id}/settings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("PUT /projects/{id}/settings - Failed to update settings: project_id=%d, error=%v", projectID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /projects/{id}/settings - Settings updated: project_id=%d, min_duration=%d",
		projectID, result.DefaultMinDurationMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
