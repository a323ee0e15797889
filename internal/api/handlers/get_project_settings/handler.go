package get_project_settings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/settings"
)

const (
	msgInvalidProjectID = "некорректный ID проекта"
	msgProjectNotFound  = "проект не найден"
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

// Handle GET /api/v1/projects/{projectId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(mux.Vars(r)["projectId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /projects/{id}/settings - Invalid project ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProjectID)
		return
	}

	result, err := h.service.Get(r.Context(), projectID)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrProjectNotFound):
			h.logger.Warn("GET /projects/{id}/settings - Project not found: project_id=%d", projectID)
			handlers.RespondNotFound(w, msgProjectNotFound)

		case errors.Is(err, settings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidProjectID)

		default:
			h.logger.Error("GET /projects/{id}/settings - Failed to get settings: project_id=%d, error=%v", projectID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
