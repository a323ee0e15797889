package get_free_time

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/freetime"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgNotFound      = "свободное время не заполнено"
)

type Handler struct {
	service FreeTimeService
	logger  Logger
}

func NewHandler(service FreeTimeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/free-time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil || memberID <= 0 {
		h.logger.Warn("GET /users/{id}/free-time - Invalid user ID: %s", mux.Vars(r)["userId"])
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.service.Get(r.Context(), memberID)
	if err != nil {
		switch {
		case errors.Is(err, freetime.ErrFreeTimeNotFound):
			h.logger.Warn("GET /users/{id}/free-time - Not found: member_id=%d", memberID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, freetime.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidUserID)

		default:
			h.logger.Error("GET /users/{id}/free-time - Failed to get free time: member_id=%d, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/free-time - Free time retrieved: member_id=%d, days=%d", memberID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
