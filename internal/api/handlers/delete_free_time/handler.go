package delete_free_time

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/freetime"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "можно удалить только своё свободное время"
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

// Handle DELETE /api/v1/users/{userId}/free-time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /users/{id}/free-time - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /users/{id}/free-time - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), userID, memberID); err != nil {
		switch {
		case errors.Is(err, freetime.ErrAccessDenied):
			h.logger.Warn("DELETE /users/{id}/free-time - Access denied: user_id=%d, member_id=%d", userID, memberID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, freetime.ErrFreeTimeNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, freetime.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidUserID)

		default:
			h.logger.Error("DELETE /users/{id}/free-time - Failed to delete free time: member_id=%d, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /users/{id}/free-time - Free time deleted: member_id=%d", memberID)
	handlers.RespondNoContent(w)
}
