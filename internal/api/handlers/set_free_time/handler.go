package set_free_time

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	setFreeTime "github.com/m04kA/SMC-SchedulingService/internal/usecase/set_free_time"
)

const (
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "можно изменять только своё свободное время"
	msgInvalidDay         = "некорректный день недели, ожидается monday..sunday"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase SetFreeTimeUseCase
	logger  Logger
}

func NewHandler(useCase SetFreeTimeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/users/{userId}/free-time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем userId из URL
	memberID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /users/{id}/free-time - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /users/{id}/free-time - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SetFreeTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{id}/free-time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, memberID))
	if err != nil {
		switch {
		case errors.Is(err, setFreeTime.ErrAccessDenied):
			h.logger.Warn("PUT /users/{id}/free-time - Access denied: user_id=%d, member_id=%d", userID, memberID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, setFreeTime.ErrInvalidDay):
			h.logger.Warn("PUT /users/{id}/free-time - Invalid day: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDay)

		case errors.Is(err, setFreeTime.ErrInvalidTime):
			h.logger.Warn("PUT /users/{id}/free-time - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, setFreeTime.ErrInvalidInput):
			h.logger.Warn("PUT /users/{id}/free-time - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /users/{id}/free-time - Failed to save free time: member_id=%d, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/{id}/free-time - Free time saved: member_id=%d, saved=%d, rejected=%d",
		memberID, result.Saved, len(result.Rejected))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
