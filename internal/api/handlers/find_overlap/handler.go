package find_overlap

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	findOverlap "github.com/m04kA/SMC-SchedulingService/internal/usecase/find_overlap"
)

const (
	msgInvalidProjectID = "некорректный ID проекта"
	msgInvalidQuery     = "некорректные параметры: day - день недели, minDuration - число минут"
	msgInvalidInput     = "некорректные параметры запроса"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgProjectNotFound  = "проект не найден"
	msgForbidden        = "доступ запрещен: пользователь не участник проекта"
)

type Handler struct {
	useCase FindOverlapUseCase
	logger  Logger
}

func NewHandler(useCase FindOverlapUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/projects/{projectId}/overlap
// Query params: day (optional, monday..sunday), minDuration (optional, минуты)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем projectId из URL
	projectID, err := strconv.ParseInt(mux.Vars(r)["projectId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /projects/{id}/overlap - Invalid project ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProjectID)
		return
	}

	// Извлекаем userID из контекста
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /projects/{id}/overlap - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(userID, projectID, query.Get("day"), query.Get("minDuration"))
	if err != nil {
		h.logger.Warn("GET /projects/{id}/overlap - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findOverlap.ErrProjectNotFound):
			h.logger.Warn("GET /projects/{id}/overlap - Project not found: project_id=%d", projectID)
			handlers.RespondNotFound(w, msgProjectNotFound)

		case errors.Is(err, findOverlap.ErrAccessDenied):
			h.logger.Warn("GET /projects/{id}/overlap - Access denied: user_id=%d, project_id=%d", userID, projectID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, findOverlap.ErrInvalidInput):
			h.logger.Warn("GET /projects/{id}/overlap - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /projects/{id}/overlap - Failed to find overlap: project_id=%d, error=%v", projectID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /projects/{id}/overlap - Overlap found: project_id=%d, days=%d, participants=%d",
		projectID, len(result.Days), len(result.ParticipantIDs))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
