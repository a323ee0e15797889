package compute_overlap

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	computeOverlap "github.com/m04kA/SMC-SchedulingService/internal/usecase/compute_overlap"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase ComputeOverlapUseCase
	logger  Logger
}

func NewHandler(useCase ComputeOverlapUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/overlap
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ComputeOverlapRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /overlap - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, computeOverlap.ErrInvalidTime):
			h.logger.Warn("POST /overlap - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, computeOverlap.ErrInvalidInput):
			h.logger.Warn("POST /overlap - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /overlap - Failed to compute overlap: members=%d, error=%v", len(req.Members), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /overlap - Overlap computed: members=%d, intervals=%d", len(req.Members), len(result.Intervals))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
