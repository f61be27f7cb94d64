package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-PetCareScheduler/internal/usecase/check_availability"
)

const msgInvalidInput = "некорректная дата или интервал времени"

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date&startTime&endTime&excludeId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &checkAvailability.Request{
		Date:      q.Get("date"),
		StartTime: q.Get("startTime"),
		EndTime:   q.Get("endTime"),
		ExcludeID: q.Get("excludeId"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.WithDetails(msgInvalidInput, err))
		default:
			h.logger.Error("GET /availability - Failed to check availability: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
