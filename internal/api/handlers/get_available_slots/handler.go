package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-PetCareScheduler/internal/usecase/get_available_slots"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots?date&serviceId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &getAvailableSlots.Request{
		Date:      q.Get("date"),
		ServiceID: q.Get("serviceId"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Found %d slots for date=%s", len(result.Slots), req.Date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
