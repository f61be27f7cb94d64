package get_statistics

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers"
	getStatistics "github.com/m04kA/SMC-PetCareScheduler/internal/usecase/get_statistics"
)

const msgInvalidPeriod = "некорректный период, ожидаются startDate и endDate в формате YYYY-MM-DD"

type Handler struct {
	useCase GetStatisticsUseCase
	logger  Logger
}

func NewHandler(useCase GetStatisticsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/statistics?startDate&endDate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &getStatistics.Request{
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}

	stats, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getStatistics.ErrInvalidPeriod):
			h.logger.Warn("GET /statistics - Invalid period: %v", err)
			handlers.RespondBadRequest(w, handlers.WithDetails(msgInvalidPeriod, err))
		default:
			h.logger.Error("GET /statistics - Failed to get statistics: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(stats))
}
