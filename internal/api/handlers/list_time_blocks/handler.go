package list_time_blocks

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareScheduler/internal/service/timeblocks"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	service TimeBlockService
	logger  Logger
}

func NewHandler(service TimeBlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/time-blocks?date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var date *string
	if d := r.URL.Query().Get("date"); d != "" {
		date = &d
	}

	blocks, err := h.service.List(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, timeblocks.ErrInvalidInput):
			h.logger.Warn("GET /time-blocks - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /time-blocks - Failed to list time blocks: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := make([]*handlers.TimeBlockResponse, 0, len(blocks))
	for _, b := range blocks {
		response = append(response, handlers.FromDomainTimeBlock(b))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
