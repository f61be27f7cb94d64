package create_time_block

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-PetCareScheduler/internal/service/timeblocks"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные блокировки"
)

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

// Handle POST /api/v1/time-blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req timeblocks.CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /time-blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.WithDetails(msgInvalidRequestBody, err))
		return
	}
	req.CreatedBy = middleware.UserID(r.Context())

	block, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, timeblocks.ErrInvalidInput):
			h.logger.Warn("POST /time-blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.WithDetails(msgInvalidInput, err))
		default:
			h.logger.Error("POST /time-blocks - Failed to create time block: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /time-blocks - Time block created: id=%s", block.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainTimeBlock(block))
}
