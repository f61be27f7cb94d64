package delete_time_block

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareScheduler/internal/service/timeblocks"
)

const msgTimeBlockNotFound = "блокировка времени не найдена"

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

// Handle DELETE /api/v1/time-blocks/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deletedID, err := h.service.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, timeblocks.ErrTimeBlockNotFound):
			h.logger.Warn("DELETE /time-blocks/{id} - Time block not found: id=%s", id)
			handlers.RespondNotFound(w, msgTimeBlockNotFound)
		default:
			h.logger.Error("DELETE /time-blocks/{id} - Failed to delete time block: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.IDResponse{ID: deletedID})
}
