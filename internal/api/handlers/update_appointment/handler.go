package update_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers"
	updateAppointment "github.com/m04kA/SMC-PetCareScheduler/internal/usecase/update_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные записи"
	msgAppointmentNotFound = "запись не найдена"
	msgSlotNotAvailable    = "новое время пересекается с другой записью"
	msgTimeBlocked         = "новое время заблокировано"
	msgConcurrentUpdate    = "запись была изменена параллельно, повторите запрос"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateAppointment.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, handlers.WithDetails(msgInvalidRequestBody, err))
		return
	}
	req.ID = id

	appointment, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, updateAppointment.ErrConflict):
			h.logger.Warn("PATCH /appointments/{id} - Slot not available: id=%s", id)
			handlers.RespondConflict(w, handlers.WithDetails(msgSlotNotAvailable, err))

		case errors.Is(err, updateAppointment.ErrTimeBlocked):
			h.logger.Warn("PATCH /appointments/{id} - Time blocked: id=%s", id)
			handlers.RespondConflict(w, handlers.WithDetails(msgTimeBlocked, err))

		case errors.Is(err, updateAppointment.ErrConcurrentUpdate):
			h.logger.Warn("PATCH /appointments/{id} - Concurrent update: id=%s", id)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id} - Invalid input: id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, handlers.WithDetails(msgInvalidInput, err))

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to update appointment: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Appointment updated successfully: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainAppointment(appointment))
}
