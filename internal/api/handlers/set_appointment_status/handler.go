package set_appointment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareScheduler/internal/service/appointments"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStatus        = "неизвестный статус"
	msgTransitionNotAllowed = "переход статуса не разрешен"
	msgAppointmentNotFound  = "запись не найдена"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req SetStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, handlers.WithDetails(msgInvalidRequestBody, err))
		return
	}

	appointment, err := h.service.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid status: id=%s, status=%q", id, req.Status)
			handlers.RespondBadRequest(w, handlers.WithDetails(msgInvalidStatus, err))

		case errors.Is(err, appointments.ErrTransitionNotAllowed):
			h.logger.Warn("PATCH /appointments/{id}/status - Transition not allowed: id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, handlers.WithDetails(msgTransitionNotAllowed, err))

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed to set status: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status set: id=%s, status=%s", id, appointment.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainAppointment(appointment))
}
