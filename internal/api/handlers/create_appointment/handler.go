package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareScheduler/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-PetCareScheduler/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные записи"
	msgSlotNotAvailable   = "выбранное время пересекается с другой записью"
	msgTimeBlocked        = "выбранное время заблокировано"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req createAppointment.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.WithDetails(msgInvalidRequestBody, err))
		return
	}
	req.CreatedBy = middleware.UserID(r.Context())

	appointment, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrConflict):
			h.logger.Warn("POST /appointments - Slot not available: date=%s, time=%s-%s", req.Date, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, handlers.WithDetails(msgSlotNotAvailable, err))

		case errors.Is(err, createAppointment.ErrTimeBlocked):
			h.logger.Warn("POST /appointments - Time blocked: date=%s, time=%s-%s", req.Date, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, handlers.WithDetails(msgTimeBlocked, err))

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.WithDetails(msgInvalidInput, err))

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%s, error=%v", req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: id=%s", appointment.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainAppointment(appointment))
}
