package list_appointments

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	"github.com/m04kA/SMC-PetCareScheduler/internal/service/appointments"
)

const msgInvalidFilter = "некорректные параметры фильтра"

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

// Handle GET /api/v1/appointments?date&startDate&endDate&status&customerId&petId&employeeId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := parseFilter(r.URL.Query())

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidFilter):
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, handlers.WithDetails(msgInvalidFilter, err))
		default:
			h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Found %d appointments", len(result))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainAppointments(result))
}

// parseFilter пустые параметры считаются отсутствующими
func parseFilter(q url.Values) domain.AppointmentFilter {
	var filter domain.AppointmentFilter

	filter.Date = optional(q, "date")
	filter.StartDate = optional(q, "startDate")
	filter.EndDate = optional(q, "endDate")
	filter.CustomerID = optional(q, "customerId")
	filter.PetID = optional(q, "petId")
	filter.EmployeeID = optional(q, "employeeId")

	if s := optional(q, "status"); s != nil {
		status := domain.AppointmentStatus(*s)
		filter.Status = &status
	}

	return filter
}

func optional(q url.Values, key string) *string {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	return &v
}
