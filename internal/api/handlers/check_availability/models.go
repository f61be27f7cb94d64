package check_availability

import (
	"github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-PetCareScheduler/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available bool                            `json:"available"`
	Conflicts []*handlers.AppointmentResponse `json:"conflicts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available: resp.Available,
		Conflicts: handlers.FromDomainAppointments(resp.Conflicts),
	}
}
