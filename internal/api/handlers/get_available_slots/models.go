package get_available_slots

import getAvailableSlots "github.com/m04kA/SMC-PetCareScheduler/internal/usecase/get_available_slots"

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string   `json:"date"`
	ServiceID string   `json:"serviceId"`
	Slots     []string `json:"slots"` // "08:00", "08:30", ...
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date,
		ServiceID: resp.ServiceID,
		Slots:     slots,
	}
}
