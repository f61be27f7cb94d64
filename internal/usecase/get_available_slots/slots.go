package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/types"
)

// generateTimeSlots генерирует сетку слотов рабочего дня.
// Слоты идут от начала дня с фиксированным шагом, каждый слот должен целиком помещаться до конца дня.
// 08:00..18:00 с шагом 30 дает 20 слотов: 08:00, 08:30, ..., 17:30.
func generateTimeSlots(day BusinessDay) ([]types.TimeString, error) {
	if day.StepMinutes <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %d", ErrInvalidConfig, day.StepMinutes)
	}
	if err := day.Start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: day start: %v", ErrInvalidConfig, err)
	}
	if err := day.End.Validate(); err != nil {
		return nil, fmt.Errorf("%w: day end: %v", ErrInvalidConfig, err)
	}

	start := day.Start.MustMinutes()
	end := day.End.MustMinutes()

	slots := make([]types.TimeString, 0, (end-start)/day.StepMinutes+1)
	for m := start; m+day.StepMinutes <= end; m += day.StepMinutes {
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// freeSlots убирает слоты, совпадающие со временем начала активной записи.
// Совпадение точное: запись занимает только слот своего начала, независимо от длительности.
func freeSlots(grid []types.TimeString, appointments []*domain.Appointment) []types.TimeString {
	booked := make(map[types.TimeString]struct{}, len(appointments))
	for _, a := range appointments {
		if a.IsActive() {
			booked[a.StartTime] = struct{}{}
		}
	}

	result := make([]types.TimeString, 0, len(grid))
	for _, slot := range grid {
		if _, taken := booked[slot]; !taken {
			result = append(result, slot)
		}
	}

	return result
}
