package create_appointment

import (
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/pkg/types"
)

// normalizeSchedule приводит время к HH:MM и проверяет start < end и согласованность длительности
func normalizeSchedule(startRaw, endRaw string, duration int) (types.TimeString, types.TimeString, int, error) {
	start, err := types.NewTimeStringFromString(startRaw)
	if err != nil {
		return "", "", 0, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(endRaw)
	if err != nil {
		return "", "", 0, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	actual, err := types.DurationMinutes(start, end)
	if err != nil {
		return "", "", 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if actual <= 0 {
		return "", "", 0, fmt.Errorf("%w: startTime %s must be before endTime %s", ErrInvalidInput, start, end)
	}

	if duration != 0 && duration != actual {
		return "", "", 0, fmt.Errorf("%w: duration %d does not match interval %s-%s (%d minutes)",
			ErrInvalidInput, duration, start, end, actual)
	}

	return start, end, actual, nil
}
