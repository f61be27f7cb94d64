package update_appointment

import (
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/types"
)

// merge накладывает патч на копию записи и проверяет результат
func (uc *UseCase) merge(current *domain.Appointment, req *Request) (*domain.Appointment, error) {
	merged := current.Clone()

	setString(&merged.CustomerID, req.CustomerID)
	setString(&merged.CustomerName, req.CustomerName)
	setString(&merged.PetID, req.PetID)
	setString(&merged.PetName, req.PetName)
	setString(&merged.ServiceID, req.ServiceID)
	setString(&merged.ServiceName, req.ServiceName)
	setString(&merged.ServiceCategory, req.ServiceCategory)
	setString(&merged.EmployeeID, req.EmployeeID)
	setString(&merged.EmployeeName, req.EmployeeName)
	setString(&merged.Date, req.Date)
	setString(&merged.Notes, req.Notes)
	if req.ReminderSent != nil {
		merged.ReminderSent = *req.ReminderSent
	}

	startRaw, endRaw := merged.StartTime.String(), merged.EndTime.String()
	setString(&startRaw, req.StartTime)
	setString(&endRaw, req.EndTime)

	statusRaw := string(merged.Status)
	setString(&statusRaw, req.Status)

	// при смене интервала без явной длительности она пересчитывается
	duration := 0
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}

	if err := uc.validator.Struct(&record{
		CustomerID:      merged.CustomerID,
		CustomerName:    merged.CustomerName,
		PetID:           merged.PetID,
		PetName:         merged.PetName,
		ServiceID:       merged.ServiceID,
		ServiceName:     merged.ServiceName,
		ServiceCategory: merged.ServiceCategory,
		EmployeeID:      merged.EmployeeID,
		EmployeeName:    merged.EmployeeName,
		Date:            merged.Date,
		StartTime:       startRaw,
		EndTime:         endRaw,
		DurationMinutes: duration,
		Status:          statusRaw,
		Notes:           merged.Notes,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start, err := types.NewTimeStringFromString(startRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(endRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	actual, err := types.DurationMinutes(start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if actual <= 0 {
		return nil, fmt.Errorf("%w: startTime %s must be before endTime %s", ErrInvalidInput, start, end)
	}
	if duration != 0 && duration != actual {
		return nil, fmt.Errorf("%w: duration %d does not match interval %s-%s (%d minutes)",
			ErrInvalidInput, duration, start, end, actual)
	}

	merged.StartTime = start
	merged.EndTime = end
	merged.DurationMinutes = actual
	merged.Status = domain.AppointmentStatus(statusRaw)

	return merged, nil
}

// needsRecheck true, если после изменения запись может занять чужое время
func needsRecheck(before, after *domain.Appointment) bool {
	if !after.IsActive() {
		return false
	}
	if !before.IsActive() {
		return true
	}
	return before.Date != after.Date ||
		before.StartTime != after.StartTime ||
		before.EndTime != after.EndTime ||
		before.EmployeeID != after.EmployeeID
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
