package check_availability

import "github.com/m04kA/SMC-PetCareScheduler/internal/domain"

// Request модель запроса проверки интервала
type Request struct {
	Date      string // "2025-01-10"
	StartTime string // "09:00"
	EndTime   string // "09:30"
	ExcludeID string // ID редактируемой записи (опционально)
}

// Response результат проверки
type Response struct {
	Available bool
	Conflicts []*domain.Appointment
}
