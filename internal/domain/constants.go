package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Рабочий день по умолчанию: сетка слотов 08:00..18:00 с шагом 30 минут (20 слотов)
const (
	DefaultDayStart        = "08:00"
	DefaultDayEnd          = "18:00"
	DefaultSlotStepMinutes = 30
)

// Business validation constants
const (
	MaxNotesLength  = 1000
	MaxReasonLength = 500
	MaxNameLength   = 200
)

// DefaultCreatedBy создатель записи, если идентичность вызывающего неизвестна
const DefaultCreatedBy = "system"

// InactiveStatuses статусы, которые не удерживают время (не участвуют в проверке пересечений)
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}

// AllStatuses все допустимые статусы в порядке жизненного цикла
var AllStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}
