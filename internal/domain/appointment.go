package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PetCareScheduler/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in-progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no-show"
)

// IsValid returns true if the status is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus converts a raw string into a known status.
// Empty input yields StatusScheduled.
func ParseStatus(s string) (AppointmentStatus, error) {
	if s == "" {
		return StatusScheduled, nil
	}
	status := AppointmentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
	}
	return status, nil
}

// StatusStrings returns AllStatuses as plain strings
func StatusStrings() []string {
	result := make([]string, len(AllStatuses))
	for i, s := range AllStatuses {
		result[i] = string(s)
	}
	return result
}

// IsTerminal returns true for statuses with no outgoing lifecycle edges
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// Appointment represents a grooming/vet/boarding appointment for a pet
type Appointment struct {
	ID string

	CustomerID      string
	CustomerName    string
	PetID           string
	PetName         string
	ServiceID       string
	ServiceName     string
	ServiceCategory string
	EmployeeID      string // пусто, если сотрудник не назначен
	EmployeeName    string

	Date            string // YYYY-MM-DD
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int

	Status AppointmentStatus

	Notes        string
	ReminderSent bool
	CreatedBy    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment holds its time slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// Overlaps returns true if [start, end) intersects the appointment's time on the same day
func (a *Appointment) Overlaps(start, end types.TimeString) bool {
	return types.OverlapsTime(a.StartTime, a.EndTime, start, end)
}

// Clone returns a copy that shares no memory with the receiver
func (a *Appointment) Clone() *Appointment {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

// AppointmentFilter фильтр списка записей. Все поля опциональны.
type AppointmentFilter struct {
	Date       *string            // точная дата
	StartDate  *string            // начало периода включительно
	EndDate    *string            // конец периода включительно
	Status     *AppointmentStatus // конкретный статус
	CustomerID *string
	PetID      *string
	EmployeeID *string
	ActiveOnly bool // исключить cancelled и no-show
}

// Matches проверяет запись на соответствие фильтру.
// Даты сравниваются лексикографически: формат YYYY-MM-DD фиксированной ширины.
func (f AppointmentFilter) Matches(a *Appointment) bool {
	if f.Date != nil && a.Date != *f.Date {
		return false
	}
	if f.StartDate != nil && a.Date < *f.StartDate {
		return false
	}
	if f.EndDate != nil && a.Date > *f.EndDate {
		return false
	}
	if f.Status != nil && a.Status != *f.Status {
		return false
	}
	if f.CustomerID != nil && a.CustomerID != *f.CustomerID {
		return false
	}
	if f.PetID != nil && a.PetID != *f.PetID {
		return false
	}
	if f.EmployeeID != nil && a.EmployeeID != *f.EmployeeID {
		return false
	}
	if f.ActiveOnly && !a.IsActive() {
		return false
	}
	return true
}

// Less порядок выдачи списков: (date, startTime) по возрастанию, затем ID для стабильности
func Less(a, b *Appointment) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	if a.StartTime != b.StartTime {
		return a.StartTime.IsBefore(b.StartTime)
	}
	return a.ID < b.ID
}

// ScheduleLockKey ключ сериализации проверок пересечения в пределах одной даты
func ScheduleLockKey(date string) string {
	return "appointments:" + date
}
