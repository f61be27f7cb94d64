package handlers

import (
	"time"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

// AppointmentResponse HTTP модель записи
type AppointmentResponse struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customerId"`
	CustomerName    string `json:"customerName"`
	PetID           string `json:"petId"`
	PetName         string `json:"petName"`
	ServiceID       string `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	ServiceCategory string `json:"serviceCategory"`
	EmployeeID      string `json:"employeeId,omitempty"`
	EmployeeName    string `json:"employeeName,omitempty"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Duration        int    `json:"duration"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
	ReminderSent    bool   `json:"reminderSent"`
	CreatedBy       string `json:"createdBy"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// TimeBlockResponse HTTP модель блокировки времени
type TimeBlockResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason"`
	CreatedBy string `json:"createdBy"`
	CreatedAt string `json:"createdAt"`
}

// IDResponse ответ на удаление
type IDResponse struct {
	ID string `json:"id"`
}

// FromDomainAppointment конвертирует domain модель в HTTP модель
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}
	return &AppointmentResponse{
		ID:              a.ID,
		CustomerID:      a.CustomerID,
		CustomerName:    a.CustomerName,
		PetID:           a.PetID,
		PetName:         a.PetName,
		ServiceID:       a.ServiceID,
		ServiceName:     a.ServiceName,
		ServiceCategory: a.ServiceCategory,
		EmployeeID:      a.EmployeeID,
		EmployeeName:    a.EmployeeName,
		Date:            a.Date,
		StartTime:       a.StartTime.String(),
		EndTime:         a.EndTime.String(),
		Duration:        a.DurationMinutes,
		Status:          string(a.Status),
		Notes:           a.Notes,
		ReminderSent:    a.ReminderSent,
		CreatedBy:       a.CreatedBy,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       a.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointments конвертирует список; пустой список остается пустым массивом в JSON
func FromDomainAppointments(items []*domain.Appointment) []*AppointmentResponse {
	result := make([]*AppointmentResponse, 0, len(items))
	for _, a := range items {
		result = append(result, FromDomainAppointment(a))
	}
	return result
}

// FromDomainTimeBlock конвертирует domain модель в HTTP модель
func FromDomainTimeBlock(b *domain.TimeBlock) *TimeBlockResponse {
	if b == nil {
		return nil
	}
	return &TimeBlockResponse{
		ID:        b.ID,
		Date:      b.Date,
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
		Reason:    b.Reason,
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}
