package set_appointment_status

import (
	"context"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

type AppointmentService interface {
	SetStatus(ctx context.Context, id string, status string) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
