package update_appointment

import (
	"context"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	updateAppointment "github.com/m04kA/SMC-PetCareScheduler/internal/usecase/update_appointment"
)

type UpdateAppointmentUseCase interface {
	Execute(ctx context.Context, req *updateAppointment.Request) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
