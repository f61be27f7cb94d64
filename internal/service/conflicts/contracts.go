package conflicts

import (
	"context"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// TimeBlockRepository интерфейс репозитория блокировок времени
type TimeBlockRepository interface {
	List(ctx context.Context, date *string) ([]*domain.TimeBlock, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
