package check_availability

import (
	"context"

	"github.com/m04kA/SMC-PetCareScheduler/internal/service/conflicts"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/types"
)

// ConflictDetector проверка интервала на пересечения
type ConflictDetector interface {
	CheckAvailability(ctx context.Context, date string, start, end types.TimeString, excludeID string) (*conflicts.Availability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
