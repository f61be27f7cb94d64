package update_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/events"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Update(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// ConflictDetector ищет пересечения с активными записями и блокировками времени
type ConflictDetector interface {
	FindConflicts(ctx context.Context, date string, start, end types.TimeString, excludeID string) ([]*domain.Appointment, error)
	FindBlockingTimeBlocks(ctx context.Context, date string, start, end types.TimeString) ([]*domain.TimeBlock, error)
}

// TransactionManager сериализует re-check-then-update по ключу даты
type TransactionManager interface {
	DoSerializable(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// EventPublisher публикует события жизненного цикла записи
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Metrics счетчики бронирований
type Metrics interface {
	IncBookingConflict(operation string)
}

// Validator валидирует структуры по тегам validate
type Validator interface {
	Struct(s interface{}) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
