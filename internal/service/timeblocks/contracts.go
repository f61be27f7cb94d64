package timeblocks

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

// TimeBlockRepository интерфейс репозитория блокировок времени
type TimeBlockRepository interface {
	Create(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error)
	List(ctx context.Context, date *string) ([]*domain.TimeBlock, error)
	Delete(ctx context.Context, id string) error
}

// Validator валидирует структуры по тегам validate
type Validator interface {
	Struct(s interface{}) error
}

// IDGenerator выдает идентификаторы новых блокировок
type IDGenerator func() string

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
