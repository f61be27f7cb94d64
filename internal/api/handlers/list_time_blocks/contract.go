package list_time_blocks

import (
	"context"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

type TimeBlockService interface {
	List(ctx context.Context, date *string) ([]*domain.TimeBlock, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
