package create_time_block

import (
	"context"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	"github.com/m04kA/SMC-PetCareScheduler/internal/service/timeblocks"
)

type TimeBlockService interface {
	Create(ctx context.Context, req *timeblocks.CreateRequest) (*domain.TimeBlock, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
