package get_statistics

import (
	"context"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	getStatistics "github.com/m04kA/SMC-PetCareScheduler/internal/usecase/get_statistics"
)

type GetStatisticsUseCase interface {
	Execute(ctx context.Context, req *getStatistics.Request) (*domain.Statistics, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
