package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/internal/service/conflicts"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/types"
)

// UseCase use case проверки доступности интервала
type UseCase struct {
	detector ConflictDetector
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(detector ConflictDetector, logger Logger) *UseCase {
	return &UseCase{
		detector: detector,
		logger:   logger,
	}
}

// Execute проверяет, свободен ли интервал на дату. Ничего не изменяет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		uc.logger.Warn("CheckAvailability: invalid startTime=%q", req.StartTime)
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		uc.logger.Warn("CheckAvailability: invalid endTime=%q", req.EndTime)
		return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	availability, err := uc.detector.CheckAvailability(ctx, req.Date, start, end, req.ExcludeID)
	if err != nil {
		if errors.Is(err, conflicts.ErrInvalidInput) {
			uc.logger.Warn("CheckAvailability: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CheckAvailability: detector error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckAvailability: date=%s %s-%s available=%t", req.Date, start, end, availability.Available)
	return &Response{
		Available: availability.Available,
		Conflicts: availability.Conflicts,
	}, nil
}
