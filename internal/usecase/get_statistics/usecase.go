package get_statistics

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/ptr"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/validation"
)

// UseCase use case статистики по записям за период
type UseCase struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute считает статистику. Только чтение.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Statistics, error) {
	uc.logger.Info("GetStatistics: period=%s..%s", req.StartDate, req.EndDate)

	if !validation.IsDate(req.StartDate) {
		uc.logger.Warn("GetStatistics: invalid startDate=%q", req.StartDate)
		return nil, fmt.Errorf("%w: startDate %q must be YYYY-MM-DD", ErrInvalidPeriod, req.StartDate)
	}
	if !validation.IsDate(req.EndDate) {
		uc.logger.Warn("GetStatistics: invalid endDate=%q", req.EndDate)
		return nil, fmt.Errorf("%w: endDate %q must be YYYY-MM-DD", ErrInvalidPeriod, req.EndDate)
	}
	if req.StartDate > req.EndDate {
		uc.logger.Warn("GetStatistics: startDate=%s is after endDate=%s", req.StartDate, req.EndDate)
		return nil, fmt.Errorf("%w: startDate is after endDate", ErrInvalidPeriod)
	}

	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentFilter{
		StartDate: ptr.Ptr(req.StartDate),
		EndDate:   ptr.Ptr(req.EndDate),
	})
	if err != nil {
		uc.logger.Error("GetStatistics: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	stats := Aggregate(appointments, req.StartDate, req.EndDate)

	uc.logger.Info("GetStatistics: total=%d for %s..%s", stats.Total, req.StartDate, req.EndDate)
	return stats, nil
}
