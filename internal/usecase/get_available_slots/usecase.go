package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/ptr"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/validation"
)

// UseCase use case для получения свободных слотов
type UseCase struct {
	appointmentRepo AppointmentRepository
	day             BusinessDay
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. Сетка проверяется сразу.
func NewUseCase(appointmentRepo AppointmentRepository, day BusinessDay, logger Logger) (*UseCase, error) {
	if _, err := generateTimeSlots(day); err != nil {
		return nil, err
	}

	return &UseCase{
		appointmentRepo: appointmentRepo,
		day:             day,
		logger:          logger,
	}, nil
}

// Execute возвращает свободные слоты на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, service=%s", req.Date, req.ServiceID)

	if !validation.IsDate(req.Date) {
		uc.logger.Warn("GetAvailableSlots: invalid date=%q", req.Date)
		return nil, fmt.Errorf("%w: %q must be YYYY-MM-DD", ErrInvalidDate, req.Date)
	}

	grid, err := generateTimeSlots(uc.day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentFilter{
		Date:       ptr.Ptr(req.Date),
		ActiveOnly: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	slots := freeSlots(grid, appointments)

	uc.logger.Info("GetAvailableSlots: %d of %d slots free on %s", len(slots), len(grid), req.Date)
	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}
