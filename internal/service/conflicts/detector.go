package conflicts

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/ptr"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/types"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/validation"
)

// Availability результат проверки интервала
type Availability struct {
	Available bool
	Conflicts []*domain.Appointment
}

// Detector ищет пересечения кандидата с активными записями и блокировками времени.
// Сам по себе не сериализует доступ: при бронировании вызывается внутри DoSerializable.
type Detector struct {
	appointmentRepo AppointmentRepository
	timeBlockRepo   TimeBlockRepository
	logger          Logger
}

// NewDetector создает детектор пересечений
func NewDetector(appointmentRepo AppointmentRepository, timeBlockRepo TimeBlockRepository, logger Logger) *Detector {
	return &Detector{
		appointmentRepo: appointmentRepo,
		timeBlockRepo:   timeBlockRepo,
		logger:          logger,
	}
}

// FindConflicts возвращает активные записи на дату, пересекающиеся с [start, end).
// Запись с ID == excludeID пропускается (повторная проверка редактируемой записи).
func (d *Detector) FindConflicts(ctx context.Context, date string, start, end types.TimeString, excludeID string) ([]*domain.Appointment, error) {
	if err := validateInterval(date, start, end); err != nil {
		return nil, err
	}

	appointments, err := d.appointmentRepo.List(ctx, domain.AppointmentFilter{
		Date:       ptr.Ptr(date),
		ActiveOnly: true,
	})
	if err != nil {
		d.logger.Error("FindConflicts: failed to list appointments for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: FindConflicts - list appointments: %v", ErrInternal, err)
	}

	conflicts := FindConflicts(appointments, date, start, end, excludeID)
	if len(conflicts) > 0 {
		d.logger.Info("FindConflicts: date=%s %s-%s overlaps %d appointment(s)", date, start, end, len(conflicts))
	}

	return conflicts, nil
}

// CheckAvailability обертка над FindConflicts
func (d *Detector) CheckAvailability(ctx context.Context, date string, start, end types.TimeString, excludeID string) (*Availability, error) {
	conflicts, err := d.FindConflicts(ctx, date, start, end, excludeID)
	if err != nil {
		return nil, err
	}

	return &Availability{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

// FindBlockingTimeBlocks возвращает блокировки времени на дату, пересекающиеся с [start, end)
func (d *Detector) FindBlockingTimeBlocks(ctx context.Context, date string, start, end types.TimeString) ([]*domain.TimeBlock, error) {
	if err := validateInterval(date, start, end); err != nil {
		return nil, err
	}

	blocks, err := d.timeBlockRepo.List(ctx, ptr.Ptr(date))
	if err != nil {
		d.logger.Error("FindBlockingTimeBlocks: failed to list time blocks for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: FindBlockingTimeBlocks - list time blocks: %v", ErrInternal, err)
	}

	result := make([]*domain.TimeBlock, 0)
	for _, b := range blocks {
		if b.Date == date && b.Overlaps(start, end) {
			result = append(result, b)
		}
	}

	return result, nil
}

// FindConflicts чистая версия проверки над готовым списком записей
func FindConflicts(appointments []*domain.Appointment, date string, start, end types.TimeString, excludeID string) []*domain.Appointment {
	result := make([]*domain.Appointment, 0)

	for _, a := range appointments {
		if a.Date != date || !a.IsActive() {
			continue
		}
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		if a.Overlaps(start, end) {
			result = append(result, a)
		}
	}

	return result
}

func validateInterval(date string, start, end types.TimeString) error {
	if !validation.IsDate(date) {
		return fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, date)
	}

	startMinutes, err := start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	endMinutes, err := end.Minutes()
	if err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}
	if startMinutes >= endMinutes {
		return fmt.Errorf("%w: startTime %s must be before endTime %s", ErrInvalidInput, start, end)
	}

	return nil
}
