package update_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-PetCareScheduler/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/events"
)

// UseCase use case частичного обновления записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	detector        ConflictDetector
	txManager       TransactionManager
	publisher       EventPublisher
	metrics         Metrics
	validator       Validator
	checkTimeBlocks bool
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	detector ConflictDetector,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	validator Validator,
	checkTimeBlocks bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		detector:        detector,
		txManager:       txManager,
		publisher:       publisher,
		metrics:         metrics,
		validator:       validator,
		checkTimeBlocks: checkTimeBlocks,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute применяет патч к записи.
// Если меняются дата, время или сотрудник, пересечения перепроверяются под блокировкой
// новой даты, без учета самой записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Appointment, error) {
	uc.logger.Info("UpdateAppointment: id=%s", req.ID)

	// 1. Снимок до блокировки: быстрый отказ на невалидном патче и ключ блокировки
	current, err := uc.get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	merged, err := uc.merge(current, req)
	if err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed for id=%s: %v", req.ID, err)
		return nil, err
	}
	lockDate := merged.Date

	var result *domain.Appointment

	// 2. Перечитываем, сливаем и сохраняем под блокировкой даты
	err = uc.txManager.DoSerializable(ctx, domain.ScheduleLockKey(lockDate), func(txCtx context.Context) error {
		current, err := uc.get(txCtx, req.ID)
		if err != nil {
			return err
		}

		merged, err := uc.merge(current, req)
		if err != nil {
			return err
		}
		if merged.Date != lockDate {
			uc.logger.Warn("UpdateAppointment: date of id=%s changed concurrently (%s -> %s)", req.ID, lockDate, merged.Date)
			return ErrConcurrentUpdate
		}

		if needsRecheck(current, merged) {
			if err := uc.ensureFree(txCtx, merged); err != nil {
				return err
			}
		}

		merged.UpdatedAt = uc.timeProvider.Now()

		updated, err := uc.appointmentRepo.Update(txCtx, merged)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return fmt.Errorf("%w: id=%s", ErrAppointmentNotFound, req.ID)
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.publisher.Publish(ctx, events.Event{
		Type:          events.AppointmentUpdated,
		AppointmentID: result.ID,
		Date:          result.Date,
		StartTime:     result.StartTime.String(),
		Status:        string(result.Status),
		OccurredAt:    result.UpdatedAt,
	}); err != nil {
		uc.logger.Warn("UpdateAppointment: failed to publish event for id=%s: %v", result.ID, err)
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%s", result.ID)
	return result, nil
}

func (uc *UseCase) get(ctx context.Context, id string) (*domain.Appointment, error) {
	appointment, err := uc.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateAppointment: appointment id=%s not found", id)
			return nil, fmt.Errorf("%w: id=%s", ErrAppointmentNotFound, id)
		}
		uc.logger.Error("UpdateAppointment: failed to get appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}
	return appointment, nil
}

func (uc *UseCase) ensureFree(ctx context.Context, a *domain.Appointment) error {
	conflicts, err := uc.detector.FindConflicts(ctx, a.Date, a.StartTime, a.EndTime, a.ID)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to find conflicts: %v", err)
		return fmt.Errorf("%w: failed to find conflicts: %v", ErrInternal, err)
	}
	if len(conflicts) > 0 {
		uc.metrics.IncBookingConflict("update")
		ids := make([]string, 0, len(conflicts))
		for _, c := range conflicts {
			ids = append(ids, c.ID)
		}
		uc.logger.Warn("UpdateAppointment: id=%s %s %s-%s overlaps %s", a.ID, a.Date, a.StartTime, a.EndTime, strings.Join(ids, ","))
		return fmt.Errorf("%w: overlaps %s", ErrConflict, strings.Join(ids, ", "))
	}

	if !uc.checkTimeBlocks {
		return nil
	}

	blocks, err := uc.detector.FindBlockingTimeBlocks(ctx, a.Date, a.StartTime, a.EndTime)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to find time blocks: %v", err)
		return fmt.Errorf("%w: failed to find time blocks: %v", ErrInternal, err)
	}
	if len(blocks) > 0 {
		uc.metrics.IncBookingConflict("update")
		return fmt.Errorf("%w: %s-%s %s", ErrTimeBlocked, blocks[0].StartTime, blocks[0].EndTime, blocks[0].Reason)
	}

	return nil
}
