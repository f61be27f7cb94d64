package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-PetCareScheduler/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/events"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/validation"
)

// Service сервис чтения, удаления и смены статуса записей.
// Создание и редактирование с проверкой пересечений живут в usecase.
type Service struct {
	appointmentRepo   AppointmentRepository
	txManager         TransactionManager
	publisher         EventPublisher
	strictTransitions bool
	timeProvider      TimeProvider
	logger            Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	strictTransitions bool,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo:   appointmentRepo,
		txManager:         txManager,
		publisher:         publisher,
		strictTransitions: strictTransitions,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
	}
}

// List возвращает записи по фильтру, отсортированные по (date, startTime)
func (s *Service) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	if err := validateFilter(filter); err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return appointments, nil
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, fmt.Errorf("%w: id=%s", ErrAppointmentNotFound, id)
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return appointment, nil
}

// Delete удаляет запись и возвращает ее ID
func (s *Service) Delete(ctx context.Context, id string) (string, error) {
	s.logger.Info("Delete: deleting appointment id=%s", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return "", fmt.Errorf("%w: id=%s", ErrAppointmentNotFound, id)
		}
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		return "", fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.publish(ctx, events.Event{
		Type:          events.AppointmentDeleted,
		AppointmentID: id,
		OccurredAt:    s.timeProvider.Now(),
	})

	s.logger.Info("Delete: appointment id=%s deleted", id)
	return id, nil
}

// SetStatus устанавливает статус записи.
// Пересечения не перепроверяются. Повторная установка того же статуса меняет только UpdatedAt.
func (s *Service) SetStatus(ctx context.Context, id string, rawStatus string) (*domain.Appointment, error) {
	s.logger.Info("SetStatus: appointment id=%s status=%s", id, rawStatus)

	if rawStatus == "" {
		return nil, fmt.Errorf("%w: status is required", ErrInvalidStatus)
	}
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		s.logger.Warn("SetStatus: %v", err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, rawStatus)
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var result *domain.Appointment
	var previous domain.AppointmentStatus

	err = s.txManager.DoSerializable(ctx, domain.ScheduleLockKey(current.Date), func(txCtx context.Context) error {
		// перечитываем под блокировкой
		appointment, err := s.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if !CanTransition(appointment.Status, status, s.strictTransitions) {
			s.logger.Warn("SetStatus: transition %s -> %s not allowed for appointment id=%s", appointment.Status, status, id)
			return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, appointment.Status, status)
		}

		previous = appointment.Status
		appointment.Status = status
		appointment.UpdatedAt = s.timeProvider.Now()

		updated, err := s.appointmentRepo.Update(txCtx, appointment)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return fmt.Errorf("%w: id=%s", ErrAppointmentNotFound, id)
			}
			s.logger.Error("SetStatus: failed to update appointment id=%s: %v", id, err)
			return fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:          events.AppointmentStatusChanged,
		AppointmentID: result.ID,
		Date:          result.Date,
		StartTime:     result.StartTime.String(),
		Status:        string(result.Status),
		OccurredAt:    result.UpdatedAt,
	})

	s.logger.Info("SetStatus: appointment id=%s %s -> %s", id, previous, status)
	return result, nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish: %s for appointment id=%s failed: %v", event.Type, event.AppointmentID, err)
	}
}

func validateFilter(filter domain.AppointmentFilter) error {
	for name, value := range map[string]*string{
		"date":      filter.Date,
		"startDate": filter.StartDate,
		"endDate":   filter.EndDate,
	} {
		if value != nil && !validation.IsDate(*value) {
			return fmt.Errorf("%w: %s %q must be YYYY-MM-DD", ErrInvalidFilter, name, *value)
		}
	}

	if filter.StartDate != nil && filter.EndDate != nil && *filter.StartDate > *filter.EndDate {
		return fmt.Errorf("%w: startDate is after endDate", ErrInvalidFilter)
	}

	if filter.Status != nil && !filter.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, *filter.Status)
	}

	return nil
}
