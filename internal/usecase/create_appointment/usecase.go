package create_appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/events"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	detector        ConflictDetector
	txManager       TransactionManager
	publisher       EventPublisher
	metrics         Metrics
	validator       Validator
	checkTimeBlocks bool
	newID           func() string
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
		newID:           uuid.NewString,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка пересечений и вставка выполняются под блокировкой даты,
// поэтому из двух конкурентных запросов на одно окно принимается ровно один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Appointment, error) {
	uc.logger.Info("CreateAppointment: customer=%s, pet=%s, service=%s, date=%s, time=%s-%s",
		req.CustomerID, req.PetID, req.ServiceID, req.Date, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := uc.validator.Struct(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start, end, duration, err := normalizeSchedule(req.StartTime, req.EndTime, req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateAppointment: schedule validation failed: %v", err)
		return nil, err
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = domain.DefaultCreatedBy
	}

	// 2. Собираем запись
	now := uc.timeProvider.Now()
	appointment := &domain.Appointment{
		ID:              uc.newID(),
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		PetID:           req.PetID,
		PetName:         req.PetName,
		ServiceID:       req.ServiceID,
		ServiceName:     req.ServiceName,
		ServiceCategory: req.ServiceCategory,
		EmployeeID:      req.EmployeeID,
		EmployeeName:    req.EmployeeName,
		Date:            req.Date,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: duration,
		Status:          status,
		Notes:           req.Notes,
		ReminderSent:    req.ReminderSent,
		CreatedBy:       createdBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var result *domain.Appointment

	// 3. Проверка пересечений и вставка под блокировкой даты
	err = uc.txManager.DoSerializable(ctx, domain.ScheduleLockKey(req.Date), func(txCtx context.Context) error {
		// Неактивная запись не удерживает время и не может конфликтовать
		if appointment.IsActive() {
			if err := uc.ensureFree(txCtx, appointment); err != nil {
				return err
			}
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncAppointmentCreated()

	if err := uc.publisher.Publish(ctx, events.Event{
		Type:          events.AppointmentCreated,
		AppointmentID: result.ID,
		Date:          result.Date,
		StartTime:     result.StartTime.String(),
		Status:        string(result.Status),
		OccurredAt:    now,
	}); err != nil {
		uc.logger.Warn("CreateAppointment: failed to publish event for id=%s: %v", result.ID, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)
	return result, nil
}

func (uc *UseCase) ensureFree(ctx context.Context, a *domain.Appointment) error {
	conflicts, err := uc.detector.FindConflicts(ctx, a.Date, a.StartTime, a.EndTime, "")
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to find conflicts: %v", err)
		return fmt.Errorf("%w: failed to find conflicts: %v", ErrInternal, err)
	}
	if len(conflicts) > 0 {
		uc.metrics.IncBookingConflict("create")
		uc.logger.Warn("CreateAppointment: date=%s %s-%s overlaps %d appointment(s)", a.Date, a.StartTime, a.EndTime, len(conflicts))
		return fmt.Errorf("%w: overlaps %s", ErrConflict, describeConflicts(conflicts))
	}

	if !uc.checkTimeBlocks {
		return nil
	}

	blocks, err := uc.detector.FindBlockingTimeBlocks(ctx, a.Date, a.StartTime, a.EndTime)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to find time blocks: %v", err)
		return fmt.Errorf("%w: failed to find time blocks: %v", ErrInternal, err)
	}
	if len(blocks) > 0 {
		uc.metrics.IncBookingConflict("create")
		uc.logger.Warn("CreateAppointment: date=%s %s-%s overlaps time block id=%s", a.Date, a.StartTime, a.EndTime, blocks[0].ID)
		return fmt.Errorf("%w: %s-%s %s", ErrTimeBlocked, blocks[0].StartTime, blocks[0].EndTime, blocks[0].Reason)
	}

	return nil
}

// describeConflicts "09:00-10:00 (id=...)" через запятую
func describeConflicts(conflicts []*domain.Appointment) string {
	parts := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		parts = append(parts, fmt.Sprintf("%s-%s (id=%s)", c.StartTime, c.EndTime, c.ID))
	}
	return strings.Join(parts, ", ")
}
