package timeblocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	timeBlockRepo "github.com/m04kA/SMC-PetCareScheduler/internal/infra/storage/timeblock"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/types"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/validation"
)

// Service реестр блокировок времени (обед, уборка и т.п.)
type Service struct {
	repo         TimeBlockRepository
	validator    Validator
	newID        IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(repo TimeBlockRepository, validator Validator, logger Logger) *Service {
	return &Service{
		repo:         repo,
		validator:    validator,
		newID:        uuid.NewString,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает блокировки на дату или все, если date == nil
func (s *Service) List(ctx context.Context, date *string) ([]*domain.TimeBlock, error) {
	if date != nil && !validation.IsDate(*date) {
		s.logger.Warn("List: invalid date=%s", *date)
		return nil, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, *date)
	}

	blocks, err := s.repo.List(ctx, date)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return blocks, nil
}

// Create создает блокировку времени
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.TimeBlock, error) {
	s.logger.Info("Create: time block date=%s %s-%s", req.Date, req.StartTime, req.EndTime)

	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !start.IsBefore(end) {
		s.logger.Warn("Create: startTime=%s is not before endTime=%s", start, end)
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = domain.DefaultCreatedBy
	}

	block := &domain.TimeBlock{
		ID:        s.newID(),
		Date:      req.Date,
		StartTime: start,
		EndTime:   end,
		Reason:    req.Reason,
		CreatedBy: createdBy,
		CreatedAt: s.timeProvider.Now(),
	}

	created, err := s.repo.Create(ctx, block)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: time block id=%s created", created.ID)
	return created, nil
}

// Delete удаляет блокировку и возвращает ее ID
func (s *Service) Delete(ctx context.Context, id string) (string, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, timeBlockRepo.ErrTimeBlockNotFound) {
			s.logger.Warn("Delete: time block id=%s not found", id)
			return "", fmt.Errorf("%w: id=%s", ErrTimeBlockNotFound, id)
		}
		s.logger.Error("Delete: repository error for time block id=%s: %v", id, err)
		return "", fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: time block id=%s deleted", id)
	return id, nil
}
