package check_availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-PetCareScheduler/internal/infra/storage/appointment"
	timeBlockRepo "github.com/m04kA/SMC-PetCareScheduler/internal/infra/storage/timeblock"
	"github.com/m04kA/SMC-PetCareScheduler/internal/service/conflicts"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/logger"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/types"
)

type failingDetector struct{}

func (failingDetector) CheckAvailability(ctx context.Context, date string, start, end types.TimeString, excludeID string) (*conflicts.Availability, error) {
	return nil, errors.New("db down")
}

func TestUseCase_Execute(t *testing.T) {
	repo := appointmentRepo.NewMemoryRepository()
	_, err := repo.Create(context.Background(), &domain.Appointment{
		ID: "a-1", Date: "2025-01-10", StartTime: "09:00", EndTime: "10:00", Status: domain.StatusScheduled,
	})
	require.NoError(t, err)

	log := logger.Nop()
	uc := NewUseCase(conflicts.NewDetector(repo, timeBlockRepo.NewMemoryRepository(), log), log)
	ctx := context.Background()

	tests := []struct {
		name      string
		req       Request
		available bool
		conflicts int
	}{
		{name: "overlap", req: Request{Date: "2025-01-10", StartTime: "09:30", EndTime: "10:30"}, available: false, conflicts: 1},
		{name: "touching", req: Request{Date: "2025-01-10", StartTime: "10:00", EndTime: "10:30"}, available: true},
		{name: "excluded self", req: Request{Date: "2025-01-10", StartTime: "09:00", EndTime: "09:30", ExcludeID: "a-1"}, available: true},
		{name: "other date", req: Request{Date: "2025-01-11", StartTime: "09:00", EndTime: "09:30"}, available: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Execute(ctx, &tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.available, got.Available)
			assert.Len(t, got.Conflicts, tt.conflicts)
		})
	}
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	log := logger.Nop()
	uc := NewUseCase(conflicts.NewDetector(appointmentRepo.NewMemoryRepository(), timeBlockRepo.NewMemoryRepository(), log), log)

	for _, req := range []Request{
		{Date: "2025-01-10", StartTime: "", EndTime: "10:00"},
		{Date: "2025-01-10", StartTime: "09:00", EndTime: "9pm"},
		{Date: "2025-01-32", StartTime: "09:00", EndTime: "10:00"},
		{Date: "2025-01-10", StartTime: "10:00", EndTime: "09:00"},
	} {
		_, err := uc.Execute(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	}
}

func TestUseCase_Execute_InternalError(t *testing.T) {
	uc := NewUseCase(failingDetector{}, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-01-10", StartTime: "09:00", EndTime: "10:00"})
	assert.ErrorIs(t, err, ErrInternal)
}
