package get_available_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-PetCareScheduler/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/logger"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/types"
)

var defaultDay = BusinessDay{
	Start:       domain.DefaultDayStart,
	End:         domain.DefaultDayEnd,
	StepMinutes: domain.DefaultSlotStepMinutes,
}

func newUseCase(t *testing.T, repo *appointmentRepo.MemoryRepository) *UseCase {
	t.Helper()
	uc, err := NewUseCase(repo, defaultDay, logger.Nop())
	require.NoError(t, err)
	return uc
}

func add(t *testing.T, repo *appointmentRepo.MemoryRepository, id, date, start, end string, status domain.AppointmentStatus) {
	t.Helper()
	_, err := repo.Create(context.Background(), &domain.Appointment{
		ID: id, Date: date, StartTime: types.TimeString(start), EndTime: types.TimeString(end), Status: status,
	})
	require.NoError(t, err)
}

func TestGenerateTimeSlots_Default(t *testing.T) {
	slots, err := generateTimeSlots(defaultDay)
	require.NoError(t, err)

	require.Len(t, slots, 20)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("08:30"), slots[1])
	assert.Equal(t, types.TimeString("17:30"), slots[19])
}

func TestGenerateTimeSlots_Custom(t *testing.T) {
	slots, err := generateTimeSlots(BusinessDay{Start: "09:00", End: "10:50", StepMinutes: 45})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:45"}, slots)

	_, err = generateTimeSlots(BusinessDay{Start: "09:00", End: "10:00", StepMinutes: 0})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewUseCase(appointmentRepo.NewMemoryRepository(), BusinessDay{Start: "nine", End: "10:00", StepMinutes: 30}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestUseCase_Execute_EmptyDay(t *testing.T) {
	uc := newUseCase(t, appointmentRepo.NewMemoryRepository())

	got, err := uc.Execute(context.Background(), &Request{Date: "2025-01-10", ServiceID: "s-1"})
	require.NoError(t, err)
	assert.Len(t, got.Slots, 20)
	assert.Equal(t, "s-1", got.ServiceID)
}

func TestUseCase_Execute_RemovesExactStartTimes(t *testing.T) {
	repo := appointmentRepo.NewMemoryRepository()
	add(t, repo, "a-1", "2025-01-10", "09:00", "10:30", domain.StatusScheduled)
	add(t, repo, "a-2", "2025-01-10", "09:00", "09:30", domain.StatusConfirmed) // тот же старт, минус один слот
	add(t, repo, "a-3", "2025-01-10", "13:15", "13:45", domain.StatusScheduled) // вне сетки
	add(t, repo, "a-4", "2025-01-10", "14:00", "15:00", domain.StatusCancelled)
	add(t, repo, "a-5", "2025-01-10", "15:00", "15:30", domain.StatusNoShow)
	add(t, repo, "a-6", "2025-01-11", "08:00", "08:30", domain.StatusScheduled)
	add(t, repo, "a-7", "2025-01-10", "17:30", "18:00", domain.StatusCompleted)

	uc := newUseCase(t, repo)
	got, err := uc.Execute(context.Background(), &Request{Date: "2025-01-10"})
	require.NoError(t, err)

	assert.Len(t, got.Slots, 18)
	assert.NotContains(t, got.Slots, types.TimeString("09:00"))
	assert.NotContains(t, got.Slots, types.TimeString("17:30"))
	// длительность не учитывается: 09:30 и 10:00 остаются свободными
	assert.Contains(t, got.Slots, types.TimeString("09:30"))
	assert.Contains(t, got.Slots, types.TimeString("10:00"))
	assert.Contains(t, got.Slots, types.TimeString("14:00"))
	assert.Contains(t, got.Slots, types.TimeString("15:00"))
	assert.Contains(t, got.Slots, types.TimeString("08:00"))

	for i := 1; i < len(got.Slots); i++ {
		assert.True(t, got.Slots[i-1].IsBefore(got.Slots[i]))
	}
}

func TestUseCase_Execute_InvalidDate(t *testing.T) {
	uc := newUseCase(t, appointmentRepo.NewMemoryRepository())

	_, err := uc.Execute(context.Background(), &Request{Date: "2025/01/10"})
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}
