package appointments

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-PetCareScheduler/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/events"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/keylock"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/logger"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/ptr"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

var (
	createdAt = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	later     = time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
)

func setup(t *testing.T, strict bool) (*Service, *appointmentRepo.MemoryRepository, *recordingPublisher) {
	t.Helper()

	repo := appointmentRepo.NewMemoryRepository()
	_, err := repo.Create(context.Background(), &domain.Appointment{
		ID:              "a-1",
		CustomerID:      "c-1",
		PetID:           "p-1",
		ServiceID:       "s-1",
		ServiceName:     "Grooming",
		Date:            "2025-01-10",
		StartTime:       "09:00",
		EndTime:         "10:00",
		DurationMinutes: 60,
		Status:          domain.StatusScheduled,
		Notes:           "first visit",
		CreatedBy:       "u-1",
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	})
	require.NoError(t, err)

	publisher := &recordingPublisher{}
	svc := NewService(repo, keylock.New(), publisher, strict, logger.Nop())
	svc.timeProvider = &fixedTimeProvider{now: later}

	return svc, repo, publisher
}

func TestService_GetByID(t *testing.T) {
	svc, _, _ := setup(t, false)

	got, err := svc.GetByID(context.Background(), "a-1")
	require.NoError(t, err)
	assert.Equal(t, "Grooming", got.ServiceName)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestService_List(t *testing.T) {
	svc, _, _ := setup(t, false)
	ctx := context.Background()

	got, err := svc.List(ctx, domain.AppointmentFilter{Date: ptr.Ptr("2025-01-10")})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.List(ctx, domain.AppointmentFilter{StartDate: ptr.Ptr("2025/01/10")})
	assert.ErrorIs(t, err, ErrInvalidFilter)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = svc.List(ctx, domain.AppointmentFilter{StartDate: ptr.Ptr("2025-01-11"), EndDate: ptr.Ptr("2025-01-10")})
	assert.ErrorIs(t, err, ErrInvalidFilter)

	bad := domain.AppointmentStatus("lost")
	_, err = svc.List(ctx, domain.AppointmentFilter{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestService_Delete(t *testing.T) {
	svc, repo, publisher := setup(t, false)
	ctx := context.Background()

	id, err := svc.Delete(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, "a-1", id)

	_, err = repo.GetByID(ctx, "a-1")
	assert.ErrorIs(t, err, appointmentRepo.ErrAppointmentNotFound)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, events.AppointmentDeleted, publisher.events[0].Type)

	_, err = svc.Delete(ctx, "a-1")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_SetStatus_Permissive(t *testing.T) {
	svc, _, publisher := setup(t, false)
	ctx := context.Background()

	// любой переход, включая выход из терминального статуса
	for _, status := range []domain.AppointmentStatus{
		domain.StatusCompleted,
		domain.StatusScheduled,
		domain.StatusNoShow,
		domain.StatusInProgress,
	} {
		got, err := svc.SetStatus(ctx, "a-1", string(status))
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}

	assert.Len(t, publisher.events, 4)
	assert.Equal(t, events.AppointmentStatusChanged, publisher.events[0].Type)
}

func TestService_SetStatus_Idempotent(t *testing.T) {
	svc, repo, _ := setup(t, false)
	ctx := context.Background()

	before, err := repo.GetByID(ctx, "a-1")
	require.NoError(t, err)

	after, err := svc.SetStatus(ctx, "a-1", string(before.Status))
	require.NoError(t, err)

	assert.Equal(t, later, after.UpdatedAt)

	after.UpdatedAt = before.UpdatedAt
	assert.Equal(t, before, after)
}

func TestService_SetStatus_Errors(t *testing.T) {
	svc, _, _ := setup(t, false)
	ctx := context.Background()

	_, err := svc.SetStatus(ctx, "missing", "confirmed")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = svc.SetStatus(ctx, "a-1", "lost")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = svc.SetStatus(ctx, "a-1", "")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_SetStatus_Strict(t *testing.T) {
	svc, _, _ := setup(t, true)
	ctx := context.Background()

	_, err := svc.SetStatus(ctx, "a-1", "completed")
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)

	for _, status := range []string{"confirmed", "in-progress", "completed"} {
		_, err := svc.SetStatus(ctx, "a-1", status)
		require.NoError(t, err, status)
	}

	_, err = svc.SetStatus(ctx, "a-1", "scheduled")
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)

	got, err := svc.SetStatus(ctx, "a-1", "completed")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)
}

func TestService_PublishFailureDoesNotFail(t *testing.T) {
	svc, _, publisher := setup(t, false)
	publisher.err = errors.New("broker down")

	got, err := svc.SetStatus(context.Background(), "a-1", "confirmed")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to domain.AppointmentStatus
		want     bool
	}{
		{domain.StatusScheduled, domain.StatusConfirmed, true},
		{domain.StatusScheduled, domain.StatusCancelled, true},
		{domain.StatusScheduled, domain.StatusNoShow, true},
		{domain.StatusScheduled, domain.StatusInProgress, false},
		{domain.StatusConfirmed, domain.StatusInProgress, true},
		{domain.StatusConfirmed, domain.StatusCompleted, false},
		{domain.StatusInProgress, domain.StatusCompleted, true},
		{domain.StatusInProgress, domain.StatusCancelled, false},
		{domain.StatusCompleted, domain.StatusScheduled, false},
		{domain.StatusCancelled, domain.StatusScheduled, false},
		{domain.StatusNoShow, domain.StatusNoShow, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to, true), "%s -> %s", tt.from, tt.to)
		assert.True(t, CanTransition(tt.from, tt.to, false))
	}
}
