package create_appointment

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-PetCareScheduler/internal/infra/storage/appointment"
	timeBlockRepo "github.com/m04kA/SMC-PetCareScheduler/internal/infra/storage/timeblock"
	"github.com/m04kA/SMC-PetCareScheduler/internal/service/conflicts"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/events"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/keylock"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/logger"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/validation"
)

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type countingMetrics struct {
	created   atomic.Int64
	conflicts atomic.Int64
}

func (m *countingMetrics) IncAppointmentCreated()       { m.created.Add(1) }
func (m *countingMetrics) IncBookingConflict(op string) { m.conflicts.Add(1) }

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

type fixture struct {
	uc        *UseCase
	repo      *appointmentRepo.MemoryRepository
	blocks    *timeBlockRepo.MemoryRepository
	metrics   *countingMetrics
	publisher *recordingPublisher
}

var now = time.Date(2025, 1, 5, 8, 0, 0, 0, time.UTC)

func newFixture(checkTimeBlocks bool) *fixture {
	repo := appointmentRepo.NewMemoryRepository()
	blocks := timeBlockRepo.NewMemoryRepository()
	metrics := &countingMetrics{}
	publisher := &recordingPublisher{}
	log := logger.Nop()

	var seq atomic.Int64
	uc := NewUseCase(
		repo,
		conflicts.NewDetector(repo, blocks, log),
		keylock.New(),
		publisher,
		metrics,
		validation.New(domain.StatusStrings()),
		checkTimeBlocks,
		log,
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	uc.newID = func() string { return fmt.Sprintf("appt-%d", seq.Add(1)) }

	return &fixture{uc: uc, repo: repo, blocks: blocks, metrics: metrics, publisher: publisher}
}

func request(date, start, end string) *Request {
	return &Request{
		CustomerID:   "c-1",
		CustomerName: "Anna",
		PetID:        "p-1",
		PetName:      "Rex",
		ServiceID:    "s-1",
		ServiceName:  "Grooming",
		Date:         date,
		StartTime:    start,
		EndTime:      end,
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture(false)

	req := request("2025-01-10", "9:00", "10:00")
	req.CreatedBy = "u-7"

	got, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "appt-1", got.ID)
	assert.Equal(t, "09:00", got.StartTime.String())
	assert.Equal(t, 60, got.DurationMinutes)
	assert.Equal(t, domain.StatusScheduled, got.Status)
	assert.Equal(t, "u-7", got.CreatedBy)
	assert.Equal(t, now, got.CreatedAt)
	assert.Equal(t, now, got.UpdatedAt)

	stored, err := f.repo.GetByID(context.Background(), "appt-1")
	require.NoError(t, err)
	assert.Equal(t, got, stored)

	assert.EqualValues(t, 1, f.metrics.created.Load())
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, events.AppointmentCreated, f.publisher.events[0].Type)
}

func TestUseCase_Execute_DefaultCreator(t *testing.T) {
	f := newFixture(false)

	got, err := f.uc.Execute(context.Background(), request("2025-01-10", "09:00", "10:00"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCreatedBy, got.CreatedBy)
}

func TestUseCase_Execute_Scenario(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	detector := conflicts.NewDetector(f.repo, f.blocks, logger.Nop())
	before, err := detector.CheckAvailability(ctx, "2025-01-10", "09:00", "09:30", "")
	require.NoError(t, err)
	assert.True(t, before.Available)

	_, err = f.uc.Execute(ctx, request("2025-01-10", "09:00", "10:00"))
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, request("2025-01-10", "09:30", "10:30"))
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))

	third, err := f.uc.Execute(ctx, request("2025-01-10", "10:00", "10:30"))
	require.NoError(t, err)
	assert.Equal(t, "10:00", third.StartTime.String())

	all, err := f.repo.List(ctx, domain.AppointmentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.EqualValues(t, 1, f.metrics.conflicts.Load())
}

func TestUseCase_Execute_InactiveDoesNotBlock(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	cancelled := request("2025-01-10", "09:00", "10:00")
	cancelled.Status = string(domain.StatusCancelled)
	_, err := f.uc.Execute(ctx, cancelled)
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, request("2025-01-10", "09:30", "10:00"))
	require.NoError(t, err)

	// неактивная запись не конфликтует даже поверх активной
	noShow := request("2025-01-10", "09:30", "10:00")
	noShow.Status = string(domain.StatusNoShow)
	_, err = f.uc.Execute(ctx, noShow)
	require.NoError(t, err)
}

func TestUseCase_Execute_OtherDateDoesNotConflict(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, request("2025-01-10", "09:00", "10:00"))
	require.NoError(t, err)
	_, err = f.uc.Execute(ctx, request("2025-01-11", "09:00", "10:00"))
	require.NoError(t, err)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
	}{
		{name: "missing customer", modify: func(r *Request) { r.CustomerID = "" }},
		{name: "missing pet", modify: func(r *Request) { r.PetID = "" }},
		{name: "missing service", modify: func(r *Request) { r.ServiceID = "" }},
		{name: "bad date", modify: func(r *Request) { r.Date = "2025-13-01" }},
		{name: "bad time", modify: func(r *Request) { r.StartTime = "25:00" }},
		{name: "end before start", modify: func(r *Request) { r.StartTime, r.EndTime = "10:00", "09:00" }},
		{name: "empty interval", modify: func(r *Request) { r.EndTime = r.StartTime }},
		{name: "duration mismatch", modify: func(r *Request) { r.DurationMinutes = 45 }},
		{name: "negative duration", modify: func(r *Request) { r.DurationMinutes = -1 }},
		{name: "unknown status", modify: func(r *Request) { r.Status = "lost" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(false)
			req := request("2025-01-10", "09:00", "10:00")
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		})
	}
}

func TestUseCase_Execute_ExplicitDuration(t *testing.T) {
	f := newFixture(false)
	req := request("2025-01-10", "09:00", "09:45")
	req.DurationMinutes = 45

	got, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 45, got.DurationMinutes)
}

func TestUseCase_Execute_TimeBlocks(t *testing.T) {
	ctx := context.Background()
	block := &domain.TimeBlock{ID: "b-1", Date: "2025-01-10", StartTime: "12:00", EndTime: "13:00", Reason: "lunch"}

	// по умолчанию блокировки не учитываются
	f := newFixture(false)
	_, err := f.blocks.Create(ctx, block)
	require.NoError(t, err)
	_, err = f.uc.Execute(ctx, request("2025-01-10", "12:30", "13:00"))
	require.NoError(t, err)

	f = newFixture(true)
	_, err = f.blocks.Create(ctx, block)
	require.NoError(t, err)
	_, err = f.uc.Execute(ctx, request("2025-01-10", "12:30", "13:00"))
	assert.ErrorIs(t, err, ErrTimeBlocked)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))

	_, err = f.uc.Execute(ctx, request("2025-01-10", "13:00", "13:30"))
	require.NoError(t, err)
}

func TestUseCase_Execute_ConcurrentSameWindow(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	const workers = 20
	var (
		wg       sync.WaitGroup
		accepted atomic.Int64
		rejected atomic.Int64
	)

	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := f.uc.Execute(ctx, request("2025-01-10", "09:00", "10:00"))
			switch {
			case err == nil:
				accepted.Add(1)
			case domain.KindOf(err) == domain.KindConflict:
				rejected.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, accepted.Load())
	assert.EqualValues(t, workers-1, rejected.Load())

	all, err := f.repo.List(ctx, domain.AppointmentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
