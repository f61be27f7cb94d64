package conflicts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/logger"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/types"
)

type mockAppointmentRepo struct {
	listFunc func(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

func (m *mockAppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	return m.listFunc(ctx, filter)
}

type mockTimeBlockRepo struct {
	blocks []*domain.TimeBlock
	err    error
}

func (m *mockTimeBlockRepo) List(ctx context.Context, date *string) ([]*domain.TimeBlock, error) {
	return m.blocks, m.err
}

func appt(id, start, end string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:        id,
		Date:      "2025-01-10",
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Status:    status,
	}
}

func TestFindConflicts_Pure(t *testing.T) {
	existing := []*domain.Appointment{
		appt("a-1", "09:00", "10:00", domain.StatusScheduled),
		appt("a-2", "09:00", "10:00", domain.StatusCancelled),
		appt("a-3", "11:00", "12:00", domain.StatusNoShow),
		appt("a-4", "13:00", "14:00", domain.StatusInProgress),
	}

	tests := []struct {
		name      string
		start     string
		end       string
		excludeID string
		want      []string
	}{
		{name: "overlap", start: "09:30", end: "10:30", want: []string{"a-1"}},
		{name: "touching end", start: "10:00", end: "10:30", want: []string{}},
		{name: "touching start", start: "08:30", end: "09:00", want: []string{}},
		{name: "contains", start: "08:00", end: "15:00", want: []string{"a-1", "a-4"}},
		{name: "cancelled does not block", start: "09:30", end: "10:00", excludeID: "a-1", want: []string{}},
		{name: "no-show does not block", start: "11:00", end: "12:00", want: []string{}},
		{name: "exclude self", start: "13:30", end: "14:30", excludeID: "a-4", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindConflicts(existing, "2025-01-10", types.TimeString(tt.start), types.TimeString(tt.end), tt.excludeID)

			ids := make([]string, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFindConflicts_OtherDateIgnored(t *testing.T) {
	other := appt("a-1", "09:00", "10:00", domain.StatusScheduled)
	other.Date = "2025-01-11"

	got := FindConflicts([]*domain.Appointment{other}, "2025-01-10", "09:00", "10:00", "")
	assert.Empty(t, got)
}

func TestDetector_CheckAvailability(t *testing.T) {
	var gotFilter domain.AppointmentFilter
	repo := &mockAppointmentRepo{
		listFunc: func(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
			gotFilter = filter
			return []*domain.Appointment{appt("a-1", "09:00", "10:00", domain.StatusConfirmed)}, nil
		},
	}
	d := NewDetector(repo, &mockTimeBlockRepo{}, logger.Nop())

	result, err := d.CheckAvailability(context.Background(), "2025-01-10", "09:30", "10:30", "")
	require.NoError(t, err)
	assert.False(t, result.Available)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, "a-1", result.Conflicts[0].ID)

	require.NotNil(t, gotFilter.Date)
	assert.Equal(t, "2025-01-10", *gotFilter.Date)
	assert.True(t, gotFilter.ActiveOnly)

	result, err = d.CheckAvailability(context.Background(), "2025-01-10", "10:00", "10:30", "")
	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.NotNil(t, result.Conflicts)
	assert.Empty(t, result.Conflicts)
}

func TestDetector_InvalidInput(t *testing.T) {
	d := NewDetector(&mockAppointmentRepo{}, &mockTimeBlockRepo{}, logger.Nop())
	ctx := context.Background()

	_, err := d.FindConflicts(ctx, "10.01.2025", "09:00", "10:00", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = d.FindConflicts(ctx, "2025-01-10", "9am", "10:00", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = d.FindConflicts(ctx, "2025-01-10", "10:00", "10:00", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDetector_RepositoryError(t *testing.T) {
	repo := &mockAppointmentRepo{
		listFunc: func(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
			return nil, errors.New("db down")
		},
	}
	d := NewDetector(repo, &mockTimeBlockRepo{}, logger.Nop())

	_, err := d.FindConflicts(context.Background(), "2025-01-10", "09:00", "10:00", "")
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}

func TestDetector_FindBlockingTimeBlocks(t *testing.T) {
	blocks := &mockTimeBlockRepo{blocks: []*domain.TimeBlock{
		{ID: "b-1", Date: "2025-01-10", StartTime: "12:00", EndTime: "13:00", Reason: "lunch"},
		{ID: "b-2", Date: "2025-01-10", StartTime: "17:00", EndTime: "18:00"},
	}}
	d := NewDetector(&mockAppointmentRepo{}, blocks, logger.Nop())

	got, err := d.FindBlockingTimeBlocks(context.Background(), "2025-01-10", "12:30", "13:30")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b-1", got[0].ID)

	got, err = d.FindBlockingTimeBlocks(context.Background(), "2025-01-10", "13:00", "13:30")
	require.NoError(t, err)
	assert.Empty(t, got)

	blocks.err = errors.New("db down")
	_, err = d.FindBlockingTimeBlocks(context.Background(), "2025-01-10", "12:30", "13:30")
	assert.ErrorIs(t, err, ErrInternal)
}
