package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-PetCareScheduler/pkg/ptr"
)

func TestAppointment_IsActive(t *testing.T) {
	for _, status := range AllStatuses {
		a := &Appointment{Status: status}
		want := status != StatusCancelled && status != StatusNoShow
		assert.Equal(t, want, a.IsActive(), status)
	}
}

func TestAppointmentFilter_Matches(t *testing.T) {
	a := &Appointment{
		ID:         "a-1",
		CustomerID: "c-1",
		PetID:      "p-1",
		EmployeeID: "e-1",
		Date:       "2025-01-10",
		StartTime:  "09:00",
		Status:     StatusConfirmed,
	}

	tests := []struct {
		name   string
		filter AppointmentFilter
		want   bool
	}{
		{name: "empty filter", filter: AppointmentFilter{}, want: true},
		{name: "same date", filter: AppointmentFilter{Date: ptr.Ptr("2025-01-10")}, want: true},
		{name: "other date", filter: AppointmentFilter{Date: ptr.Ptr("2025-01-11")}, want: false},
		{name: "range inclusive bounds", filter: AppointmentFilter{StartDate: ptr.Ptr("2025-01-10"), EndDate: ptr.Ptr("2025-01-10")}, want: true},
		{name: "range before", filter: AppointmentFilter{EndDate: ptr.Ptr("2025-01-09")}, want: false},
		{name: "status", filter: AppointmentFilter{Status: ptr.Ptr(StatusScheduled)}, want: false},
		{name: "customer", filter: AppointmentFilter{CustomerID: ptr.Ptr("c-1")}, want: true},
		{name: "pet mismatch", filter: AppointmentFilter{PetID: ptr.Ptr("p-2")}, want: false},
		{name: "employee", filter: AppointmentFilter{EmployeeID: ptr.Ptr("e-1")}, want: true},
		{name: "active only", filter: AppointmentFilter{ActiveOnly: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(a))
		})
	}

	cancelled := a.Clone()
	cancelled.Status = StatusCancelled
	assert.False(t, AppointmentFilter{ActiveOnly: true}.Matches(cancelled))
}

func TestLess_OrdersByDateThenStart(t *testing.T) {
	early := &Appointment{ID: "b", Date: "2025-01-10", StartTime: "09:00"}
	late := &Appointment{ID: "a", Date: "2025-01-10", StartTime: "14:30"}
	nextDay := &Appointment{ID: "c", Date: "2025-01-11", StartTime: "08:00"}

	assert.True(t, Less(early, late))
	assert.True(t, Less(late, nextDay))
	assert.False(t, Less(nextDay, early))
}

func TestAppointment_CloneIsIndependent(t *testing.T) {
	a := &Appointment{ID: "a-1", Notes: "first visit"}
	c := a.Clone()
	c.Notes = "changed"

	assert.Equal(t, "first visit", a.Notes)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("repo: %w", ErrNotFound)))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("create: %w: overlap", ErrConflict)))
	assert.Equal(t, KindValidation, KindOf(ErrValidation))
	assert.Equal(t, KindInternal, KindOf(errors.New("db down")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("")
	assert.NoError(t, err)
	assert.Equal(t, StatusScheduled, status)

	status, err = ParseStatus("no-show")
	assert.NoError(t, err)
	assert.Equal(t, StatusNoShow, status)

	_, err = ParseStatus("lost")
	assert.ErrorIs(t, err, ErrValidation)
}
