package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.IncAppointmentCreated()
	m.IncAppointmentCreated()
	m.IncBookingConflict("create")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.appointmentsCreated))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.bookingConflicts.WithLabelValues("create")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.bookingConflicts.WithLabelValues("update")))
}

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.ObserveHTTPRequest("GET", "/api/v1/appointments", 200, 15*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/v1/appointments", 200, 5*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/appointments", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.httpRequestDuration))
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New("a", prometheus.NewRegistry())
		New("b", prometheus.NewRegistry())
	})
}
