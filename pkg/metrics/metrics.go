package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	appointmentsCreated prometheus.Counter
	bookingConflicts    *prometheus.CounterVec
}

// New регистрирует метрики в переданном registerer (prometheus.DefaultRegisterer в проде)
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		appointmentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "appointments_created_total",
			Help:        "Total number of appointments accepted",
			ConstLabels: constLabels,
		}),
		bookingConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Bookings rejected because of an overlapping appointment or time block",
			ConstLabels: constLabels,
		}, []string{"operation"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.appointmentsCreated,
		m.bookingConflicts,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncAppointmentCreated увеличивает счетчик принятых записей
func (m *Metrics) IncAppointmentCreated() {
	m.appointmentsCreated.Inc()
}

// IncBookingConflict увеличивает счетчик отклоненных из-за пересечения бронирований
func (m *Metrics) IncBookingConflict(operation string) {
	m.bookingConflicts.WithLabelValues(operation).Inc()
}
