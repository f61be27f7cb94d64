package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	checkAvailabilityHandler "github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers/check_availability"
	createAppointmentHandler "github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers/create_appointment"
	createTimeBlockHandler "github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers/create_time_block"
	deleteAppointmentHandler "github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers/delete_appointment"
	deleteTimeBlockHandler "github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers/delete_time_block"
	getAppointmentHandler "github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers/get_available_slots"
	getStatisticsHandler "github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers/get_statistics"
	listAppointmentsHandler "github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers/list_appointments"
	listTimeBlocksHandler "github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers/list_time_blocks"
	setAppointmentStatusHandler "github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers/set_appointment_status"
	updateAppointmentHandler "github.com/m04kA/SMC-PetCareScheduler/internal/api/handlers/update_appointment"
	"github.com/m04kA/SMC-PetCareScheduler/internal/api/middleware"
)

// Handlers обработчики всех маршрутов API
type Handlers struct {
	ListAppointments     *listAppointmentsHandler.Handler
	GetAppointment       *getAppointmentHandler.Handler
	CreateAppointment    *createAppointmentHandler.Handler
	UpdateAppointment    *updateAppointmentHandler.Handler
	DeleteAppointment    *deleteAppointmentHandler.Handler
	SetAppointmentStatus *setAppointmentStatusHandler.Handler
	CheckAvailability    *checkAvailabilityHandler.Handler
	ListTimeBlocks       *listTimeBlocksHandler.Handler
	CreateTimeBlock      *createTimeBlockHandler.Handler
	DeleteTimeBlock      *deleteTimeBlockHandler.Handler
	GetAvailableSlots    *getAvailableSlotsHandler.Handler
	GetStatistics        *getStatisticsHandler.Handler
}

// Options сквозные настройки роутера. Metrics == nil выключает сбор и /metrics.
type Options struct {
	Metrics     middleware.MetricsCollector
	Gatherer    prometheus.Gatherer
	MetricsPath string
	AccessLog   *zerolog.Logger
	Logger      middleware.Logger
}

// NewRouter собирает mux.Router со всеми маршрутами /api/v1
func NewRouter(h Handlers, opts Options) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(opts.Logger))
	if opts.AccessLog != nil {
		r.Use(middleware.AccessLog(*opts.AccessLog))
	}
	r.Use(middleware.Identity)

	// Metrics middleware и endpoint
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		r.Handle(opts.MetricsPath, promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Записи ---
	api.HandleFunc("/appointments", h.ListAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", h.CreateAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", h.GetAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", h.UpdateAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{id}", h.DeleteAppointment.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{id}/status", h.SetAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Доступность ---
	api.HandleFunc("/availability", h.CheckAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", h.GetAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Блокировки времени ---
	api.HandleFunc("/time-blocks", h.ListTimeBlocks.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-blocks", h.CreateTimeBlock.Handle).Methods(http.MethodPost)
	api.HandleFunc("/time-blocks/{id}", h.DeleteTimeBlock.Handle).Methods(http.MethodDelete)

	// --- Статистика ---
	api.HandleFunc("/statistics", h.GetStatistics.Handle).Methods(http.MethodGet)

	return r
}
