package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/m04kA/SMC-PetCareScheduler/internal/api"
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
	"github.com/m04kA/SMC-PetCareScheduler/internal/config"
	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-PetCareScheduler/internal/infra/storage/appointment"
	timeBlockRepo "github.com/m04kA/SMC-PetCareScheduler/internal/infra/storage/timeblock"
	appointmentsService "github.com/m04kA/SMC-PetCareScheduler/internal/service/appointments"
	"github.com/m04kA/SMC-PetCareScheduler/internal/service/conflicts"
	timeBlocksService "github.com/m04kA/SMC-PetCareScheduler/internal/service/timeblocks"
	checkAvailabilityUC "github.com/m04kA/SMC-PetCareScheduler/internal/usecase/check_availability"
	createAppointmentUC "github.com/m04kA/SMC-PetCareScheduler/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-PetCareScheduler/internal/usecase/get_available_slots"
	getStatisticsUC "github.com/m04kA/SMC-PetCareScheduler/internal/usecase/get_statistics"
	updateAppointmentUC "github.com/m04kA/SMC-PetCareScheduler/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/events"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/keylock"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/logger"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/metrics"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/txmanager"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/types"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/validation"
)

var ErrInit = errors.New("app: initialization failed")

// appointmentStore полный набор операций хранилища записей
type appointmentStore interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	Update(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}

type timeBlockStore interface {
	Create(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error)
	GetByID(ctx context.Context, id string) (*domain.TimeBlock, error)
	List(ctx context.Context, date *string) ([]*domain.TimeBlock, error)
	Delete(ctx context.Context, id string) error
}

type serializer interface {
	DoSerializable(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type publisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// App собранный сервис: HTTP обработчик и ресурсы, которые нужно закрыть при остановке
type App struct {
	Handler http.Handler

	closers []func() error
}

// New собирает хранилище, сервисы, use cases и роутер по конфигурации.
// registry используется и для регистрации метрик, и для /metrics.
func New(cfg *config.Config, log *logger.Logger, registry *prometheus.Registry) (*App, error) {
	a := &App{}

	// Хранилище
	var (
		appointments appointmentStore
		timeBlocks   timeBlockStore
		txManager    serializer
	)

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := openDatabase(cfg.Database)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)

		appointments = appointmentRepo.NewRepository(db)
		timeBlocks = timeBlockRepo.NewRepository(db)
		txManager = txmanager.NewTransactionManager(db)
		log.Info("Storage: postgres (host=%s, port=%d, db=%s)", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	default:
		appointments = appointmentRepo.NewMemoryRepository()
		timeBlocks = timeBlockRepo.NewMemoryRepository()
		txManager = keylock.New()
		log.Info("Storage: in-memory")
	}

	// События
	var eventPublisher publisher = events.NoopPublisher{}
	if cfg.Events.Enabled {
		kafkaPublisher, err := events.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("%w: %v", ErrInit, err)
		}
		a.closers = append(a.closers, kafkaPublisher.Close)
		eventPublisher = kafkaPublisher
		log.Info("Events: kafka brokers=%v topic=%s", cfg.Events.Brokers, cfg.Events.Topic)
	}

	// Метрики регистрируются всегда, наружу отдаются только если включены
	metricsCollector := metrics.New(cfg.Metrics.ServiceName, registry)

	validator := validation.New(domain.StatusStrings())

	day, err := businessDay(cfg.Scheduling)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	// Сервисы
	detector := conflicts.NewDetector(appointments, timeBlocks, log)
	appointmentSvc := appointmentsService.NewService(appointments, txManager, eventPublisher, cfg.Scheduling.StrictStatusTransitions, log)
	timeBlockSvc := timeBlocksService.NewService(timeBlocks, validator, log)

	// Use cases
	createAppointment := createAppointmentUC.NewUseCase(
		appointments,
		detector,
		txManager,
		eventPublisher,
		metricsCollector,
		validator,
		cfg.Scheduling.CheckTimeBlocks,
		log,
	)
	updateAppointment := updateAppointmentUC.NewUseCase(
		appointments,
		detector,
		txManager,
		eventPublisher,
		metricsCollector,
		validator,
		cfg.Scheduling.CheckTimeBlocks,
		log,
	)
	checkAvailability := checkAvailabilityUC.NewUseCase(detector, log)
	getStatistics := getStatisticsUC.NewUseCase(appointments, log)
	getAvailableSlots, err := getAvailableSlotsUC.NewUseCase(appointments, day, log)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}

	// Handlers
	handlers := api.Handlers{
		ListAppointments:     listAppointmentsHandler.NewHandler(appointmentSvc, log),
		GetAppointment:       getAppointmentHandler.NewHandler(appointmentSvc, log),
		CreateAppointment:    createAppointmentHandler.NewHandler(createAppointment, log),
		UpdateAppointment:    updateAppointmentHandler.NewHandler(updateAppointment, log),
		DeleteAppointment:    deleteAppointmentHandler.NewHandler(appointmentSvc, log),
		SetAppointmentStatus: setAppointmentStatusHandler.NewHandler(appointmentSvc, log),
		CheckAvailability:    checkAvailabilityHandler.NewHandler(checkAvailability, log),
		ListTimeBlocks:       listTimeBlocksHandler.NewHandler(timeBlockSvc, log),
		CreateTimeBlock:      createTimeBlockHandler.NewHandler(timeBlockSvc, log),
		DeleteTimeBlock:      deleteTimeBlockHandler.NewHandler(timeBlockSvc, log),
		GetAvailableSlots:    getAvailableSlotsHandler.NewHandler(getAvailableSlots, log),
		GetStatistics:        getStatisticsHandler.NewHandler(getStatistics, log),
	}

	opts := api.Options{
		AccessLog: log.Zerolog(),
		Logger:    log,
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = metricsCollector
		opts.Gatherer = registry
		opts.MetricsPath = cfg.Metrics.Path
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	a.Handler = api.NewRouter(handlers, opts)
	return a, nil
}

// Close освобождает ресурсы в обратном порядке
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", ErrInit, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping database: %v", ErrInit, err)
	}

	return db, nil
}

func businessDay(cfg config.SchedulingConfig) (getAvailableSlotsUC.BusinessDay, error) {
	start, err := types.NewTimeStringFromString(cfg.DayStart)
	if err != nil {
		return getAvailableSlotsUC.BusinessDay{}, fmt.Errorf("%w: day_start: %v", ErrInit, err)
	}
	end, err := types.NewTimeStringFromString(cfg.DayEnd)
	if err != nil {
		return getAvailableSlotsUC.BusinessDay{}, fmt.Errorf("%w: day_end: %v", ErrInit, err)
	}

	return getAvailableSlotsUC.BusinessDay{
		Start:       start,
		End:         end,
		StepMinutes: cfg.SlotStepMinutes,
	}, nil
}
