package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/types"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// ErrInvalidConfig возвращается, если конфигурация не проходит проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Storage    StorageConfig    `toml:"storage"`
	Database   DatabaseConfig   `toml:"database"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Events     EventsConfig     `toml:"events"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования. Пустой File означает stdout.
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// StorageConfig выбор хранилища: memory или postgres
type StorageConfig struct {
	Driver string `toml:"driver"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// SchedulingConfig правила расписания
type SchedulingConfig struct {
	DayStart                string `toml:"day_start"`
	DayEnd                  string `toml:"day_end"`
	SlotStepMinutes         int    `toml:"slot_step_minutes"`
	CheckTimeBlocks         bool   `toml:"check_time_blocks"`
	StrictStatusTransitions bool   `toml:"strict_status_transitions"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// EventsConfig публикация событий жизненного цикла в Kafka
type EventsConfig struct {
	Enabled bool     `toml:"enabled"`
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
}

// Default конфигурация по умолчанию: in-memory хранилище, рабочий день 08:00-18:00
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Scheduling: SchedulingConfig{
			DayStart:        domain.DefaultDayStart,
			DayEnd:          domain.DefaultDayEnd,
			SlotStepMinutes: domain.DefaultSlotStepMinutes,
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "pet_care_scheduler",
		},
		Events: EventsConfig{
			Topic: "appointment-events",
		},
	}
}

// Load читает TOML файл поверх значений по умолчанию и проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	start, err := types.NewTimeStringFromString(c.Scheduling.DayStart)
	if err != nil {
		return fmt.Errorf("%w: scheduling.day_start: %v", ErrInvalidConfig, err)
	}
	end, err := types.NewTimeStringFromString(c.Scheduling.DayEnd)
	if err != nil {
		return fmt.Errorf("%w: scheduling.day_end: %v", ErrInvalidConfig, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: scheduling.day_start must be before day_end", ErrInvalidConfig)
	}
	if c.Scheduling.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: scheduling.slot_step_minutes must be positive", ErrInvalidConfig)
	}

	if c.Events.Enabled && (len(c.Events.Brokers) == 0 || c.Events.Topic == "") {
		return fmt.Errorf("%w: events.brokers and events.topic are required when events are enabled", ErrInvalidConfig)
	}

	return nil
}
