package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
)

// Драйверы хранилищ
const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig    `toml:"server"`
	Storage  StorageConfig   `toml:"storage"`
	Database DatabaseConfig  `toml:"database"`
	Redis    RedisConfig     `toml:"redis"`
	Logs     LogsConfig      `toml:"logs"`
	Metrics  MetricsConfig   `toml:"metrics"`
	Calendar CalendarConfig  `toml:"calendar"`
	Accounts []AccountConfig `toml:"accounts"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// StorageConfig выбор хранилищ для бронирований и счетчиков уведомлений
type StorageConfig struct {
	Reservations string `toml:"reservations"` // postgres | memory
	SeenCounts   string `toml:"seen_counts"`  // redis | postgres | memory
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr        string `toml:"addr"`
	Password    string `toml:"password"`
	DB          int    `toml:"db"`
	DialTimeout int    `toml:"dial_timeout"` // секунды
	KeyPrefix   string `toml:"key_prefix"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CalendarConfig набор помещений и рабочих часов
type CalendarConfig struct {
	Rooms     []string `toml:"rooms"`
	OpenHour  int      `toml:"open_hour"`
	CloseHour int      `toml:"close_hour"`
	Timezone  string   `toml:"timezone"`
}

// AccountConfig запись таблицы учетных данных
type AccountConfig struct {
	Username string `toml:"username"`
	Email    string `toml:"email"`
	Password string `toml:"password"`
	Role     string `toml:"role"`
}

// Load читает конфигурацию из TOML файла
// Перед чтением подгружает .env (если есть), затем применяет переменные окружения
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	switch c.Storage.Reservations {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("%w: storage.reservations must be postgres or memory, got %q", ErrInvalidConfig, c.Storage.Reservations)
	}

	switch c.Storage.SeenCounts {
	case DriverRedis, DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("%w: storage.seen_counts must be redis, postgres or memory, got %q", ErrInvalidConfig, c.Storage.SeenCounts)
	}

	if c.Calendar.OpenHour < 0 || c.Calendar.CloseHour > 24 || c.Calendar.OpenHour >= c.Calendar.CloseHour {
		return fmt.Errorf("%w: calendar hours %d-%d", ErrInvalidConfig, c.Calendar.OpenHour, c.Calendar.CloseHour)
	}

	seen := make(map[string]struct{}, len(c.Accounts))
	for _, acc := range c.Accounts {
		if acc.Username == "" || acc.Password == "" {
			return fmt.Errorf("%w: account requires username and password", ErrInvalidConfig)
		}
		if acc.Role != string(domain.RoleStudent) && acc.Role != string(domain.RoleAdmin) {
			return fmt.Errorf("%w: account %s has unknown role %q", ErrInvalidConfig, acc.Username, acc.Role)
		}
		if _, dup := seen[acc.Username]; dup {
			return fmt.Errorf("%w: duplicate account %s", ErrInvalidConfig, acc.Username)
		}
		seen[acc.Username] = struct{}{}
	}

	return nil
}

// UsesPostgres возвращает true, если хоть одно хранилище работает через PostgreSQL
func (c *Config) UsesPostgres() bool {
	return c.Storage.Reservations == DriverPostgres || c.Storage.SeenCounts == DriverPostgres
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Storage.Reservations == "" {
		cfg.Storage.Reservations = DriverMemory
	}
	if cfg.Storage.SeenCounts == "" {
		cfg.Storage.SeenCounts = DriverMemory
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "facility"
	}
	if cfg.Redis.DialTimeout == 0 {
		cfg.Redis.DialTimeout = 5
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "facility_booking"
	}
	if len(cfg.Calendar.Rooms) == 0 {
		cfg.Calendar.Rooms = append([]string(nil), domain.DefaultRooms...)
	}
	if cfg.Calendar.OpenHour == 0 && cfg.Calendar.CloseHour == 0 {
		cfg.Calendar.OpenHour = domain.DefaultOpenHour
		cfg.Calendar.CloseHour = domain.DefaultCloseHour
	}
	if cfg.Calendar.Timezone == "" {
		cfg.Calendar.Timezone = domain.DefaultTimezone
	}
}
