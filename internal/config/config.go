package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса, загружаемая из config.toml.
// Секреты (пароль БД, токен SMS-шлюза) подставляются из переменных
// окружения; .env файл, если он есть, загружается перед этим.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	SMS      SMSConfig      `toml:"sms"`
	Redis    RedisConfig    `toml:"redis"`
	Admin    AdminConfig    `toml:"admin"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"-"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	MigrationsPath  string `toml:"migrations_path"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// BookingConfig бизнес-параметры бронирования
type BookingConfig struct {
	// Timezone IANA-имя часового пояса барбершопа; все расчёты слотов
	// ведутся в нём, в БД моменты хранятся в UTC
	Timezone string `toml:"timezone"`

	BusinessStart   string `toml:"business_start"` // "08:30"
	BusinessEnd     string `toml:"business_end"`   // "18:30"
	SlotStepMinutes int    `toml:"slot_step_minutes"`

	// WindowDays длина окна бронирования в днях от его начала
	WindowDays int `toml:"window_days"`

	// MinBookingDate самая ранняя дата, с которой открыто бронирование
	// (YYYY-MM-DD, пусто = без ограничения)
	MinBookingDate string `toml:"min_booking_date"`

	MaxUpcomingPerUser int `toml:"max_upcoming_per_user"`
}

// SMSConfig настройки SMS-шлюза
type SMSConfig struct {
	BaseURL    string `toml:"base_url"`
	FromNumber string `toml:"from_number"`
	Timeout    int    `toml:"timeout"`
	AccountSID string `toml:"-"`
	AuthToken  string `toml:"-"`
}

// RedisConfig настройки Redis для публикации событий расписания
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Channel  string `toml:"channel"`
	Password string `toml:"-"`
}

// AdminConfig список администраторов барбершопа
type AdminConfig struct {
	UserIDs []string `toml:"user_ids"`
}

// Load загружает конфигурацию из TOML файла и переменных окружения
func Load(path string) (*Config, error) {
	// .env файл опционален - в production секреты приходят из окружения
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.Database.Password = os.Getenv("DB_PASSWORD")
	cfg.SMS.AccountSID = os.Getenv("SMS_ACCOUNT_SID")
	cfg.SMS.AuthToken = os.Getenv("SMS_AUTH_TOKEN")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MigrationsPath == "" {
		c.Database.MigrationsPath = "migrations"
	}
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = "Europe/Sarajevo"
	}
	if c.Booking.BusinessStart == "" {
		c.Booking.BusinessStart = "08:30"
	}
	if c.Booking.BusinessEnd == "" {
		c.Booking.BusinessEnd = "18:30"
	}
	if c.Booking.SlotStepMinutes == 0 {
		c.Booking.SlotStepMinutes = 30
	}
	if c.Booking.WindowDays == 0 {
		c.Booking.WindowDays = 7
	}
	if c.Booking.MaxUpcomingPerUser == 0 {
		c.Booking.MaxUpcomingPerUser = 3
	}
	if c.SMS.Timeout == 0 {
		c.SMS.Timeout = 5
	}
	if c.Redis.Channel == "" {
		c.Redis.Channel = "appointments"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	return nil
}
