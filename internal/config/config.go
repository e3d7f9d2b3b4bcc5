package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/BarberShop-BookingService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	AuthService AuthServiceConfig `toml:"auth_service"`
	Redis       RedisConfig       `toml:"redis"`
	Drafts      DraftsConfig      `toml:"drafts"`
	Kafka       KafkaConfig       `toml:"kafka"`
	Booking     BookingConfig     `toml:"booking"`
	Schedule    ScheduleConfig    `toml:"schedule"`
	RateLimit   RateLimitConfig   `toml:"rate_limit"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
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

// AuthServiceConfig сервис ролей, timeout в секундах
type AuthServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	PoolSize int    `toml:"pool_size"`
}

// DraftsConfig время жизни черновиков и защёлки отправки
type DraftsConfig struct {
	TTL            Duration `toml:"ttl"`
	SubmitLatchTTL Duration `toml:"submit_latch_ttl"`
}

type KafkaConfig struct {
	Enabled      bool     `toml:"enabled"`
	Brokers      []string `toml:"brokers"`
	Topic        string   `toml:"topic"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// BookingConfig strict_transitions включает переходы только из pending
type BookingConfig struct {
	StrictTransitions bool `toml:"strict_transitions"`
}

type ScheduleConfig struct {
	OpenTime         string `toml:"open_time"`
	CloseTime        string `toml:"close_time"`
	SlotStepMinutes  int    `toml:"slot_step_minutes"`
	MinNoticeMinutes int    `toml:"min_notice_minutes"`
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
	// TrustedProxies адреса прокси, от которых принимается X-Forwarded-For
	TrustedProxies []string `toml:"trusted_proxies"`
	IdleTTL        Duration `toml:"idle_ttl"`
	SweepInterval  Duration `toml:"sweep_interval"`
}

// Duration time.Duration, читаемый из строки вида "30m"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// Load читает .env (если есть), подставляет ${VAR} и разбирает TOML
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse разбирает содержимое конфига
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if _, err := toml.Decode(expanded, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "booking_service"
	}

	if c.AuthService.Timeout == 0 {
		c.AuthService.Timeout = 5
	}

	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 10
	}

	if c.Drafts.TTL.Duration == 0 {
		c.Drafts.TTL.Duration = 30 * time.Minute
	}
	if c.Drafts.SubmitLatchTTL.Duration == 0 {
		c.Drafts.SubmitLatchTTL.Duration = 30 * time.Second
	}

	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "appointments"
	}
	if c.Kafka.WriteTimeout.Duration == 0 {
		c.Kafka.WriteTimeout.Duration = 5 * time.Second
	}

	if c.Schedule.OpenTime == "" {
		c.Schedule.OpenTime = "09:00"
	}
	if c.Schedule.CloseTime == "" {
		c.Schedule.CloseTime = "19:00"
	}
	if c.Schedule.SlotStepMinutes == 0 {
		c.Schedule.SlotStepMinutes = 30
	}

	if c.RateLimit.RPS == 0 {
		c.RateLimit.RPS = 5
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 10
	}
	if c.RateLimit.IdleTTL.Duration == 0 {
		c.RateLimit.IdleTTL.Duration = 10 * time.Minute
	}
	if c.RateLimit.SweepInterval.Duration == 0 {
		c.RateLimit.SweepInterval.Duration = time.Minute
	}
}

// Validate проверяет обязательные поля и согласованность секций
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("database host is required")
	}
	if c.Database.DBName == "" {
		return errors.New("database name is required")
	}
	if c.AuthService.URL == "" {
		return errors.New("auth_service url is required")
	}
	if c.Redis.Enabled && c.Redis.Address == "" {
		return errors.New("redis address is required when redis is enabled")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return errors.New("kafka brokers are required when kafka is enabled")
	}

	open, err := types.NewTimeStringFromString(c.Schedule.OpenTime)
	if err != nil {
		return fmt.Errorf("schedule open_time: %w", err)
	}
	closing, err := types.NewTimeStringFromString(c.Schedule.CloseTime)
	if err != nil {
		return fmt.Errorf("schedule close_time: %w", err)
	}
	if !open.IsBefore(closing) {
		return errors.New("schedule open_time must be before close_time")
	}
	if c.Schedule.SlotStepMinutes < 0 || c.Schedule.MinNoticeMinutes < 0 {
		return errors.New("schedule minutes must not be negative")
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return errors.New("rate_limit values must not be negative")
	}
	if c.RateLimit.IdleTTL.Duration < 0 || c.RateLimit.SweepInterval.Duration < 0 {
		return errors.New("rate_limit durations must not be negative")
	}

	return nil
}
