package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

var (
	// ErrInvalidConfig возвращается, когда конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Database     DatabaseConfig     `toml:"database"`
	Redis        RedisConfig        `toml:"redis"`
	Kafka        KafkaConfig        `toml:"kafka"`
	FieldService FieldServiceConfig `toml:"field_service"`
	Booking      BookingConfig      `toml:"booking"`
	Metrics      MetricsConfig      `toml:"metrics"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
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
	Addr           string `toml:"addr"`
	Password       string `toml:"password"`
	DB             int    `toml:"db"`
	ScheduleTTL    int    `toml:"schedule_ttl_seconds"`
	BankAccountTTL int    `toml:"bank_account_ttl_seconds"`
}

type KafkaConfig struct {
	Enabled        bool     `toml:"enabled"`
	Brokers        []string `toml:"brokers"`
	CommunityTopic string   `toml:"community_topic"`
	WriteTimeout   int      `toml:"write_timeout"` // секунды
}

type FieldServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type BookingConfig struct {
	PaymentLockSeconds int `toml:"payment_lock_seconds"`
	MaxOpenFlows       int `toml:"max_open_flows"`
	FlowIdleTTLSeconds int `toml:"flow_idle_ttl_seconds"`
}

// PaymentLockDuration длительность блокировки шага оплаты
func (b BookingConfig) PaymentLockDuration() time.Duration {
	return time.Duration(b.PaymentLockSeconds) * time.Second
}

// FlowIdleTTL время бездействия, после которого брошенный поток удаляется из реестра
func (b BookingConfig) FlowIdleTTL() time.Duration {
	return time.Duration(b.FlowIdleTTLSeconds) * time.Second
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load загружает конфигурацию из TOML файла, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:           "localhost:6379",
			ScheduleTTL:    60,
			BankAccountTTL: 600,
		},
		Kafka: KafkaConfig{
			CommunityTopic: "field-booking.community-posts",
			WriteTimeout:   5,
		},
		FieldService: FieldServiceConfig{
			Timeout: 5,
		},
		Booking: BookingConfig{
			PaymentLockSeconds: 300,
			MaxOpenFlows:       10000,
			FlowIdleTTLSeconds: 1800,
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "field_booking_service",
		},
	}
}

// Validate проверяет обязательные поля и диапазоны значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if c.FieldService.URL == "" {
		return fmt.Errorf("%w: field_service.url is required", ErrInvalidConfig)
	}

	if c.FieldService.Timeout <= 0 {
		return fmt.Errorf("%w: field_service.timeout must be positive", ErrInvalidConfig)
	}

	if c.Booking.PaymentLockSeconds <= 0 {
		return fmt.Errorf("%w: booking.payment_lock_seconds must be positive", ErrInvalidConfig)
	}

	if c.Booking.MaxOpenFlows <= 0 {
		return fmt.Errorf("%w: booking.max_open_flows must be positive", ErrInvalidConfig)
	}

	if c.Booking.FlowIdleTTLSeconds < c.Booking.PaymentLockSeconds {
		return fmt.Errorf("%w: booking.flow_idle_ttl_seconds must not be less than payment_lock_seconds", ErrInvalidConfig)
	}

	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("%w: kafka.brokers is required when kafka is enabled", ErrInvalidConfig)
	}

	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}

	return nil
}
