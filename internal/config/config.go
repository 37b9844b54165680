package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrConfigMissing возвращается, когда отсутствует обязательное значение конфигурации
// Процесс не должен стартовать без него
var ErrConfigMissing = errors.New("config: required value is missing")

// Config конфигурация сервиса
// Значения из TOML-файла могут быть переопределены переменными окружения:
// DATABASE_URL (backend) и BACKEND_URL (frontend)
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Database  DatabaseConfig  `toml:"database"`
	Backend   BackendConfig   `toml:"backend"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"` // пустое значение - stdout
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig настройки подключения к PostgreSQL (только backend)
type DatabaseConfig struct {
	URL             string `toml:"url"` // переопределяется DATABASE_URL
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к БД
func (d DatabaseConfig) DSN() string {
	return d.URL
}

// Validate проверяет, что строка подключения задана
func (d DatabaseConfig) Validate() error {
	if d.URL == "" {
		return fmt.Errorf("%w: DATABASE_URL is not set", ErrConfigMissing)
	}
	return nil
}

// BackendConfig адрес backend-сервиса (только frontend)
type BackendConfig struct {
	URL     string `toml:"url"` // переопределяется BACKEND_URL
	Timeout int    `toml:"timeout"`
}

// RateLimitConfig лимит запросов на клиентский адрес (только frontend)
type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
	Burst             int  `toml:"burst"`
}

// Load читает конфигурацию из TOML-файла и применяет переменные окружения
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// defaultConfig значения по умолчанию, соответствующие локальному запуску
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        5000,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path: "/metrics",
		},
		Database: DatabaseConfig{
			// Границы пула соответствуют исходному SimpleConnectionPool(1, 20)
			MaxOpenConns:    20,
			MaxIdleConns:    1,
			ConnMaxLifetime: 300,
		},
		Backend: BackendConfig{
			URL:     "http://backend:5000",
			Timeout: 10,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 5,
			Burst:             5,
		},
	}
}

// applyEnv применяет переменные окружения поверх значений файла
func applyEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("BACKEND_URL"); v != "" {
		cfg.Backend.URL = v
	}
}
