package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Адреса внешних сервисов
	UpstreamBaseURL string `env:"UPSTREAM_BASE_URL"`
	ComputeBaseURL  string `env:"COMPUTE_BASE_URL"`
	WeatherBaseURL  string `env:"WEATHER_BASE_URL"`
	TideBaseURL     string `env:"TIDE_BASE_URL"`

	// Параметры синхронизации и расчетов
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"60s"`
	SnapshotTTL     time.Duration `env:"SNAPSHOT_TTL" envDefault:"10m"`
	ComputeTimeout  time.Duration `env:"COMPUTE_TIMEOUT" envDefault:"60s"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"15s"`
	SimulationHours int           `env:"SIMULATION_HOURS" envDefault:"24"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		UpstreamBaseURL:   os.Getenv("UPSTREAM_BASE_URL"),
		ComputeBaseURL:    os.Getenv("COMPUTE_BASE_URL"),
		WeatherBaseURL:    os.Getenv("WEATHER_BASE_URL"),
		TideBaseURL:       os.Getenv("TIDE_BASE_URL"),
		RefreshInterval:   getEnvAsDuration("REFRESH_INTERVAL", 60*time.Second),
		SnapshotTTL:       getEnvAsDuration("SNAPSHOT_TTL", 10*time.Minute),
		ComputeTimeout:    getEnvAsDuration("COMPUTE_TIMEOUT", 60*time.Second),
		UpstreamTimeout:   getEnvAsDuration("UPSTREAM_TIMEOUT", 15*time.Second),
		SimulationHours:   getEnvAsInt("SIMULATION_HOURS", 24),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	if cfg.UpstreamBaseURL == "" {
		return nil, fmt.Errorf("UPSTREAM_BASE_URL environment variable is required")
	}
	// Расчетный и погодные сервисы по умолчанию живут на том же хосте,
	// что и коллекция инцидентов
	if cfg.ComputeBaseURL == "" {
		cfg.ComputeBaseURL = cfg.UpstreamBaseURL
	}
	if cfg.WeatherBaseURL == "" {
		cfg.WeatherBaseURL = cfg.UpstreamBaseURL
	}
	if cfg.TideBaseURL == "" {
		cfg.TideBaseURL = cfg.UpstreamBaseURL
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
