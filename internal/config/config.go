package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr      string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass      string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	HazardCacheTTL time.Duration `env:"HAZARD_CACHE_TTL" envDefault:"5m"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// NATS Config, пустой адрес отключает публикацию в шину
	NATSURL           string `env:"NATS_URL"`
	NATSSubjectPrefix string `env:"NATS_SUBJECT_PREFIX" envDefault:"mineguard.hazards"`

	// Limits
	HazardListLimit     int `env:"HAZARD_LIST_LIMIT" envDefault:"50"`
	SensorReadingsLimit int `env:"SENSOR_READINGS_LIMIT" envDefault:"100"`

	// Sensor ingest throttling
	SensorRateLimit float64 `env:"SENSOR_RATE_LIMIT" envDefault:"5"`
	SensorRateBurst int     `env:"SENSOR_RATE_BURST" envDefault:"10"`

	// Simulation defaults
	SimulationDuration int `env:"SIMULATION_DEFAULT_DURATION" envDefault:"30"`
	SimulationFPS      int `env:"SIMULATION_DEFAULT_FPS" envDefault:"2"`

	// Файл со списком сотрудников (YAML). Пустое значение - встроенный список
	WorkersFile string `env:"WORKERS_FILE"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Разрешенные источники для websocket, пустой список - любые
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		HazardCacheTTL:      getEnvAsDuration("HAZARD_CACHE_TTL", 5*time.Minute),
		WebhookURL:          os.Getenv("WEBHOOK_URL"),
		WebhookSecret:       os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:      getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:   getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:    getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		NATSURL:             os.Getenv("NATS_URL"),
		NATSSubjectPrefix:   getEnv("NATS_SUBJECT_PREFIX", "mineguard.hazards"),
		HazardListLimit:     getEnvAsInt("HAZARD_LIST_LIMIT", 50),
		SensorReadingsLimit: getEnvAsInt("SENSOR_READINGS_LIMIT", 100),
		SensorRateLimit:     getEnvAsFloat("SENSOR_RATE_LIMIT", 5),
		SensorRateBurst:     getEnvAsInt("SENSOR_RATE_BURST", 10),
		SimulationDuration:  getEnvAsInt("SIMULATION_DEFAULT_DURATION", 30),
		SimulationFPS:       getEnvAsInt("SIMULATION_DEFAULT_FPS", 2),
		WorkersFile:         os.Getenv("WORKERS_FILE"),
		APIKeys:             getEnvAsList("API_KEYS"),
		AllowedOrigins:      getEnvAsList("ALLOWED_ORIGINS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
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

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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

// getEnvAsList разбирает список значений, разделенных запятыми
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var values []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			values = append(values, item)
		}
	}
	return values
}
