package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Push gateway Config
	PushGatewayURL string        `env:"PUSH_GATEWAY_URL"`
	PushAPIKey     string        `env:"PUSH_API_KEY"`
	PushTimeout    time.Duration `env:"PUSH_TIMEOUT" envDefault:"5s"`
	PushTTLSeconds int           `env:"PUSH_TTL_SECONDS" envDefault:"60"`
	PushMaxRetries int           `env:"PUSH_MAX_RETRIES" envDefault:"3"`
	PushBaseDelay  time.Duration `env:"PUSH_BASE_DELAY" envDefault:"1s"`

	// Dispatch Config
	CybercrimeStationID    int64 `env:"CYBERCRIME_STATION_ID"`
	OfficerFreshFixMinutes int   `env:"OFFICER_FRESH_FIX_MINUTES" envDefault:"10"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig loads configuration from environment variables and an optional .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		PushGatewayURL:         os.Getenv("PUSH_GATEWAY_URL"),
		PushAPIKey:             os.Getenv("PUSH_API_KEY"),
		PushTimeout:            getEnvAsDuration("PUSH_TIMEOUT", 5*time.Second),
		PushTTLSeconds:         getEnvAsInt("PUSH_TTL_SECONDS", 60),
		PushMaxRetries:         getEnvAsInt("PUSH_MAX_RETRIES", 3),
		PushBaseDelay:          getEnvAsDuration("PUSH_BASE_DELAY", time.Second),
		CybercrimeStationID:    getEnvAsInt64("CYBERCRIME_STATION_ID", 0),
		OfficerFreshFixMinutes: getEnvAsInt("OFFICER_FRESH_FIX_MINUTES", 10),
	}

	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv returns the environment variable value or a default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the environment variable value as int or a default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsInt64 returns the environment variable value as int64 or a default.
func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns the environment variable value as time.Duration or a default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
