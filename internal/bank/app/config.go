package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	StoreDriver  string // Optional: record store driver (memory, sqlite) (default: memory)
	DatabaseFile string // Optional: SQLite DSN when driver is sqlite (default: :memory:)
	Seed         bool   // Optional: provision demo users on an empty store (default: true)

	GeminiAPIKey string // Optional: API key for the text-generation collaborator
	GeminiModel  string // Optional: Gemini model name (default: gemini-2.0-flash)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		StoreDriver:  getEnvOrDefault("SEEKA_STORE_DRIVER", "memory"),
		DatabaseFile: getEnvOrDefault("SEEKA_DATABASE_FILE", ":memory:"),
		Seed:         getEnvBoolOrDefault("SEEKA_SEED", true),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"), // Optional: AI endpoints degrade without it
		GeminiModel:  getEnvOrDefault("SEEKA_GEMINI_MODEL", "gemini-2.0-flash"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
