// Package config provides configuration for the assistant backend.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the assistant backend configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Backend model API
	GeminiAPIKey  string
	GeminiBaseURL string
	ModelTimeout  time.Duration

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:      getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:   getEnv("DATABASE_URL", "file:assistant.db?cache=shared&mode=rwc"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", ""),
		ModelTimeout:  time.Duration(getEnvInt("MODEL_TIMEOUT_MS", 120000)) * time.Millisecond,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
