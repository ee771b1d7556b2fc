// Package config loads tool configuration from the environment.
// Only logging is configurable: the shuffle itself takes no
// environment-driven settings.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config stores the application configuration.
type Config struct {
	LogLevel      string // debug, info, warn, error
	LogFile       string // optional log file path; empty keeps logs on stderr only
	LogMaxSize    int    // megabytes per log file before rotation
	LogMaxBackups int
	LogMaxAge     int // days
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an environment variable as int or returns a default value.
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via an optional
// .env file in the working directory) or defaults. godotenv.Load never
// overrides variables already set in the environment.
func Load() *Config {
	// A missing .env file is the normal case for a CLI run.
	_ = godotenv.Load()

	return &Config{
		LogLevel:      getEnv("M3USHUFFLE_LOG_LEVEL", "warn"),
		LogFile:       os.Getenv("M3USHUFFLE_LOG_FILE"),
		LogMaxSize:    getEnvInt("M3USHUFFLE_LOG_MAX_SIZE", 10),
		LogMaxBackups: getEnvInt("M3USHUFFLE_LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvInt("M3USHUFFLE_LOG_MAX_AGE", 7),
	}
}
