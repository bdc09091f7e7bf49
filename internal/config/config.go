package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Version is the API version reported by the health endpoint.
const Version = "1.0.0"

// Config holds application configuration.
type Config struct {
	// Server
	Port string

	// Environment tag reported by the health endpoint ("development",
	// "staging", "production", ...).
	Env string

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
