package database

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds database configuration, including connection pool sizing.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	// PoolSize is the number of idle connections kept open; PoolSize plus
	// MaxOverflow bounds the open connections.
	PoolSize    int
	MaxOverflow int
}

// NewConfig creates a new database configuration from environment variables.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, we'll use defaults or environment variables
		fmt.Println("Warning: .env file not found")
	}

	return &Config{
		Host:        getEnv("DB_HOST", "localhost"),
		Port:        getEnv("DB_PORT", "5432"),
		User:        getEnv("DB_USER", "spendtrack"),
		Password:    getEnv("DB_PASSWORD", "spendtrack"),
		DBName:      getEnv("DB_NAME", "spendtrack"),
		SSLMode:     getEnv("DB_SSLMODE", "disable"),
		PoolSize:    getEnvInt("DB_POOL_SIZE", 20),
		MaxOverflow: getEnvInt("DB_MAX_OVERFLOW", 30),
	}, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL returns the PostgreSQL connection URL used by golang-migrate.
func (c *Config) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		fmt.Printf("Warning: invalid %s value %q, using %d\n", key, value, defaultValue)
		return defaultValue
	}
	return n
}
