// Package config handles loading and validating configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the JAMS Studio API.
type Config struct {
	// Server
	Port        string
	LogLevel    string
	Environment string

	// Database
	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	// Redis (daily cost counter)
	RedisHost     string
	RedisPort     int
	RedisPassword string

	// Audio library storage
	StorageDir       string
	StoragePublicURL string

	// Provider credentials
	OpenRouterKey    string
	OpenRouterKeyAlt string
	MiniMaxKey       string
	MiniMaxGroupID   string
	ChutesKey        string

	// Model selection
	DefaultModel string
	MaxAgents    int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("JAMS_PORT", "8080"),
		LogLevel:    getEnv("JAMS_LOG_LEVEL", "info"),
		Environment: getEnv("JAMS_ENV", "production"),

		DBHost:     getEnv("POSTGRES_HOST", "localhost"),
		DBName:     getEnv("POSTGRES_DB", "jams"),
		DBUser:     getEnv("POSTGRES_USER", "jams_user"),
		DBPassword: getEnv("POSTGRES_PASSWORD", ""),
		DBSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		StorageDir:       getEnv("JAMS_STORAGE_DIR", ""),
		StoragePublicURL: getEnv("JAMS_STORAGE_PUBLIC_URL", "https://audio.rjbizsolution.com"),

		OpenRouterKey:    os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterKeyAlt: os.Getenv("OPENROUTER_API_KEY_ALT"),
		MiniMaxKey:       os.Getenv("MINIMAX_API_KEY"),
		MiniMaxGroupID:   getEnv("MINIMAX_GROUP_ID", "1935985499797721093"),
		ChutesKey:        os.Getenv("CHUTES_API_KEY"),

		DefaultModel: os.Getenv("DEFAULT_MODEL"),
	}

	dbPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid POSTGRES_PORT: %w", err)
	}
	cfg.DBPort = dbPort

	redisPort, err := strconv.Atoi(getEnv("REDIS_PORT", "6379"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_PORT: %w", err)
	}
	cfg.RedisPort = redisPort

	maxAgents, err := strconv.Atoi(getEnv("MAX_AGENTS", "110"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_AGENTS: %w", err)
	}
	cfg.MaxAgents = maxAgents

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// RedactedDSN returns the DSN with the password masked for safe logging.
func (c *Config) RedactedDSN() string {
	return fmt.Sprintf("postgres://%s:***@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// RedisAddr returns the Redis address in host:port format.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
