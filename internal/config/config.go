package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the service, loaded from environment
// variables with a .env fallback for local development.
type AppConfig struct {
	Port          string
	DatabasePath  string
	MigrationsURL string
	LogLevel      string

	RateLimitInterval time.Duration
	RateLimitBurst    int

	CacheExpiration      time.Duration
	CacheCleanupInterval time.Duration
}

// LoadConfig reads configuration from the environment. Missing variables fall
// back to development defaults.
func LoadConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			log.Println("no .env file found, relying on OS environment variables")
		} else {
			log.Printf("warning: error loading .env file: %v", err)
		}
	}

	return &AppConfig{
		Port:                 getEnv("PORT", "8080"),
		DatabasePath:         getEnv("DATABASE_PATH", "./reports.db"),
		MigrationsURL:        getEnv("MIGRATIONS_URL", "file://db/migrations"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		RateLimitInterval:    getEnvDuration("RATE_LIMIT_INTERVAL", 100*time.Millisecond),
		RateLimitBurst:       getEnvInt("RATE_LIMIT_BURST", 30),
		CacheExpiration:      getEnvDuration("CACHE_EXPIRATION", 10*time.Minute),
		CacheCleanupInterval: getEnvDuration("CACHE_CLEANUP_INTERVAL", 15*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("warning: invalid value for %s: %q, using default", key, value)
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("warning: invalid value for %s: %q, using default", key, value)
		return fallback
	}
	return parsed
}
