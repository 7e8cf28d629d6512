package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	sessionSecret := os.Getenv("SESSION_SECRET")
	redisURL := os.Getenv("REDIS_URL")
	storeBackend := os.Getenv("STORE_BACKEND")
	rateLimit := os.Getenv("RATE_LIMIT")
	environment := os.Getenv("ENVIRONMENT")

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if storeBackend == "" {
		storeBackend = BackendPostgres
	}

	if storeBackend != BackendPostgres && storeBackend != BackendMemory {
		return nil, fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendPostgres, BackendMemory, storeBackend)
	}

	if storeBackend == BackendPostgres && databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if rateLimit == "" {
		rateLimit = "100-M"
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		DatabaseURL:   databaseURL,
		JWTSecret:     jwtSecret,
		SessionSecret: sessionSecret,
		RedisURL:      redisURL,
		StoreBackend:  storeBackend,
		RateLimit:     rateLimit,
		Environment:   environment,
	}, nil
}
