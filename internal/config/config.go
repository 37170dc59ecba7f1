package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const PROD_STRING = "prod"

// Pricing policy names accepted in the PRICING env var.
const (
	PricingFlat   = "flat"
	PricingHourly = "hourly"
)

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	HTTPAddr        string
	DBDSN           string
	StoragePath     string
	Pricing         string
	ShutdownTimeout time.Duration
}

// Load loads configuration from .env (optional) and environment variables.
// DB_DSN is optional: when empty the server runs against the seeded
// in-memory store instead of Postgres.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg := &Config{}

	// Production origins (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Database DSN, optional
	cfg.DBDSN = os.Getenv("DB_DSN")

	// Directory for uploaded catalog images
	cfg.StoragePath = getEnv("STORAGE_PATH", "./uploads")

	// Pricing policy for revenue aggregation
	cfg.Pricing = getEnv("PRICING", PricingFlat)
	if cfg.Pricing != PricingFlat && cfg.Pricing != PricingHourly {
		return nil, fmt.Errorf("invalid PRICING %q: must be %q or %q", cfg.Pricing, PricingFlat, PricingHourly)
	}

	// Graceful shutdown timeout in seconds (default: 5)
	shutdownSecs, err := getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 5)
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT_SECONDS: %w", err)
	}
	cfg.ShutdownTimeout = time.Duration(shutdownSecs) * time.Second

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
