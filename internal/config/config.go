// Package config loads service configuration from the environment and the
// regulatory regime from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Addr          string
	StorageDriver string
	DBPath        string // sqlite file path
	DatabaseURL   string // postgres DSN
	SeedRoutes    bool

	LogLevel  string
	LogFormat string

	// PoolFetchTimeout bounds the compliance fan-out of one CreatePool call.
	PoolFetchTimeout time.Duration
	// PoolFetchConcurrency caps parallel compliance reads per CreatePool call.
	PoolFetchConcurrency int

	Regime *Regime
}

// Load reads configuration from environment variables, after loading a .env file if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:                 getEnv("HTTP_ADDR", ":3000"),
		StorageDriver:        strings.ToLower(getEnv("STORAGE_DRIVER", DriverSQLite)),
		DBPath:               getEnv("DB_PATH", "./data/fueleu.db"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		SeedRoutes:           getEnvAsBool("SEED_ROUTES", true),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "text"),
		PoolFetchTimeout:     getEnvAsDuration("POOL_FETCH_TIMEOUT", 5*time.Second),
		PoolFetchConcurrency: getEnvAsInt("POOL_FETCH_CONCURRENCY", 8),
	}

	regime := DefaultRegime()
	if path := getEnv("REGULATORY_CONFIG", ""); path != "" {
		loaded, err := LoadRegime(path)
		if err != nil {
			return nil, err
		}
		regime = loaded
	}
	cfg.Regime = regime

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.PoolFetchTimeout <= 0 {
		return fmt.Errorf("POOL_FETCH_TIMEOUT must be positive, got %s", c.PoolFetchTimeout)
	}
	if c.PoolFetchConcurrency < 1 {
		return fmt.Errorf("POOL_FETCH_CONCURRENCY must be at least 1, got %d", c.PoolFetchConcurrency)
	}
	if c.Regime == nil {
		return fmt.Errorf("regulatory regime is required")
	}
	return c.Regime.Validate()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
