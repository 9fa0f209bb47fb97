package config

import (
	"os"
	"strconv"

	"github.com/google/uuid"

	"ratesheets/internal/errors"
)

// Config represents the complete exporter configuration.
type Config struct {
	Database DatabaseConfig
	Export   ExportConfig
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	URL            string
	MigrateOnStart bool
}

// ExportConfig holds the export run settings.
type ExportConfig struct {
	ClientID    uuid.UUID
	OutputFile  string
	Concurrency int
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	clientIDStr := os.Getenv("CLIENT_ID")
	if clientIDStr == "" {
		return nil, errors.ConfigInvalid("CLIENT_ID is required")
	}
	clientID, err := uuid.Parse(clientIDStr)
	if err != nil {
		return nil, errors.Wrap(err, "CLIENT_ID must be a valid UUID")
	}

	concurrency := getEnvIntOrDefault("QUERY_CONCURRENCY", 4)
	if concurrency < 1 {
		return nil, errors.ConfigInvalid("QUERY_CONCURRENCY must be at least 1")
	}

	return &Config{
		Database: DatabaseConfig{
			URL:            url,
			MigrateOnStart: getEnvBoolOrDefault("MIGRATE_ON_START", false),
		},
		Export: ExportConfig{
			ClientID:    clientID,
			OutputFile:  getEnvOrDefault("OUTPUT_FILE", "rates.xlsx"),
			Concurrency: concurrency,
		},
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
