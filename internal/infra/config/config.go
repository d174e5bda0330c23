package config

import (
	"fmt"
	"strings" // For LogLevel normalization
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	// Directory holding the three secret files written by `gymadmin setup`.
	SecretsDir string `env:"SECRETS_DIR" envDefault:"dev"`

	// Service account JSON for FCM. Falls back to the path persisted by setup.
	GoogleCredentials string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseProjectID string `env:"FIREBASE_PROJECT_ID"`

	// Optional direct Postgres connection used instead of PostgREST for membership queries.
	DatabaseURL string `env:"DATABASE_URL"`

	TrainingsBucket    string        `env:"TRAININGS_BUCKET" envDefault:"trainings"`
	UploadCacheControl string        `env:"UPLOAD_CACHE_CONTROL" envDefault:"3600"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Environment = strings.ToLower(cfg.Environment)

	if strings.TrimSpace(cfg.SecretsDir) == "" {
		return nil, fmt.Errorf("SECRETS_DIR must not be empty")
	}
	if cfg.TrainingsBucket == "" {
		return nil, fmt.Errorf("TRAININGS_BUCKET must not be empty")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}

	return cfg, nil
}

// UsesDirectDatabase reports whether membership queries should bypass PostgREST.
func (c *AppConfig) UsesDirectDatabase() bool {
	return c.DatabaseURL != ""
}
