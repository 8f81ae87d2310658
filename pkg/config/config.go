package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/salestrack/sales-ledger/pkg/database"
)

// Config groups the sales service configuration, read from the environment
// via Viper.
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	DB     database.Config
	Kafka  KafkaConfig
	Ledger LedgerConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	LogLevel    string
}

// IsDevelopment reports whether the service runs in development mode.
func (c AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// HTTPConfig holds the HTTP server settings.
type HTTPConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

// KafkaConfig holds the event publishing settings. Publishing is disabled
// when Brokers is empty.
type KafkaConfig struct {
	Brokers []string
}

// Enabled reports whether event publishing is configured.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// LedgerConfig holds ledger domain settings.
type LedgerConfig struct {
	// Timezone fixes the calendar used for the daily and monthly profit
	// windows. Day and month boundaries are ambiguous across zones, so the
	// zone is pinned in configuration rather than taken from the caller.
	Timezone string
}

// Location resolves the configured ledger time zone.
func (c LedgerConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Load reads the configuration from environment variables with sensible
// defaults for local development.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVICE_NAME", "sales-service")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "salesdb")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("LEDGER_TIMEZONE", "UTC")

	shutdownTimeout, err := time.ParseDuration(v.GetString("SHUTDOWN_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        v.GetString("SERVICE_NAME"),
			Environment: v.GetString("ENVIRONMENT"),
			LogLevel:    v.GetString("LOG_LEVEL"),
		},
		HTTP: HTTPConfig{
			Port:            v.GetString("HTTP_PORT"),
			ShutdownTimeout: shutdownTimeout,
		},
		DB: database.Config{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Kafka: KafkaConfig{
			Brokers: splitBrokers(v.GetString("KAFKA_BROKERS")),
		},
		Ledger: LedgerConfig{
			Timezone: v.GetString("LEDGER_TIMEZONE"),
		},
	}

	if _, err := cfg.Ledger.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func splitBrokers(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			brokers = append(brokers, trimmed)
		}
	}
	return brokers
}
