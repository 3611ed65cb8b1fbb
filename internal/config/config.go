package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap/zapcore"
)

// Config holds all configuration for the application
type Config struct {
	fx.Out

	LogLevel zapcore.Level

	// UseMockData selects the in-memory demo store instead of Postgres.
	// Evaluated once here; nothing downstream re-reads the environment.
	UseMockData bool   `name:"use_mock_data"`
	DatabaseURL string `name:"database_url"`
	Port        int    `name:"port"`
	Version     string `name:"version"`
	Environment string `name:"environment"`

	TrackerMaxSessions int           `name:"tracker_max_sessions"`
	TrackerIdleTimeout time.Duration `name:"tracker_idle_timeout"`
}

// NewConfig loads configuration from environment variables
func NewConfig() (Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := Config{}

	// Configure logging
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	switch logLevel {
	case "debug":
		config.LogLevel = zapcore.DebugLevel
	case "info":
		config.LogLevel = zapcore.InfoLevel
	default:
		config.LogLevel = zapcore.WarnLevel
	}

	// Configure storage backend
	config.UseMockData = os.Getenv("USE_MOCK_DATA") == "true"
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if !config.UseMockData && config.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required unless USE_MOCK_DATA=true")
	}

	// Configure port
	config.Port = 8080
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		config.Port = p
	}

	// Configure version and environment tags
	config.Version = os.Getenv("VERSION")
	if config.Version == "" {
		config.Version = "VERSION_UNAVAILABLE"
	}
	config.Environment = os.Getenv("ENVIRONMENT")
	if config.Environment == "" {
		config.Environment = "development"
	}

	// Configure live tracking limits
	config.TrackerMaxSessions = 1000
	if raw := os.Getenv("TRACKER_MAX_SESSIONS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid TRACKER_MAX_SESSIONS %q", raw)
		}
		config.TrackerMaxSessions = n
	}

	config.TrackerIdleTimeout = 30 * time.Minute
	if raw := os.Getenv("TRACKER_IDLE_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid TRACKER_IDLE_TIMEOUT %q", raw)
		}
		config.TrackerIdleTimeout = d
	}

	return config, nil
}
