package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/aussiebroadwan/clientdesk/pkg/httpx"
)

type Config struct {
	Port                int           // HTTP server port (default: 8001)
	DatabaseFile        string        // Path to SQLite database file (default: clients.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	AllowedOrigins      []string      // CORS origins; "*" allows all (default: none)
}

// LoadConfig reads a .env file when present, then the environment, then
// the --port and --db flags from args.
func LoadConfig(args []string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:                getEnvIntOrDefault("API_PORT", 8001),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "clients.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		AllowedOrigins:      httpx.ParseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	fs := pflag.NewFlagSet("clients-api", pflag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	fs.StringVar(&cfg.DatabaseFile, "db", cfg.DatabaseFile, "SQLite database file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.DatabaseFile == "" {
		return Config{}, fmt.Errorf("database file must not be empty")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "30s", "1m")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
