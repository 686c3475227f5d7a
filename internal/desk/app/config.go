package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds the console settings. Layers apply in order: defaults,
// YAML file, environment, flags.
type Config struct {
	APIURL      string        `yaml:"api_url"`      // API host (default: http://localhost:8001)
	HTTPTimeout time.Duration `yaml:"http_timeout"` // Per-request timeout, 0 for none (default: 0)
	Env         string        `yaml:"env"`          // Environment (dev, staging, prod) (default: dev)
	LogLevel    string        `yaml:"log_level"`    // Log level (debug, info, warn, error) (default: info)
	LogFormat   string        `yaml:"log_format"`   // Log format (json, text) (default: text)
	NoWait      bool          `yaml:"no_wait"`      // Notices do not wait for Enter (default: false)
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		APIURL:    "http://localhost:8001",
		Env:       "dev",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadConfig builds the configuration from a .env file, an optional YAML
// file (--config or DESK_CONFIG), the environment and args. It returns
// pflag.ErrHelp when --help was requested, after printing usage to stderr.
func LoadConfig(args []string, stderr io.Writer) (Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	var (
		configPath string
		apiURL     string
		timeout    time.Duration
		logLevel   string
		logFormat  string
		noWait     bool
	)

	flagSet := pflag.NewFlagSet("clientdesk", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&configPath, "config", os.Getenv("DESK_CONFIG"), "path to a YAML config file")
	flagSet.StringVar(&apiURL, "api-url", "", "clients API host, e.g. http://localhost:8001")
	flagSet.DurationVar(&timeout, "timeout", 0, "per-request timeout (0 = none)")
	flagSet.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flagSet.StringVar(&logFormat, "log-format", "", "log format (json, text)")
	flagSet.BoolVar(&noWait, "no-wait", false, "do not wait for Enter after notices")

	if err := flagSet.Parse(args); err != nil {
		return Config{}, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return Config{}, fmt.Errorf("unexpected argument: %s", rest[0])
	}

	cfg := DefaultConfig()

	if configPath != "" {
		if err := cfg.loadFile(configPath); err != nil {
			return Config{}, err
		}
	}

	cfg.APIURL = getEnvOrDefault("DESK_API_URL", cfg.APIURL)
	cfg.HTTPTimeout = getEnvDurationOrDefault("DESK_HTTP_TIMEOUT", cfg.HTTPTimeout)
	cfg.Env = getEnvOrDefault("ENV", cfg.Env)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.NoWait = getEnvBoolOrDefault("DESK_NO_WAIT", cfg.NoWait)

	if flagSet.Changed("api-url") {
		cfg.APIURL = apiURL
	}
	if flagSet.Changed("timeout") {
		cfg.HTTPTimeout = timeout
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flagSet.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if flagSet.Changed("no-wait") {
		cfg.NoWait = noWait
	}

	if cfg.APIURL == "" {
		return Config{}, errors.New("api url must not be empty")
	}
	if cfg.HTTPTimeout < 0 {
		return Config{}, fmt.Errorf("timeout must not be negative: %s", cfg.HTTPTimeout)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	// Bare integers are seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}
