package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds all configuration for the news backend
type Config struct {
	Telegram TelegramConfig
	HTTP     HTTPConfig
	News     NewsConfig
	Logging  LoggingConfig
	Service  ServiceConfig
}

// TelegramConfig holds Telegram MTProto configuration
type TelegramConfig struct {
	APIID       int
	APIHash     string
	SessionFile string
}

// HTTPConfig holds the HTTP surface configuration
type HTTPConfig struct {
	CORSOrigins []string
}

// NewsConfig holds news aggregation configuration
type NewsConfig struct {
	DefaultChannels []string
	FetchTimeout    time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// ServiceConfig holds service configuration
type ServiceConfig struct {
	Name            string
	Port            string
	ShutdownTimeout time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	apiID, err := strconv.Atoi(getEnv("API_ID", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_ID: %w", err)
	}

	fetchTimeout, err := time.ParseDuration(getEnv("FETCH_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Telegram: TelegramConfig{
			APIID:       apiID,
			APIHash:     getEnv("API_HASH", ""),
			SessionFile: getEnv("SESSION_FILE", "tg.session.json"),
		},
		HTTP: HTTPConfig{
			CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5174")),
		},
		News: NewsConfig{
			DefaultChannels: splitList(getEnv("TG_CHANNELS", "")),
			FetchTimeout:    fetchTimeout,
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Service: ServiceConfig{
			Name:            getEnv("SERVICE_NAME", "thinkone-news-backend"),
			Port:            getEnv("SERVICE_PORT", "8080"),
			ShutdownTimeout: shutdownTimeout,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Telegram.APIID == 0 {
		return fmt.Errorf("API_ID is required")
	}

	if c.Telegram.APIHash == "" {
		return fmt.Errorf("API_HASH is required")
	}

	if c.News.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive")
	}

	return nil
}

// Sections exposes per-section config pointers for fx DI
type Sections struct {
	fx.Out

	Telegram *TelegramConfig
	HTTP     *HTTPConfig
	News     *NewsConfig
	Logging  *LoggingConfig
	Service  *ServiceConfig
}

// Out loads the configuration and splits it into sections for fx DI
func Out() (Sections, error) {
	cfg, err := Load()
	if err != nil {
		return Sections{}, err
	}

	return Sections{
		Telegram: &cfg.Telegram,
		HTTP:     &cfg.HTTP,
		News:     &cfg.News,
		Logging:  &cfg.Logging,
		Service:  &cfg.Service,
	}, nil
}

// splitList splits a comma-separated list, trimming whitespace and dropping empty entries
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
