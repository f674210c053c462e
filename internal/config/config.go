package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `validate:"required"`
	Port        string `validate:"required,numeric"`
	DebugMode   bool
	LogLevel    string `validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	NewsAPI     NewsAPIConfig
}

// NewsAPIConfig holds the upstream news API configuration
type NewsAPIConfig struct {
	BaseURL   string        `validate:"required,url"`
	Timeout   time.Duration `validate:"gt=0"`
	UserAgent string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("NEWS_API_URL", "https://www.hpa.gov.tw/wf/newsapi.ashx")
	viper.SetDefault("NEWS_API_TIMEOUT", "30s")
	viper.SetDefault("NEWS_API_USER_AGENT", "hpa-news-api/1.0")

	timeout, err := ParseTimeout(viper.GetString("NEWS_API_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid NEWS_API_TIMEOUT: %w", err)
	}

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		DebugMode:   ParseDebugFlag(viper.GetString("DEBUG_MODE")),
		LogLevel:    strings.ToLower(viper.GetString("LOG_LEVEL")),
		NewsAPI: NewsAPIConfig{
			BaseURL:   viper.GetString("NEWS_API_URL"),
			Timeout:   timeout,
			UserAgent: viper.GetString("NEWS_API_USER_AGENT"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for missing or malformed values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the service runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ParseDebugFlag interprets a boolean-like toggle. Recognized boolean
// spellings are honored; any other non-empty value turns the flag on.
func ParseDebugFlag(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if val, err := strconv.ParseBool(raw); err == nil {
		return val
	}
	return true
}

// ParseTimeout accepts a Go duration ("30s", "1m") or a bare number of seconds
func ParseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(raw)
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
