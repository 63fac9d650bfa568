// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvProduction is the APP_ENV value that enables secure cookies.
const EnvProduction = "production"

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig
	GoodData GoodDataConfig
	Breaker  BreakerConfig
	Session  SessionConfig
	Cache    CacheConfig
	Login    LoginConfig
	CORS     CORSConfig
	Log      LogConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host    string
	Port    int
	GinMode string
	AppEnv  string
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsProduction reports whether the service runs in production mode.
func (c ServerConfig) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, EnvProduction)
}

// GoodDataConfig holds the remote analytics API configuration.
type GoodDataConfig struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	PollInterval time.Duration
}

// BreakerConfig holds circuit breaker settings for the remote API client.
type BreakerConfig struct {
	Enabled      bool
	MinRequests  int
	FailureRatio float64
	Timeout      time.Duration
}

// SessionConfig holds session cookie configuration.
type SessionConfig struct {
	MaxAge        time.Duration
	EncryptionKey string
}

// CacheConfig holds cache-related configuration.
type CacheConfig struct {
	Type     string
	Host     string
	Port     string
	Password string
	DB       int
	Size     int
	TTL      time.Duration
}

// LoginConfig holds login throttling configuration.
type LoginConfig struct {
	MaxFailures   int
	FailureWindow time.Duration
	RatePerMinute int
}

// CORSConfig holds allowed origins for cross-origin requests.
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:    getEnv("SERVER_HOST", "0.0.0.0"),
			Port:    getEnvAsInt("SERVER_PORT", 3000),
			GinMode: getEnv("GIN_MODE", "debug"),
			AppEnv:  getEnv("APP_ENV", "development"),
		},
		GoodData: GoodDataConfig{
			BaseURL:      strings.TrimSuffix(getEnv("GOODDATA_API_URL", "https://analytics.totvs.com.br"), "/"),
			Timeout:      time.Duration(getEnvAsInt("GOODDATA_TIMEOUT_SECONDS", 60)) * time.Second,
			MaxRetries:   getEnvAsInt("REPORT_MAX_RETRIES", 30),
			PollInterval: time.Duration(getEnvAsInt("REPORT_POLL_INTERVAL_MS", 2000)) * time.Millisecond,
		},
		Breaker: BreakerConfig{
			Enabled:      getEnvAsBool("BREAKER_ENABLED", true),
			MinRequests:  getEnvAsInt("BREAKER_MIN_REQUESTS", 10),
			FailureRatio: getEnvAsFloat("BREAKER_FAILURE_RATIO", 0.6),
			Timeout:      time.Duration(getEnvAsInt("BREAKER_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		Session: SessionConfig{
			MaxAge:        time.Duration(getEnvAsInt("SESSION_MAX_AGE_SECONDS", 604800)) * time.Second,
			EncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", ""),
		},
		Cache: CacheConfig{
			Type:     getEnv("CACHE_TYPE", "memory"),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Size:     getEnvAsInt("CACHE_SIZE", 10000),
			TTL:      time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 900)) * time.Second,
		},
		Login: LoginConfig{
			MaxFailures:   getEnvAsInt("LOGIN_MAX_FAILURES", 5),
			FailureWindow: time.Duration(getEnvAsInt("LOGIN_FAILURE_WINDOW_SECONDS", 900)) * time.Second,
			RatePerMinute: getEnvAsInt("LOGIN_RATE_PER_MINUTE", 20),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", nil),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: %d", c.Server.Port)
	}
	if c.GoodData.BaseURL == "" {
		return fmt.Errorf("GOODDATA_API_URL is required")
	}
	if c.GoodData.MaxRetries <= 0 {
		return fmt.Errorf("REPORT_MAX_RETRIES must be positive, got %d", c.GoodData.MaxRetries)
	}
	if c.GoodData.PollInterval <= 0 {
		return fmt.Errorf("REPORT_POLL_INTERVAL_MS must be positive")
	}
	if c.Breaker.FailureRatio <= 0 || c.Breaker.FailureRatio > 1 {
		return fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1], got %v", c.Breaker.FailureRatio)
	}
	if c.Session.MaxAge <= 0 {
		return fmt.Errorf("SESSION_MAX_AGE_SECONDS must be positive")
	}
	switch c.Cache.Type {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported CACHE_TYPE: %s", c.Cache.Type)
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as a boolean with a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsFloat gets an environment variable as a float with a default value.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated environment variable.
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
