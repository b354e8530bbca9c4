package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// EnvDevelopment is the NODE_ENV value that enables verbose error responses
	EnvDevelopment = "development"

	// EnvProduction is the default environment
	EnvProduction = "production"

	// DefaultVercelAPIURL is the base URL of the Vercel REST API
	DefaultVercelAPIURL = "https://api.vercel.com"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Vercel  VercelConfig
	App     AppConfig
	Tracing TracingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// VercelConfig holds the deployment API configuration.
// Token may be empty; deploy requests fail individually when it is.
type VercelConfig struct {
	Token   string
	APIURL  string
	TeamID  string
	Timeout int
}

// AppConfig holds runtime environment settings
type AppConfig struct {
	Environment string
	Development bool
}

// TracingConfig selects where spans are exported
type TracingConfig struct {
	Exporter    string
	ServiceName string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	env := strings.ToLower(getEnv("NODE_ENV", EnvProduction))

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 60),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 120),
		},
		Vercel: VercelConfig{
			Token:   strings.TrimSpace(os.Getenv("VERCEL_TOKEN")),
			APIURL:  strings.TrimRight(getEnv("VERCEL_API_URL", DefaultVercelAPIURL), "/"),
			TeamID:  getEnv("VERCEL_TEAM_ID", ""),
			Timeout: getEnvAsInt("VERCEL_TIMEOUT", 30),
		},
		App: AppConfig{
			Environment: env,
			Development: env == EnvDevelopment,
		},
		Tracing: TracingConfig{
			Exporter:    strings.ToLower(getEnv("TRACING_EXPORTER", "none")),
			ServiceName: getEnv("TRACING_SERVICE_NAME", "htmldeploy"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.Vercel.APIURL == "" {
		return fmt.Errorf("VERCEL_API_URL must not be empty")
	}
	if !strings.HasPrefix(c.Vercel.APIURL, "http://") && !strings.HasPrefix(c.Vercel.APIURL, "https://") {
		return fmt.Errorf("VERCEL_API_URL must start with http:// or https://")
	}
	if c.Vercel.Timeout <= 0 {
		return fmt.Errorf("VERCEL_TIMEOUT must be positive, got %d", c.Vercel.Timeout)
	}
	switch c.Tracing.Exporter {
	case "", "none", "stdout", "otlp":
	default:
		return fmt.Errorf("TRACING_EXPORTER must be one of none, stdout, otlp, got %q", c.Tracing.Exporter)
	}
	return nil
}

// GetServerAddress returns the server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// VercelTimeout returns the outbound request timeout
func (c *Config) VercelTimeout() time.Duration {
	return time.Duration(c.Vercel.Timeout) * time.Second
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}
