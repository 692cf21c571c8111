// Package common provides shared utilities for jiten
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for jiten
type Config struct {
	Environment string          `toml:"environment"`
	Server      ServerConfig    `toml:"server"`
	Logging     LoggingConfig   `toml:"logging"`
	RateLimit   RateLimitConfig `toml:"ratelimit"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	StaticDir string `toml:"static_dir"` // directory served at /; empty disables static serving
}

// RateLimitConfig throttles API requests per client address.
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`   // sustained requests per second per client
	Burst   int     `toml:"burst"` // short burst allowance per client
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level    string   `toml:"level"`
	Format   string   `toml:"format"`  // "console" or "json"
	Outputs  []string `toml:"outputs"` // any of "console", "file"
	FilePath string   `toml:"file_path"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			StaticDir: "public",
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     20,
			Burst:   40,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "console",
			Outputs:  []string{"console"},
			FilePath: "./logs/jiten.log",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// Apply environment overrides
	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("JITEN_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("JITEN_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("JITEN_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if dir := os.Getenv("JITEN_STATIC_DIR"); dir != "" {
		config.Server.StaticDir = dir
	}

	if level := os.Getenv("JITEN_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if v := os.Getenv("JITEN_RATELIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			config.RateLimit.Enabled = enabled
		}
	}
	if v := os.Getenv("JITEN_RATELIMIT_RPS"); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil && rps > 0 {
			config.RateLimit.RPS = rps
		}
	}
	if v := os.Getenv("JITEN_RATELIMIT_BURST"); v != "" {
		if burst, err := strconv.Atoi(v); err == nil && burst > 0 {
			config.RateLimit.Burst = burst
		}
	}
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
