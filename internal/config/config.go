package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

var (
	// ErrBaseURLRequired is returned when BASE_URL is not set.
	ErrBaseURLRequired = errors.New("BASE_URL must be set")
	// ErrAPIKeyRequired is returned when API_KEY is not set.
	ErrAPIKeyRequired = errors.New("API_KEY must be set")
	// ErrFabricRequired is returned when FABRIC is not set.
	ErrFabricRequired = errors.New("FABRIC must be set")
)

// Config holds the connection settings and ambient options for gdnsh.
type Config struct {
	BaseURL   string        `mapstructure:"base_url"`
	APIKey    string        `mapstructure:"api_key"`
	Fabric    string        `mapstructure:"fabric"`
	Timeout   time.Duration `mapstructure:"gdn_timeout"`
	RateLimit float64       `mapstructure:"gdn_rate_limit"`
	LogLevel  string        `mapstructure:"log_level"`
	LogFormat string        `mapstructure:"log_format"`
}

// keys maps config keys to the environment variables that feed them.
var keys = map[string]string{
	"base_url":       "BASE_URL",
	"api_key":        "API_KEY",
	"fabric":         "FABRIC",
	"gdn_timeout":    "GDN_TIMEOUT",
	"gdn_rate_limit": "GDN_RATE_LIMIT",
	"log_level":      "LOG_LEVEL",
	"log_format":     "LOG_FORMAT",
}

// Load reads configuration from an optional dotenv file and the environment.
// Environment variables win over the file. A missing file is not an error.
func Load(envFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("gdn_timeout", "30s")
	v.SetDefault("gdn_rate_limit", 0)
	v.SetDefault("log_level", "INFO")
	v.SetDefault("log_format", "text")

	// 1. Load from .env file (if exists)
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", envFile, err)
		}
	}

	// 2. Load from environment variables
	for key, env := range keys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	// 3. Unmarshal into struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.Fabric = strings.TrimSpace(cfg.Fabric)

	return &cfg, nil
}

// Validate returns an error if required fields are missing.
func (c *Config) Validate() error {
	switch {
	case c.BaseURL == "":
		return ErrBaseURLRequired
	case c.APIKey == "":
		return ErrAPIKeyRequired
	case c.Fabric == "":
		return ErrFabricRequired
	}
	if c.Timeout < 0 {
		return fmt.Errorf("GDN_TIMEOUT must not be negative, got %s", c.Timeout)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("GDN_RATE_LIMIT must not be negative, got %v", c.RateLimit)
	}
	return nil
}
