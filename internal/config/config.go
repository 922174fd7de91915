package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/zgpcy/clock-icon-animator/internal/clockicon"
	"gopkg.in/yaml.v3"
)

// Configuration validation constants
const (
	MinTickIntervalMS = 50      // Minimum tick interval in milliseconds
	MaxTickIntervalMS = 3600000 // One hour
	MinPort           = 1       // Minimum valid port number
	MaxPort           = 65535   // Maximum valid port number
	MinPageSize       = 1
	MaxPageSize       = 100

	// Default values
	DefaultDisableSeconds = true
	DefaultTimezone       = "Local"
	DefaultHTTPPort       = 8080
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "json"
	DefaultPageSize       = 10
)

// Config represents the application configuration
type Config struct {
	ThemePath      string `yaml:"theme_path"`
	DisableSeconds *bool  `yaml:"disable_seconds"`  // Pointer to distinguish between false and unset
	TickIntervalMS int    `yaml:"tick_interval_ms"` // 0 derives the interval from DisableSeconds
	Timezone       string `yaml:"timezone"`
	HTTPPort       int    `yaml:"http_port"`
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
	PageSize       int    `yaml:"page_size"`

	location *time.Location
}

// Load loads configuration from a YAML file and applies environment variable overrides
func Load(path string) (*Config, error) {
	// #nosec G304 -- Config file path is provided by administrator via CLI flag, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return finish(&cfg)
}

// FromEnv builds a configuration from defaults and environment variables only
func FromEnv() (*Config, error) {
	return finish(&Config{})
}

func finish(cfg *Config) (*Config, error) {
	applyDefaults(cfg)

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("environment variable error: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults sets default values for configuration
func applyDefaults(cfg *Config) {
	if cfg.DisableSeconds == nil {
		disable := DefaultDisableSeconds
		cfg.DisableSeconds = &disable
	}
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if cfg.HTTPPort == 0 {
		cfg.HTTPPort = DefaultHTTPPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = DefaultPageSize
	}
}

// applyEnvOverrides applies environment variable overrides to configuration
func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("CLOCKICON_THEME_PATH"); val != "" {
		cfg.ThemePath = val
	}

	if val := os.Getenv("CLOCKICON_DISABLE_SECONDS"); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid CLOCKICON_DISABLE_SECONDS: must be a boolean, got %q", val)
		}
		cfg.DisableSeconds = &b
	}

	if val := os.Getenv("CLOCKICON_TICK_INTERVAL_MS"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid CLOCKICON_TICK_INTERVAL_MS: must be an integer, got %q", val)
		}
		cfg.TickIntervalMS = i
	}

	if val := os.Getenv("CLOCKICON_TIMEZONE"); val != "" {
		cfg.Timezone = val
	}

	if val := os.Getenv("CLOCKICON_HTTP_PORT"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid CLOCKICON_HTTP_PORT: must be an integer, got %q", val)
		}
		cfg.HTTPPort = i
	}

	if val := os.Getenv("CLOCKICON_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}

	if val := os.Getenv("CLOCKICON_LOG_FORMAT"); val != "" {
		cfg.LogFormat = val
	}

	if val := os.Getenv("CLOCKICON_PAGE_SIZE"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid CLOCKICON_PAGE_SIZE: must be an integer, got %q", val)
		}
		cfg.PageSize = i
	}

	return nil
}

// validate validates the configuration
func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.ThemePath) == "" {
		return fmt.Errorf("theme_path is required")
	}

	// Zero means derived from disable_seconds
	if cfg.TickIntervalMS < 0 {
		return fmt.Errorf("tick_interval_ms cannot be negative, got %d", cfg.TickIntervalMS)
	}
	if cfg.TickIntervalMS != 0 && (cfg.TickIntervalMS < MinTickIntervalMS || cfg.TickIntervalMS > MaxTickIntervalMS) {
		return fmt.Errorf("tick_interval_ms must be between %d and %d, got %d", MinTickIntervalMS, MaxTickIntervalMS, cfg.TickIntervalMS)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	cfg.location = loc

	if cfg.HTTPPort < MinPort || cfg.HTTPPort > MaxPort {
		return fmt.Errorf("http_port must be between %d and %d", MinPort, MaxPort)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("log_format must be json or text, got %q", cfg.LogFormat)
	}

	if cfg.PageSize < MinPageSize || cfg.PageSize > MaxPageSize {
		return fmt.Errorf("page_size must be between %d and %d, got %d", MinPageSize, MaxPageSize, cfg.PageSize)
	}

	return nil
}

// Settings returns the clock behaviour described by the configuration
func (c *Config) Settings() clockicon.Settings {
	disable := DefaultDisableSeconds
	if c.DisableSeconds != nil {
		disable = *c.DisableSeconds
	}
	return clockicon.Settings{
		DisableSeconds: disable,
		TickInterval:   time.Duration(c.TickIntervalMS) * time.Millisecond,
	}
}

// Location returns the configured timezone, time.Local if unresolved
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}
