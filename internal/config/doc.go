// Package config provides configuration management for the clock icon daemon.
//
// This package handles loading configuration from YAML files, applying
// environment variable overrides, setting defaults, and validating the
// configuration.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (highest priority)
//  2. YAML configuration file
//  3. Default values (lowest priority)
//
// Supported environment variables:
//   - CLOCKICON_THEME_PATH: Path to the theme pack YAML
//   - CLOCKICON_DISABLE_SECONDS: Drop second hands (true/false)
//   - CLOCKICON_TICK_INTERVAL_MS: Tick interval override in milliseconds
//   - CLOCKICON_TIMEZONE: IANA timezone the clock hands follow
//   - CLOCKICON_HTTP_PORT: HTTP server port (1-65535)
//   - CLOCKICON_LOG_LEVEL: Log level (debug, info, warn, error)
//   - CLOCKICON_LOG_FORMAT: Log format (json, text)
//   - CLOCKICON_PAGE_SIZE: Icons per page in the web UI and API (1-100)
//
// Example configuration file (config.yaml):
//
//	theme_path: "configs/theme.yaml"
//	disable_seconds: true
//	tick_interval_ms: 0   # 1m with seconds disabled, else 200ms
//	timezone: "Europe/Paris"
//	http_port: 8080
//	log_level: "info"
//	log_format: "json"
//	page_size: 10
//
// Example usage:
//
//	cfg, err := config.Load("config.yaml")
//	if err != nil {
//		log.Fatalf("Failed to load config: %v", err)
//	}
//
//	icons, failed := clockicon.LoadAll(pack, cfg.Settings())
package config
