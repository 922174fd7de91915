package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig_Success(t *testing.T) {
	configPath := writeConfig(t, `
theme_path: "theme.yaml"
disable_seconds: false
tick_interval_ms: 500
timezone: "UTC"
http_port: 9090
log_level: "debug"
log_format: "text"
page_size: 25
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.ThemePath != "theme.yaml" {
		t.Errorf("ThemePath = %v, want theme.yaml", cfg.ThemePath)
	}
	if cfg.DisableSeconds == nil || *cfg.DisableSeconds {
		t.Errorf("DisableSeconds = %v, want false", cfg.DisableSeconds)
	}
	if cfg.HTTPPort != 9090 {
		t.Errorf("HTTPPort = %v, want 9090", cfg.HTTPPort)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %v, want text", cfg.LogFormat)
	}
	if cfg.PageSize != 25 {
		t.Errorf("PageSize = %v, want 25", cfg.PageSize)
	}
	if cfg.Location() != time.UTC {
		t.Errorf("Location = %v, want UTC", cfg.Location())
	}

	settings := cfg.Settings()
	if settings.DisableSeconds {
		t.Error("Settings().DisableSeconds = true, want false")
	}
	if settings.Interval() != 500*time.Millisecond {
		t.Errorf("Settings().Interval() = %v, want 500ms", settings.Interval())
	}
}

func TestLoad_ApplyDefaults_Success(t *testing.T) {
	configPath := writeConfig(t, `theme_path: "theme.yaml"`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"DisableSeconds", *cfg.DisableSeconds, DefaultDisableSeconds},
		{"TickIntervalMS", cfg.TickIntervalMS, 0},
		{"Timezone", cfg.Timezone, DefaultTimezone},
		{"HTTPPort", cfg.HTTPPort, DefaultHTTPPort},
		{"LogLevel", cfg.LogLevel, DefaultLogLevel},
		{"LogFormat", cfg.LogFormat, DefaultLogFormat},
		{"PageSize", cfg.PageSize, DefaultPageSize},
		{"Interval", cfg.Settings().Interval(), time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_SecondsEnabledDerivesFastTick(t *testing.T) {
	configPath := writeConfig(t, `
theme_path: "theme.yaml"
disable_seconds: false
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if got := cfg.Settings().Interval(); got != 200*time.Millisecond {
		t.Errorf("Interval = %v, want 200ms", got)
	}
}

func TestLoad_EnvOverrides_Success(t *testing.T) {
	configPath := writeConfig(t, `
theme_path: "theme.yaml"
http_port: 8080
`)

	t.Setenv("CLOCKICON_THEME_PATH", "/etc/clockicon/theme.yaml")
	t.Setenv("CLOCKICON_DISABLE_SECONDS", "false")
	t.Setenv("CLOCKICON_TICK_INTERVAL_MS", "1000")
	t.Setenv("CLOCKICON_TIMEZONE", "UTC")
	t.Setenv("CLOCKICON_HTTP_PORT", "9191")
	t.Setenv("CLOCKICON_LOG_LEVEL", "debug")
	t.Setenv("CLOCKICON_LOG_FORMAT", "text")
	t.Setenv("CLOCKICON_PAGE_SIZE", "5")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.ThemePath != "/etc/clockicon/theme.yaml" {
		t.Errorf("ThemePath = %v, want override", cfg.ThemePath)
	}
	if *cfg.DisableSeconds {
		t.Error("DisableSeconds should be overridden to false")
	}
	if cfg.TickIntervalMS != 1000 {
		t.Errorf("TickIntervalMS = %v, want 1000", cfg.TickIntervalMS)
	}
	if cfg.HTTPPort != 9191 {
		t.Errorf("HTTPPort = %v, want 9191", cfg.HTTPPort)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %v, want text", cfg.LogFormat)
	}
	if cfg.PageSize != 5 {
		t.Errorf("PageSize = %v, want 5", cfg.PageSize)
	}
}

func TestLoad_EnvOverrides_InvalidValues_Error(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"disable seconds", "CLOCKICON_DISABLE_SECONDS", "maybe"},
		{"tick interval", "CLOCKICON_TICK_INTERVAL_MS", "fast"},
		{"http port", "CLOCKICON_HTTP_PORT", "eighty"},
		{"page size", "CLOCKICON_PAGE_SIZE", "ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := writeConfig(t, `theme_path: "theme.yaml"`)
			t.Setenv(tt.env, tt.val)

			_, err := Load(configPath)
			if err == nil {
				t.Fatalf("Load() expected error for %s=%s", tt.env, tt.val)
			}
			if !strings.Contains(err.Error(), tt.env) {
				t.Errorf("error %q should name %s", err, tt.env)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("CLOCKICON_THEME_PATH", "theme.yaml")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v, want nil", err)
	}
	if cfg.ThemePath != "theme.yaml" {
		t.Errorf("ThemePath = %v, want theme.yaml", cfg.ThemePath)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing theme", `http_port: 8080`, "theme_path is required"},
		{"negative tick", "theme_path: t.yaml\ntick_interval_ms: -1", "cannot be negative"},
		{"tick too fast", "theme_path: t.yaml\ntick_interval_ms: 10", "tick_interval_ms must be between"},
		{"tick too slow", "theme_path: t.yaml\ntick_interval_ms: 3600001", "tick_interval_ms must be between"},
		{"bad timezone", "theme_path: t.yaml\ntimezone: Mars/Olympus_Mons", "invalid timezone"},
		{"port too high", "theme_path: t.yaml\nhttp_port: 70000", "http_port must be between"},
		{"negative port", "theme_path: t.yaml\nhttp_port: -1", "http_port must be between"},
		{"bad log format", "theme_path: t.yaml\nlog_format: xml", "log_format must be json or text"},
		{"page too large", "theme_path: t.yaml\npage_size: 1000", "page_size must be between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile_Error(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestLoad_MalformedYAML_Error(t *testing.T) {
	_, err := Load(writeConfig(t, "theme_path: [unterminated"))
	if err == nil {
		t.Fatal("Load() expected error for malformed YAML")
	}
}
