package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file must not fail: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Yahoo.BaseURL != "https://query1.finance.yahoo.com" {
		t.Errorf("unexpected base url: %s", cfg.Yahoo.BaseURL)
	}
	if cfg.Yahoo.MaxRetries != 3 {
		t.Errorf("expected 3 retries, got %d", cfg.Yahoo.MaxRetries)
	}
	if cfg.RateLimit.PerMinute != 20 || cfg.RateLimit.PerDay != 500 {
		t.Errorf("unexpected rate limits: %+v", cfg.RateLimit)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
yahoo:
  timeout: 5s
rate_limit:
  per_minute: 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Yahoo.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.Yahoo.Timeout)
	}
	if cfg.RateLimit.PerMinute != 5 {
		t.Errorf("expected per_minute 5, got %d", cfg.RateLimit.PerMinute)
	}
	// Unset keys still get defaults.
	if cfg.RateLimit.PerDay != 500 {
		t.Errorf("expected default per_day 500, got %d", cfg.RateLimit.PerDay)
	}
}

func TestLoadWithEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "2")
	t.Setenv("YAHOO_BASE_URL", "http://localhost:9999")

	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("expected env port 7070, got %d", cfg.Server.Port)
	}
	if cfg.RateLimit.PerMinute != 2 {
		t.Errorf("expected env per_minute 2, got %d", cfg.RateLimit.PerMinute)
	}
	if cfg.Yahoo.BaseURL != "http://localhost:9999" {
		t.Errorf("expected env base url, got %s", cfg.Yahoo.BaseURL)
	}
}

func TestValidate_Rejects(t *testing.T) {
	path := writeConfig(t, `
rate_limit:
  per_minute: -1
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for negative per_minute")
	}
}
