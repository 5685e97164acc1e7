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
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
diagnostics:
  enabled: true
  poll_interval: 2s
metrics:
  enabled: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Diagnostics.PollInterval.Std() != 2*time.Second {
		t.Errorf("PollInterval = %v", cfg.Diagnostics.PollInterval)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics should be enabled")
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "log_level: warn\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Diagnostics.PollInterval != Default().Diagnostics.PollInterval {
		t.Errorf("PollInterval should keep its default, got %v", cfg.Diagnostics.PollInterval)
	}
}

func TestLoad_RejectsBadLevel(t *testing.T) {
	path := writeConfig(t, "log_level: verbose\n")
	if _, err := Load(path); err == nil {
		t.Error("Unknown log level must fail validation")
	}
}

func TestLoad_RejectsTinyPollInterval(t *testing.T) {
	path := writeConfig(t, "diagnostics:\n  poll_interval: 10ms\n")
	if _, err := Load(path); err == nil {
		t.Error("Sub-100ms poll interval must fail validation")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Missing file must error")
	}
}
