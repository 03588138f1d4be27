package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
environment: test
source:
  type: http
  base_url: http://localhost:9000
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Report.LowStockThreshold != 10 {
		t.Fatalf("threshold default: got %d", c.Report.LowStockThreshold)
	}
	if c.Report.RecentOrderCap != 10 {
		t.Fatalf("recent order cap default: got %d", c.Report.RecentOrderCap)
	}
	if c.Report.PollInterval != 30*time.Second {
		t.Fatalf("poll interval default: got %v", c.Report.PollInterval)
	}
	if c.Server.Port != 8080 {
		t.Fatalf("port default: got %d", c.Server.Port)
	}
}

func TestLoadPollIntervalClamped(t *testing.T) {
	path := writeConfig(t, `
environment: test
source:
  type: http
  base_url: http://localhost:9000
report:
  poll_interval: 5m
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Report.PollInterval != 30*time.Second {
		t.Fatalf("expected clamp to 30s, got %v", c.Report.PollInterval)
	}
}

func TestValidateRejectsUnknownSource(t *testing.T) {
	path := writeConfig(t, `
environment: test
source:
  type: ftp
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown source type")
	}
}

func TestValidateRequiresBaseURL(t *testing.T) {
	path := writeConfig(t, `
environment: test
source:
  type: http
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for missing base_url")
	}
}
