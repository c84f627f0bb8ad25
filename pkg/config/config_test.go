package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
environment: dev
bid_api:
  base_url: http://localhost:8000
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", c.Server.Port)
	}
	if c.Trend.EMASpan != 10 {
		t.Errorf("default ema span = %d, want 10", c.Trend.EMASpan)
	}
	if c.Trend.LOESSBandwidth != 0.3 {
		t.Errorf("default bandwidth = %v, want 0.3", c.Trend.LOESSBandwidth)
	}
	if c.Trend.ForecastMonths != 3 {
		t.Errorf("default forecast months = %d, want 3", c.Trend.ForecastMonths)
	}
	if c.Trend.Debounce != 400*time.Millisecond {
		t.Errorf("default debounce = %v, want 400ms", c.Trend.Debounce)
	}
}

func TestLoadMissingBaseURL(t *testing.T) {
	path := writeConfig(t, "environment: dev\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error for missing base_url")
	}
}

func TestLoadBadBandwidth(t *testing.T) {
	path := writeConfig(t, `
environment: dev
bid_api:
  base_url: http://localhost:8000
trend:
  loess_bandwidth: 1.5
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error for bandwidth > 1")
	}
}

func TestLoadWithEnvOverride(t *testing.T) {
	path := writeConfig(t, `
environment: dev
bid_api:
  base_url: http://localhost:8000
`)
	t.Setenv("BID_API_BASE_URL", "http://upstream:9000")
	c, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.BidAPI.BaseURL != "http://upstream:9000" {
		t.Errorf("base url = %s, want env override", c.BidAPI.BaseURL)
	}
}

func TestLoadWithEnvPortOverride(t *testing.T) {
	path := writeConfig(t, `
environment: dev
bid_api:
  base_url: http://localhost:8000
`)
	t.Setenv("SERVER_PORT", "9090")
	c, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", c.Server.Port)
	}

	// An unparseable value keeps the configured port.
	t.Setenv("SERVER_PORT", "not-a-port")
	c, err = LoadWithEnv(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if c.Server.Port != 8080 {
		t.Errorf("port = %d, want default 8080", c.Server.Port)
	}
}
