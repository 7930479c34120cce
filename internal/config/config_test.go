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
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("listen = %q, want default", cfg.Listen)
	}
	if cfg.Market.BatchSize != 12 || cfg.Market.RefreshInterval.Std() != 60*time.Second {
		t.Errorf("market defaults wrong: %+v", cfg.Market)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
listen: ":9999"
seed: 42
market:
  refresh_interval: 30s
logging:
  sinks: [console, json]
  json_path: events.ndjson
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != ":9999" {
		t.Errorf("listen = %q", cfg.Listen)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed = %d", cfg.Seed)
	}
	if cfg.Market.RefreshInterval.Std() != 30*time.Second {
		t.Errorf("refresh interval = %v", cfg.Market.RefreshInterval)
	}
	if cfg.Market.BatchSize != 12 {
		t.Errorf("batch size should keep default, got %d", cfg.Market.BatchSize)
	}
	if cfg.Provider.BaseURL == "" {
		t.Error("provider base url lost its default")
	}
	if len(cfg.Logging.Sinks) != 2 || cfg.Logging.JSONPath != "events.ndjson" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"empty listen":     `listen: ""`,
		"zero batch":       "market:\n  batch_size: 0",
		"bad yaml":         `listen: [`,
		"negative timeout": "provider:\n  timeout: -1s",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
