package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration. Values absent from the file
// keep their defaults; a missing file is not an error.
type Config struct {
	Listen    string         `yaml:"listen"`
	ClientDir string         `yaml:"client_dir"`
	SavePath  string         `yaml:"save_path"`
	SaveSlot  string         `yaml:"save_slot"`
	Seed      int64          `yaml:"seed"`
	Provider  ProviderConfig `yaml:"provider"`
	Market    MarketConfig   `yaml:"market"`
	Logging   LoggingConfig  `yaml:"logging"`
}

// ProviderConfig tunes the external dex client.
type ProviderConfig struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
}

// MarketConfig tunes the listing batch lifecycle.
type MarketConfig struct {
	BatchSize       int      `yaml:"batch_size"`
	RefreshInterval Duration `yaml:"refresh_interval"`
}

// LoggingConfig selects sinks and verbosity.
type LoggingConfig struct {
	Sinks    []string `yaml:"sinks"`
	JSONPath string   `yaml:"json_path"`
	Verbose  bool     `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Listen:    ":8080",
		ClientDir: "client",
		SavePath:  "saves.db",
		SaveSlot:  "default",
		Provider: ProviderConfig{
			BaseURL: "https://pokeapi.co/api/v2",
			Timeout: Duration(10 * time.Second),
		},
		Market: MarketConfig{
			BatchSize:       12,
			RefreshInterval: Duration(60 * time.Second),
		},
		Logging: LoggingConfig{
			Sinks: []string{"console"},
		},
	}
}

// Load reads path and merges it over the defaults. An empty path or a
// missing file yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Listen == "" {
		return fmt.Errorf("config: listen must not be empty")
	}
	if c.Market.BatchSize <= 0 {
		return fmt.Errorf("config: market.batch_size must be positive")
	}
	if c.Market.RefreshInterval <= 0 {
		return fmt.Errorf("config: market.refresh_interval must be positive")
	}
	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("config: provider.timeout must be positive")
	}
	return nil
}
