package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pocketbook-dev/pocketbook/internal/rates"
)

// Config represents the top-level pocketbook.yaml configuration.
type Config struct {
	Ledger   LedgerConfig   `yaml:"ledger"`
	Rates    RatesConfig    `yaml:"rates"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// LedgerConfig locates the persisted ledger file.
type LedgerConfig struct {
	Path string `yaml:"path"`
}

// RatesConfig points at the exchange-rate service.
type RatesConfig struct {
	Endpoint       string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DefaultsConfig holds defaults applied when the user omits a value.
type DefaultsConfig struct {
	Currency string `yaml:"currency"`
}

// Load reads a pocketbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new pocketbook.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			Path: "database.json",
		},
		Rates: RatesConfig{
			Endpoint:       rates.DefaultEndpoint,
			TimeoutSeconds: 10,
		},
		Defaults: DefaultsConfig{
			Currency: "USD",
		},
	}
}
