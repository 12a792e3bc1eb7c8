package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the journal configuration.
type Config struct {
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Account AccountConfig `json:"account" yaml:"account"`
}

// StorageConfig locates the persistent store.
type StorageConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// AccountConfig contains account parameters. StartingBalance seeds the
// ledger only when the store has never been written; once persisted, the
// stored value wins and only a full reset changes it.
type AccountConfig struct {
	Currency        string `json:"currency" yaml:"currency"`
	StartingBalance string `json:"starting_balance,omitempty" yaml:"starting_balance,omitempty"`
}

// ParseStartingBalance parses the configured starting balance, defaulting to 0.
func (a AccountConfig) ParseStartingBalance() (decimal.Decimal, error) {
	if a.StartingBalance == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(a.StartingBalance)
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Storage.DBPath == "" {
		return fmt.Errorf("storage.db_path is required")
	}
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	sb, err := c.Account.ParseStartingBalance()
	if err != nil {
		return fmt.Errorf("account.starting_balance: %w", err)
	}
	if sb.IsNegative() {
		return fmt.Errorf("account.starting_balance must not be negative")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			DBPath: "./fxjournal.sqlite",
		},
		Account: AccountConfig{
			Currency: "USD",
		},
	}
}
