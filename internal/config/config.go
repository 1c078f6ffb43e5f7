// Package config loads and saves the stockroom settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Defaults
const (
	DefaultInventoryFile = "store_items.csv"
	DefaultMinStock      = 50
	DefaultLogLevel      = "info"
)

// Environment variable names.
const (
	EnvFile     = "STOCKROOM_FILE"
	EnvLedger   = "STOCKROOM_LEDGER"
	EnvMinStock = "STOCKROOM_MIN_STOCK"
	EnvActor    = "STOCKROOM_ACTOR"
)

// Config represents the stockroom configuration.
type Config struct {
	InventoryFile string `yaml:"inventory_file"`
	LedgerPath    string `yaml:"ledger_path,omitempty"` // empty means .stockroom/ledger.db
	MinStock      int    `yaml:"min_stock"`
	Actor         string `yaml:"actor,omitempty"` // recorded in the stock ledger
	LogLevel      string `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		InventoryFile: DefaultInventoryFile,
		MinStock:      DefaultMinStock,
		LogLevel:      DefaultLogLevel,
	}
}

// Path returns the config file location for dir.
func Path(dir string) string {
	return filepath.Join(dir, ".stockroom", "config.yaml")
}

// LoadConfig reads .stockroom/config.yaml from the specified directory.
// A missing file yields defaults. Environment overrides are applied last.
func LoadConfig(dir string) (*Config, error) {
	cfg, err := LoadConfigFile(dir)
	if err != nil {
		return nil, err
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFile reads config.yaml without environment overrides,
// for commands that edit and save the file.
func LoadConfigFile(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(dir))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	return cfg, nil
}

// SaveConfig writes config.yaml to directory
func SaveConfig(dir string, cfg *Config) error {
	stockDir := filepath.Join(dir, ".stockroom")
	if err := os.MkdirAll(stockDir, 0755); err != nil {
		return fmt.Errorf("failed to create .stockroom dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvFile); v != "" {
		c.InventoryFile = v
	}
	if v := os.Getenv(EnvLedger); v != "" {
		c.LedgerPath = v
	}
	if v := os.Getenv(EnvActor); v != "" {
		c.Actor = v
	}
	if v := os.Getenv(EnvMinStock); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMinStock, v, err)
		}
		c.MinStock = n
	}
	return nil
}

// ResolveLedgerPath returns the ledger location, defaulting under dir.
func (c *Config) ResolveLedgerPath(dir string) string {
	if c.LedgerPath != "" {
		return c.LedgerPath
	}
	return filepath.Join(dir, ".stockroom", "ledger.db")
}

// ResolveActor returns the configured actor, falling back to $USER.
func (c *Config) ResolveActor() string {
	if c.Actor != "" {
		return c.Actor
	}
	return os.Getenv("USER")
}
