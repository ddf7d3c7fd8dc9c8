package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = "pennywise.yaml"

// Environment variables that override file values.
const (
	EnvRatesFile    = "PENNYWISE_RATES_FILE"
	EnvExpensesFile = "PENNYWISE_EXPENSES_FILE"
	EnvLogLevel     = "PENNYWISE_LOG_LEVEL"
)

// Config represents the top-level pennywise.yaml configuration.
type Config struct {
	RatesFile    string      `yaml:"rates_file" validate:"required"`
	ExpensesFile string      `yaml:"expenses_file"`
	LogLevel     string      `yaml:"log_level" validate:"oneof=debug info warn error"`
	Chart        ChartConfig `yaml:"chart"`
}

// ChartConfig controls bar chart rendering.
type ChartConfig struct {
	Width   int    `yaml:"width" validate:"gte=10,lte=200"`
	BarChar string `yaml:"bar_char" validate:"required"`
}

// Load reads a pennywise.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
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

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		RatesFile:    "inflation-rates.csv",
		ExpensesFile: "expenses.csv",
		LogLevel:     "info",
		Chart: ChartConfig{
			Width:   40,
			BarChar: "█",
		},
	}
}

// ApplyEnv overrides file values with any PENNYWISE_* variables that are set.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvRatesFile); ok && v != "" {
		c.RatesFile = v
	}
	if v, ok := lookup(EnvExpensesFile); ok && v != "" {
		c.ExpensesFile = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
