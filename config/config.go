// Package config loads backtester configuration from YAML or JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/backtester/backtest"
	"github.com/rustyeddy/backtester/indicator"
	"github.com/rustyeddy/backtester/market"
	"github.com/rustyeddy/backtester/signal"
)

// Config is the complete backtester configuration.
type Config struct {
	Account  AccountConfig  `json:"account" yaml:"account"`
	Strategy StrategyConfig `json:"strategy" yaml:"strategy"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// AccountConfig sets up the run's portfolio.
type AccountConfig struct {
	Currency      string  `json:"currency" yaml:"currency"`
	InitialEquity float64 `json:"initial_equity" yaml:"initial_equity"`
}

// StrategyConfig selects and parameterizes the strategy.
type StrategyConfig struct {
	Kind       string  `json:"kind" yaml:"kind"` // macd-zero-cross, filter-rule
	Instrument string  `json:"instrument" yaml:"instrument"`
	Field      string  `json:"field" yaml:"field"` // open or close
	Quantity   float64 `json:"quantity" yaml:"quantity"`

	Fast      int     `json:"fast_period" yaml:"fast_period"`
	Slow      int     `json:"slow_period" yaml:"slow_period"`
	Signal    int     `json:"signal_period" yaml:"signal_period"`
	Threshold float64 `json:"threshold,omitempty" yaml:"threshold,omitempty"`

	CloseEnd bool `json:"close_end" yaml:"close_end"`
}

// JournalConfig selects run persistence.
type JournalConfig struct {
	Type   string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	Dir    string `json:"dir,omitempty" yaml:"dir,omitempty"`
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file, trying YAML first and
// falling back to JSON.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration, as YAML for .yaml/.yml paths and JSON
// otherwise.
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
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration before a run starts.
func (c *Config) Validate() error {
	if c.Account.InitialEquity <= 0 {
		return fmt.Errorf("account.initial_equity must be positive")
	}
	if c.Strategy.Instrument == "" {
		return fmt.Errorf("strategy.instrument is required")
	}
	if c.Strategy.Quantity <= 0 {
		return fmt.Errorf("strategy.quantity must be positive")
	}

	switch c.Strategy.Kind {
	case "macd-zero-cross":
		cfg := indicator.MACDConfig{
			FastPeriod:   c.Strategy.Fast,
			SlowPeriod:   c.Strategy.Slow,
			SignalPeriod: c.Strategy.Signal,
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	case "filter-rule":
		if c.Strategy.Threshold <= 0 {
			return fmt.Errorf("strategy.threshold must be positive")
		}
	default:
		return fmt.Errorf("unknown strategy kind %q", c.Strategy.Kind)
	}

	switch c.Strategy.Field {
	case "", "open", "close":
	default:
		return fmt.Errorf("strategy.field must be \"open\" or \"close\"")
	}

	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.Dir == "" {
			return fmt.Errorf("journal.dir required for CSV journal")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for SQLite journal")
		}
	default:
		return fmt.Errorf("journal.type must be \"none\", \"csv\" or \"sqlite\"")
	}
	return nil
}

// RunConfig translates the file config into a backtest run configuration.
func (c *Config) RunConfig() backtest.RunConfig {
	return backtest.RunConfig{
		Kind: c.Strategy.Kind,
		Signal: signal.Config{
			MACD: indicator.MACDConfig{
				FastPeriod:   c.Strategy.Fast,
				SlowPeriod:   c.Strategy.Slow,
				SignalPeriod: c.Strategy.Signal,
			},
			Threshold: c.Strategy.Threshold,
		},
		Field:         market.ParseField(c.Strategy.Field),
		Quantity:      c.Strategy.Quantity,
		InitialEquity: c.Account.InitialEquity,
		CloseEnd:      c.Strategy.CloseEnd,
	}
}

// Instrument builds the instrument descriptor for the run.
func (c *Config) Instrument() market.Instrument {
	inst := market.DefaultInstrument(c.Strategy.Instrument)
	if c.Account.Currency != "" {
		inst.Currency = c.Account.Currency
	}
	return inst
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency:      "USD",
			InitialEquity: 100_000,
		},
		Strategy: StrategyConfig{
			Kind:       "macd-zero-cross",
			Instrument: "SPY",
			Field:      "close",
			Quantity:   100,
			Fast:       12,
			Slow:       26,
			Signal:     9,
		},
		Journal: JournalConfig{Type: "none"},
	}
}
