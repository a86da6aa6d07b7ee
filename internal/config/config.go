package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"StockRadar/internal/model"
)

// SymbolEntry is one symbol row in the config file. Order in the file
// determines report row order.
type SymbolEntry struct {
	Ticker string `yaml:"ticker"`
	Name   string `yaml:"name"`
}

// Config holds all application configuration.
type Config struct {
	Symbols    []SymbolEntry `yaml:"symbols"`
	DataSource struct {
		BaseURL      string  `yaml:"base_url"`
		APIKey       string  `yaml:"api_key"`
		Suffix       string  `yaml:"suffix"`
		DelaySeconds float64 `yaml:"delay_seconds"`
	} `yaml:"data_source"`
	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("BARS_API_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("BARS_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("TICKER_SUFFIX"); v != "" {
		cfg.DataSource.Suffix = v
	}
	if v := os.Getenv("FETCH_DELAY_SECONDS"); v != "" {
		if d, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.DataSource.DelaySeconds = d
		}
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = []SymbolEntry{
			{Ticker: "IDEA", Name: "Vodafone Idea Limited"},
			{Ticker: "ADANIPORTS", Name: "Adani Ports and SEZ"},
			{Ticker: "RELIANCE", Name: "Reliance Industries"},
			{Ticker: "BAJAJ-AUTO", Name: "Bajaj Auto Limited"},
		}
	}
	if cfg.DataSource.Suffix == "" {
		cfg.DataSource.Suffix = ".NS"
	}
	if cfg.DataSource.DelaySeconds == 0 {
		cfg.DataSource.DelaySeconds = 2
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("symbols must not be empty")
	}
	seen := make(map[string]bool, len(c.Symbols))
	for i, s := range c.Symbols {
		if s.Ticker == "" {
			return fmt.Errorf("symbols[%d]: ticker is required", i)
		}
		if seen[s.Ticker] {
			return fmt.Errorf("symbols: duplicate ticker %q", s.Ticker)
		}
		seen[s.Ticker] = true
	}
	if c.DataSource.DelaySeconds < 0 {
		return fmt.Errorf("data_source.delay_seconds must not be negative")
	}
	return nil
}

// SymbolList converts the configured entries into model symbols, preserving order.
func (c *Config) SymbolList() []model.Symbol {
	symbols := make([]model.Symbol, len(c.Symbols))
	for i, s := range c.Symbols {
		name := s.Name
		if name == "" {
			name = s.Ticker
		}
		symbols[i] = model.Symbol{Ticker: s.Ticker, Name: name}
	}
	return symbols
}
