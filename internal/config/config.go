// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"cloudcost/core/types"
	"cloudcost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`

	// Regions contains per-provider default regions
	Regions RegionConfig `json:"regions"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// DefaultCurrency is the currency costs are reported in
	DefaultCurrency types.Currency `json:"default_currency"`

	// TablePath overrides the built-in pricing table when set
	TablePath string `json:"table_path,omitempty"`

	// ExchangeRates converts USD totals into other currencies.
	// Static, configured rates; no market feed.
	ExchangeRates map[types.Currency]float64 `json:"exchange_rates"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (table, json, csv)
	DefaultFormat string `json:"default_format"`

	// ShowBreakdown includes the per-category breakdown
	ShowBreakdown bool `json:"show_breakdown"`

	// ShowRecommendations includes derived recommendations
	ShowRecommendations bool `json:"show_recommendations"`
}

// RegionConfig contains per-provider default regions
type RegionConfig struct {
	AWS   string `json:"aws"`
	Azure string `json:"azure"`
	GCP   string `json:"gcp"`
	OCI   string `json:"oci"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			DefaultCurrency: types.CurrencyUSD,
			ExchangeRates: map[types.Currency]float64{
				types.CurrencyUSD: 1.0,
				types.CurrencyEUR: 0.92,
				types.CurrencyGBP: 0.79,
			},
		},
		Output: OutputConfig{
			DefaultFormat:       "table",
			ShowBreakdown:       true,
			ShowRecommendations: true,
		},
		Logging: logging.DefaultConfig(),
		Regions: RegionConfig{
			AWS:   "us-east-1",
			Azure: "eastus",
			GCP:   "us-central1",
			OCI:   "us-ashburn-1",
		},
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
