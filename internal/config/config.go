// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gomeet-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// ReportPath is where the JSON report is written
	ReportPath string `json:"report_path"`

	// DefaultFormat is the default stdout format (cli, json)
	DefaultFormat string `json:"default_format"`
}

// Default returns a default configuration. The defaults reproduce a
// zero-input run: report to gomeet_cost_analysis.json, summary to stdout.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			ReportPath:    "gomeet_cost_analysis.json",
			DefaultFormat: "cli",
		},
		Logging: logging.DefaultConfig(),
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
