// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	APIKey   string `json:"api_key,omitempty"`   // Gemini API key (GEMINI_API_KEY overrides)
	Model    string `json:"model,omitempty"`     // Generation model identifier
	DataDir  string `json:"data_dir,omitempty"`  // SQLite data directory
	Port     int    `json:"port,omitempty"`      // HTTP listen port
	LogLevel string `json:"log_level,omitempty"` // debug|info|warn|error
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables only.
func FromEnv() *Config {
	return &Config{
		APIKey:   os.Getenv("GEMINI_API_KEY"),
		Model:    os.Getenv("README_STUDIO_MODEL"),
		DataDir:  os.Getenv("README_STUDIO_DATA_DIR"),
		LogLevel: os.Getenv("README_STUDIO_LOG_LEVEL"),
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to layer config file values under environment values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	return result
}

// Validate checks that the configuration has usable values. The API key is
// required: generation cannot run without the service credential, so a
// missing key halts startup instead of degrading.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("config error: GEMINI_API_KEY is required")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	return nil
}
