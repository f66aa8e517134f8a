package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	configDir      = ".remindkit"
	configFileName = "config.json"
)

// Config is the CLI-side configuration (~/.remindkit/config.json). The API
// server has its own viper config; this file only carries what the CLI
// needs to reach it.
type Config struct {
	APIBaseURL      string `json:"api_base_url"`
	DefaultCategory string `json:"default_category,omitempty"`
}

// GetConfigPath returns the path to the config file (~/.remindkit/config.json)
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir, configFileName), nil
}

// LoadConfig loads the CLI config, returning an empty config when none exists.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// No config found, return empty
		return &Config{}, nil
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	// Ensure the directory exists
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
