package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// loadYAML loads configuration from a YAML file. Returns an empty config
// if the file doesn't exist (not an error). Returns an error only if the
// file exists but cannot be read or parsed.
func loadYAML(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}
