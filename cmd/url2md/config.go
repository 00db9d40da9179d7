package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds optional settings loaded from a YAML file. Command-line flags
// take precedence over config values.
type Config struct {
	OutputDir      string   `yaml:"output_dir"`
	UserAgent      string   `yaml:"user_agent"`
	TrackingParams []string `yaml:"tracking_params"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
