package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the optional biosvg.yaml configuration.
type Config struct {
	Listen     string   `yaml:"listen,omitempty"`
	Length     int      `yaml:"length,omitempty"`
	Difficulty int      `yaml:"difficulty,omitempty"`
	Colors     []string `yaml:"colors,omitempty"`
}

// LoadConfig reads the file at path if present and fills in defaults for
// anything left unset. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if cfg.Listen == "" {
		cfg.Listen = ":28416"
	}
	if cfg.Length == 0 {
		cfg.Length = 4
	}
	if cfg.Difficulty == 0 {
		cfg.Difficulty = 6
	}
	if len(cfg.Colors) == 0 {
		cfg.Colors = []string{"#0078D6", "#aa3333", "#f08012", "#33aa00", "#aa33aa"}
	}
	if len(cfg.Colors) < 2 {
		return nil, fmt.Errorf("config %s: need at least 2 colors, got %d", path, len(cfg.Colors))
	}
	return cfg, nil
}
