package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// config is the optional on-disk configuration for the qrencode CLI. All
// fields have defaults, so an absent or empty file is not an error.
type config struct {
	ECL          string `yaml:"ecl"`
	OutputFormat string `yaml:"output_format"`
	Border       int    `yaml:"border"`
	Scale        int    `yaml:"scale"`
}

func defaultConfig() *config {
	return &config{
		ECL:          "M",
		OutputFormat: "terminal",
		Border:       4,
		Scale:        8,
	}
}

// loadConfig reads path if it exists and merges it onto the defaults.
// A missing file is not an error: the defaults are returned as-is.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".qrencode/config.yaml"
	}
	return filepath.Join(home, ".qrencode", "config.yaml")
}
