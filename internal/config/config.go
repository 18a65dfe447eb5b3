package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Enumerator mode: "auto", "sysfs", or "lsblk"
	Enumerator string `yaml:"enumerator,omitempty"`
	// ExcludePrefixes are additional device path prefixes to exclude,
	// applied after the built-in exclusion rules
	ExcludePrefixes []string `yaml:"exclude_prefixes,omitempty"`
}

// defaultConfig reproduces the stock catalog behavior with no config file
var defaultConfig = Config{
	Enumerator: "auto",
}

func Load(path string) (*Config, error) {
	if path == "" {
		// Try default locations
		candidates := []string{
			"/etc/diskcat/config.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/diskcat/config.yaml"),
			"config.yaml",
		}
		for _, c := range candidates {
			if _, err := os.Stat(c); err == nil {
				path = c
				break
			}
		}
	}

	var cfg Config
	if path == "" {
		// No config file found - use defaults
		cfg = defaultConfig
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			cfg = defaultConfig
		} else {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, err
			}
		}
	}

	if cfg.Enumerator == "" {
		cfg.Enumerator = defaultConfig.Enumerator
	}

	return &cfg, nil
}
