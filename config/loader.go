package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// DefaultPaths are searched in order when no explicit path is given.
var DefaultPaths = []string{"config.yml", "config.yaml"}

// LoadAppConfig loads and validates the configuration into Config. An empty
// path searches DefaultPaths; finding none of them is not an error and leaves
// Config at its zero value.
func LoadAppConfig(path string) error {
	if path == "" {
		for _, p := range DefaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
		if path == "" {
			Config = AppConfig{}
			return nil
		}
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// LoadFile reads and validates a single configuration file.
func LoadFile(path string) (AppConfig, error) {
	var cfg AppConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config file %s not found: %w", path, err)
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("validate %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the struct tags of cfg.
func Validate(cfg AppConfig) error {
	return validator.New().Struct(cfg)
}
