package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Load creates a Config for configDir and applies the config file found in
// it, if any. A missing file is not an error.
func Load(configDir string) (*Config, error) {
	cfg := New(configDir)

	path := cfg.ConfigFile()
	if path == "" {
		return cfg, nil
	}
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile reads a JSONC or YAML file, chosen by extension, into c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("unmarshal config %s: %w", filepath.Base(path), err)
		}
	default:
		// Standardize strips comments and trailing commas.
		std, err := hujson.Standardize(data)
		if err != nil {
			return fmt.Errorf("parse config %s: %w", filepath.Base(path), err)
		}
		if err := json.Unmarshal(std, c); err != nil {
			return fmt.Errorf("unmarshal config %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}
