// Package config handles the configuration directory, the optional config
// file and the storage location.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// DefaultFile is the storage location used when none is configured.
	// Relative paths resolve against the working directory.
	DefaultFile = "todo_list.json"
)

// ConfigFiles are the config file names looked up in the config directory,
// in order of preference.
var ConfigFiles = []string{"config.jsonc", "config.json", "config.yaml", "config.yml"}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `json:"-" yaml:"-"`

	// File is the storage location of the task list.
	File string `json:"file" yaml:"file"`

	// Debug enables debug logging.
	Debug bool `json:"debug" yaml:"debug"`

	// Quiet suppresses informational output.
	Quiet bool `json:"quiet" yaml:"quiet"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
func New(configDir string) *Config {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir}
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigFile returns the first existing config file in the config
// directory, or "" if there is none.
func (c *Config) ConfigFile() string {
	for _, name := range ConfigFiles {
		path := filepath.Join(c.Dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// StoragePath returns the storage location with "~/" expanded.
// Falls back to DefaultFile when none is set.
func (c *Config) StoragePath() string {
	path := c.File
	if strings.TrimSpace(path) == "" {
		return DefaultFile
	}
	return expandHome(path)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
