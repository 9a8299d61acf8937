// ABOUTME: Configuration file handling for persistent clock settings.
// ABOUTME: Stores chime, always-on-top, and refresh interval preferences.

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultRefreshMs = 200
	minRefreshMs     = 50
	maxRefreshMs     = 1000
)

// Config holds the persistent configuration for the clock.
type Config struct {
	Chime       bool `json:"chime,omitempty"`
	AlwaysOnTop bool `json:"alwaysOnTop,omitempty"`
	RefreshMs   int  `json:"refreshMs,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		RefreshMs: defaultRefreshMs,
	}
}

// RefreshInterval returns the refresh period, clamped to sane bounds.
// Zero (unset) means the default.
func (c *Config) RefreshInterval() time.Duration {
	ms := c.RefreshMs
	if ms == 0 {
		ms = defaultRefreshMs
	}
	if ms < minRefreshMs {
		ms = minRefreshMs
	}
	if ms > maxRefreshMs {
		ms = maxRefreshMs
	}
	return time.Duration(ms) * time.Millisecond
}

// ConfigPath returns the platform-appropriate path for the config file.
func ConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	return filepath.Join(configDir, "ocean-clock", "config.json")
}

// LoadConfig reads the configuration from the given path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the given path, creating directories as needed.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
