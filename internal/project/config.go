// Package project holds host-level persistence that sits outside the core
// engine: CLI defaults and the append-only action log (spec.md §3's Log
// Entry, §6's Logs operation). Grounded in the teacher's
// internal/project/appconfig.go load/save pattern (plain encoding/json,
// create-parent-dirs-on-save, return defaults when the file is absent).
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// AppConfig holds persisted CLI defaults, distinct from the engine's
// simulated-clock state.
type AppConfig struct {
	DataDir          string  `json:"data_dir"`
	DefaultMaxWeight float64 `json:"default_max_weight"`
	DefaultZone      string  `json:"default_zone"`
}

// DefaultConfigDir returns ~/.stowctl, the default directory for CLI
// configuration and the log store.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".stowctl")
}

// DefaultConfigPath returns the default path for the CLI config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// DefaultAppConfig returns an AppConfig populated with sane defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DataDir:          DefaultConfigDir(),
		DefaultMaxWeight: 100,
		DefaultZone:      "",
	}
}

// SaveAppConfig persists config to path as indented JSON, creating parent
// directories as needed.
func SaveAppConfig(path string, config AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write config")
}

// LoadAppConfig reads config from path. If the file does not exist it
// returns DefaultAppConfig with no error, matching the teacher's
// load-or-default behavior.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return AppConfig{}, errors.Wrap(err, "read config")
	}
	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return AppConfig{}, errors.Wrap(err, "unmarshal config")
	}
	return config, nil
}
