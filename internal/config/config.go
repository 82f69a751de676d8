// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultDebounceMs = 0
	DefaultShowHelp   = true
)

// Config represents the readable configuration.
type Config struct {
	TUI       TUIConfig       `toml:"tui"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Storage   StorageConfig   `toml:"storage"`
}

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	ShowHelp bool `toml:"show_help"`
}

// ClipboardConfig holds clipboard settings (TUI paste).
type ClipboardConfig struct {
	PasteCommand string `toml:"paste_command"` // Auto-detected if empty
}

// StorageConfig holds durable storage settings.
type StorageConfig struct {
	// DebounceMs coalesces rapid preference writes within the window.
	// 0 writes through on every change.
	DebounceMs int `toml:"debounce_ms"`
	// Watch enables live rehydration when the records file changes
	// externally (e.g. readable set in another terminal).
	Watch bool `toml:"watch"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		TUI: TUIConfig{
			ShowHelp: DefaultShowHelp,
		},
		Clipboard: ClipboardConfig{
			PasteCommand: "", // Auto-detect
		},
		Storage: StorageConfig{
			DebounceMs: DefaultDebounceMs,
			Watch:      true,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "readable", "config.toml")
}

// DataPath returns the path to the data directory.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share.
func DataPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "readable")
}

// RecordsPath returns the path to the preference records file.
func RecordsPath() string {
	return filepath.Join(DataPath(), "prefs.jsonl")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Storage.DebounceMs < 0 {
		cfg.Storage.DebounceMs = 0
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	path := DataPath()
	if path == "" {
		return errors.New("unable to determine data directory")
	}
	return os.MkdirAll(path, 0700)
}
