// ABOUTME: Configuration management for scroll widget options
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"

	"easyscroll/scrollsync"
)

// Config holds the widget options as written in the config file.
// Values stay loose here; scrollsync normalizes them and falls back to defaults.
type Config struct {
	ShowBar   string `toml:"show_bar"`   // default, always, hover or none
	Speed     Value  `toml:"speed"`      // Rows per wheel tick
	Height    Value  `toml:"height"`     // Rows, or "fill-viewport"
	TopOffset Value  `toml:"top_offset"` // Rows reserved above a fill-viewport container
}

// Value is a loosely typed config value: a number or a string
type Value struct {
	raw any
}

// Int wraps an integer value
func Int(n int) Value {
	return Value{raw: int64(n)}
}

// String wraps a string value
func String(s string) Value {
	return Value{raw: s}
}

// Raw returns the decoded value, nil when unset
func (v Value) Raw() any {
	return v.raw
}

// IsSet reports whether the value was present
func (v Value) IsSet() bool {
	return v.raw != nil
}

// UnmarshalTOML keeps whatever scalar the file contained
func (v *Value) UnmarshalTOML(data any) error {
	switch data.(type) {
	case int64, float64, string:
		v.raw = data
		return nil
	}

	return fmt.Errorf("unsupported value %v (%T)", data, data)
}

// MarshalTOML writes the value back as a TOML scalar
func (v Value) MarshalTOML() ([]byte, error) {
	switch raw := v.raw.(type) {
	case int64:
		return []byte(strconv.FormatInt(raw, 10)), nil
	case float64:
		return []byte(strconv.FormatFloat(raw, 'f', -1, 64)), nil
	case string:
		return []byte(strconv.Quote(raw)), nil
	case nil:
		return []byte(`""`), nil
	}

	return nil, fmt.Errorf("unsupported value %v (%T)", v.raw, v.raw)
}

// Options converts the file values to widget options
func (c Config) Options() scrollsync.Options {
	return scrollsync.Options{
		ShowBar:   c.ShowBar,
		Speed:     c.Speed.Raw(),
		Height:    c.Height.Raw(),
		TopOffset: c.TopOffset.Raw(),
	}
}

// GetConfigPath returns the default config file path
// First tries current directory, then falls back to ~/.config/easyscroll/config.toml
func GetConfigPath() string {
	// First try current directory
	if _, err := os.Stat("./easyscroll.toml"); err == nil {
		return "./easyscroll.toml"
	}

	// Then try ~/.config/easyscroll/config.toml
	home, err := os.UserHomeDir()
	if err != nil {
		return "./easyscroll.toml"
	}

	return filepath.Join(home, ".config", "easyscroll", "config.toml")
}

// LoadConfig loads configuration from a TOML file
// If the file doesn't exist or fails to load, returns default config
func LoadConfig(path string) (Config, error) {
	// Try to read the file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so missing keys keep their default value
	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves configuration to a TOML file
func SaveConfig(path string, config Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	// Encode config as TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultConfig returns the default terminal configuration.
// The container fills the terminal minus the title, status and help rows; speed is in rows.
func DefaultConfig() Config {
	return Config{
		ShowBar:   scrollsync.DefaultMode.String(),
		Speed:     Int(3),
		Height:    String(scrollsync.FillViewportMarker),
		TopOffset: Int(4),
	}
}

// SharedConfig provides thread-safe access to the current configuration
type SharedConfig struct {
	mu     sync.RWMutex
	config Config
}

// Get returns a copy of the current config (thread-safe read)
func (sc *SharedConfig) Get() Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config
}

// Update updates the config (thread-safe write)
func (sc *SharedConfig) Update(config Config) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.config = config
}
