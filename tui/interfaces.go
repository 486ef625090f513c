// ABOUTME: Interfaces defining dependencies for the TUI package
// ABOUTME: Allows clean separation and easy testing with mocks

package tui

import "easyscroll/config"

// ConfigProvider provides thread-safe access to the widget configuration
type ConfigProvider interface {
	Get() config.Config
	Update(cfg config.Config)
}

// ContentLoader reads the scrollable content from disk
type ContentLoader interface {
	Load(path string) ([]string, error)
}

// ConfigStore loads and saves the config file
type ConfigStore interface {
	Load(path string) (config.Config, error)
	Save(path string, cfg config.Config) error
}

// Logger provides debug logging capability
type Logger interface {
	Debugf(format string, args ...any)
}
