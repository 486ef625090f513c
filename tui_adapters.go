// ABOUTME: Adapter implementations for TUI interfaces
// ABOUTME: Bridges main package implementations to TUI interface contracts

package main

import (
	"easyscroll/config"
	"easyscroll/content"
)

// contentLoaderAdapter adapts content.ReadFile to tui.ContentLoader interface
type contentLoaderAdapter struct{}

func (contentLoaderAdapter) Load(path string) ([]string, error) {
	return content.ReadFile(path)
}

// configStoreAdapter adapts the config package to tui.ConfigStore interface
type configStoreAdapter struct{}

func (configStoreAdapter) Load(path string) (config.Config, error) {
	return config.LoadConfig(path)
}

func (configStoreAdapter) Save(path string, cfg config.Config) error {
	return config.SaveConfig(path, cfg)
}

// loggerAdapter adapts debugf to tui.Logger interface
type loggerAdapter struct{}

func (loggerAdapter) Debugf(format string, args ...any) {
	debugf(format, args...)
}
