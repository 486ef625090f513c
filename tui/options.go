// ABOUTME: TUI mode configuration and command-line options
// ABOUTME: Defines input parameters for running the TUI

package tui

// Options contains configuration for running the TUI
type Options struct {
	ContentPath string // File shown in the scroll container
	ConfigPath  string // Config file, watched and saved on quit
	Touch       bool   // Treat the terminal as touch-capable (native scrolling)
	Watch       bool   // Reload content and config when the files change
	DebugLog    bool   // Enable debug logging to file
}

// Dependencies holds all external dependencies for the TUI
// This allows for clean dependency injection and easy testing
type Dependencies struct {
	ConfigProvider ConfigProvider
	ContentLoader  ContentLoader
	ConfigStore    ConfigStore
	Logger         Logger
}
