// ABOUTME: File watching for live content and config reloads
// ABOUTME: Wraps fsnotify events and background loads as Bubble Tea commands

package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"easyscroll/config"
)

// fileChangeMsg reports a write to a watched file
type fileChangeMsg struct {
	path string
}

// contentLoadedMsg carries reloaded content
type contentLoadedMsg struct {
	lines []string
	err   error
}

// configLoadedMsg carries a reloaded config
type configLoadedMsg struct {
	cfg config.Config
	err error
}

// newWatcher watches the directories holding the content and config files.
// Directories are watched so editors that replace files on save are still seen.
// A config directory that cannot be watched is logged and skipped.
func newWatcher(contentPath, configPath string, logger Logger) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	contentDir := filepath.Dir(contentPath)
	if err := watcher.Add(contentDir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch content file: %w", err)
	}

	if configPath != "" {
		if configDir := filepath.Dir(configPath); configDir != contentDir {
			if err := watcher.Add(configDir); err != nil {
				logger.Debugf("[WATCHER] Not watching config %s: %v", configPath, err)
			}
		}
	}

	return watcher, nil
}

// waitForFileChange returns a command that waits for file system events
func waitForFileChange(watcher *fsnotify.Watcher, logger Logger) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				// Only react to writes and replacements
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					return fileChangeMsg{path: filepath.Clean(event.Name)}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				// Log error but continue watching
				logger.Debugf("[WATCHER] Error: %v", err)
			}
		}
	}
}

// loadContent reads the content file in the background
func loadContent(loader ContentLoader, path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := loader.Load(path)
		return contentLoadedMsg{lines: lines, err: err}
	}
}

// loadConfig reads the config file in the background
func loadConfig(store ConfigStore, path string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := store.Load(path)
		return configLoadedMsg{cfg: cfg, err: err}
	}
}
