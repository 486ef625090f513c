// ABOUTME: Shared initialization code for the easyscroll command
// ABOUTME: Provides debug logging, config loading and command-line overrides

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"easyscroll/config"
)

const debugLogFile = "easyscroll-debug.log"

var debugLog = zap.NewNop().Sugar()

// RunOptions contains command-line options
type RunOptions struct {
	ContentPath string
	ConfigPath  string
	ShowBar     string // Empty keeps the config file value
	Speed       string
	Height      string
	TopOffset   string
	Touch       bool
	Watch       bool
	DebugLog    bool
}

// SetupDebugLog initializes debug logging
func SetupDebugLog(filename string) error {
	if err := InitDebugLog(filename); err != nil {
		return fmt.Errorf("failed to initialize debug log: %w", err)
	}

	if filename == debugLogFile {
		if isTerminal(os.Stdout) {
			fmt.Printf("Debug logging enabled: %s\n", filename)
		}
	}

	return nil
}

// isTerminal reports whether f is a character device; unreadable files are not
func isTerminal(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// InitDebugLog initializes debug logging to a file
func InitDebugLog(filename string) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{filename}
	cfg.ErrorOutputPaths = []string{filename}
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to create debug log file: %w", err)
	}

	debugLog = logger.Sugar()

	return nil
}

// debugf logs debug messages if enabled
func debugf(format string, args ...any) {
	debugLog.Debugf(format, args...)
}

// LoadRunConfig loads the config file and applies command-line overrides.
// A broken config file is logged and replaced by defaults.
func LoadRunConfig(opts RunOptions) config.Config {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		debugf("[CONFIG] Using defaults: %v", err)
	}

	return applyOverrides(cfg, opts)
}

// applyOverrides replaces config values with the flags that were given
func applyOverrides(cfg config.Config, opts RunOptions) config.Config {
	if opts.ShowBar != "" {
		cfg.ShowBar = opts.ShowBar
	}

	if opts.Speed != "" {
		cfg.Speed = flagValue(opts.Speed)
	}

	if opts.Height != "" {
		cfg.Height = flagValue(opts.Height)
	}

	if opts.TopOffset != "" {
		cfg.TopOffset = flagValue(opts.TopOffset)
	}

	return cfg
}

// flagValue keeps integers numeric so they save back as TOML numbers
func flagValue(s string) config.Value {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return config.Int(n)
	}

	return config.String(s)
}
