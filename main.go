// ABOUTME: Entry point for the easyscroll application
// ABOUTME: Handles command-line parsing, profiling, config overrides and starting the TUI

// Package main provides the entry point for easyscroll, a terminal pager with a custom scrollbar.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"easyscroll/config"
	"easyscroll/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	showBar := flag.String("show-bar", "", "scrollbar mode: default, always, hover or none (overrides config)")
	speed := flag.String("speed", "", "rows scrolled per wheel tick (overrides config)")
	height := flag.String("height", "", "container rows or fill-viewport (overrides config)")
	topOffset := flag.String("top-offset", "", "rows reserved when filling the terminal (overrides config)")
	touch := flag.Bool("touch", false, "treat the terminal as touch-capable and scroll natively")
	watch := flag.Bool("watch", true, "reload the file and config when they change")
	debug := flag.Bool("debug", false, "enable debug logging to "+debugLogFile)
	configPath := flag.String("config", "", "config file (default ./easyscroll.toml or ~/.config/easyscroll/config.toml)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: easyscroll [flags] <file>")
		fmt.Println("Example: easyscroll -show-bar hover -speed 5 README.md")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()

		return 1
	}

	if *cpuprofile != "" {
		stopCPUProfile := setupCPUProfile(*cpuprofile)
		defer stopCPUProfile()
	}

	if *memprofile != "" {
		defer writeMemoryProfile(*memprofile)
	}

	if *debug {
		if err := SetupDebugLog(debugLogFile); err != nil {
			log.Printf("Failed to setup debug log: %v", err)

			return 1
		}

		defer func() {
			_ = debugLog.Sync()
		}()
	}

	opts := RunOptions{
		ContentPath: args[0],
		ConfigPath:  *configPath,
		ShowBar:     *showBar,
		Speed:       *speed,
		Height:      *height,
		TopOffset:   *topOffset,
		Touch:       *touch,
		Watch:       *watch,
		DebugLog:    *debug,
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.GetConfigPath()
	}

	if err := RunTUI(opts); err != nil {
		log.Printf("TUI error: %v", err)

		return 1
	}

	return 0
}

// RunTUI loads the config and runs the interactive pager
func RunTUI(opts RunOptions) error {
	sharedCfg := &config.SharedConfig{}
	sharedCfg.Update(LoadRunConfig(opts))

	debugf("[MAIN] Starting on %s with config %s", opts.ContentPath, opts.ConfigPath)

	return tui.Run(
		tui.Options{
			ContentPath: opts.ContentPath,
			ConfigPath:  opts.ConfigPath,
			Touch:       opts.Touch,
			Watch:       opts.Watch,
			DebugLog:    opts.DebugLog,
		},
		tui.Dependencies{
			ConfigProvider: sharedCfg,
			ContentLoader:  contentLoaderAdapter{},
			ConfigStore:    configStoreAdapter{},
			Logger:         loggerAdapter{},
		},
	)
}

// setupCPUProfile starts CPU profiling, returns cleanup function
func setupCPUProfile(filename string) func() {
	f, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not create CPU profile: %v", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		log.Fatalf("could not start CPU profile: %v", err)
	}

	return func() {
		pprof.StopCPUProfile()

		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close CPU profile: %v", err)
		}
	}
}

// writeMemoryProfile writes memory profile to file
func writeMemoryProfile(filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("could not create memory profile: %v", err)

		return
	}

	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close memory profile: %v", err)
		}
	}()

	runtime.GC()

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("could not write memory profile: %v", err)
	}
}
