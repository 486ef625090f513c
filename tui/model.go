// ABOUTME: Terminal UI model and core state management
// ABOUTME: Bubble Tea model hosting one scroll widget over a content file

// Package tui provides an interactive terminal host for the scroll widget.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"easyscroll/config"
	"easyscroll/scrollsync"
)

// Layout constants for UI dimensions
const (
	// UI chrome heights (elements that reduce available container space)
	titleHeight     = 1 // Title and parameter bar
	spacingHeight   = 1 // Blank row above the container
	statusBarHeight = 1 // Bottom status bar
	helpHeight      = 1 // Help text line
	totalUIChrome   = titleHeight + spacingHeight + statusBarHeight + helpHeight

	containerTop     = titleHeight + spacingHeight
	defaultTopOffset = totalUIChrome

	indicatorGap   = 1 // Columns between content and indicator
	indicatorWidth = 1
)

// Interaction constants
const (
	statusMessageDuration = 5 * time.Second // How long to show transient status messages
)

// screen is the terminal size shared between model copies.
// The document reads its height whenever a widget resizes.
type screen struct {
	width  int
	height int
}

// model holds the TUI state
type model struct {
	// Dependencies
	sharedConfig  ConfigProvider
	contentLoader ContentLoader
	configStore   ConfigStore
	logger        Logger

	// Configuration
	mode        scrollsync.Mode
	tuning      *tuning // Values params point to (pointer so addresses stay valid)
	paramMgr    *ParamManager
	configPath  string
	configDirty bool // Parameters changed since the config was loaded

	// Widget
	doc       *scrollsync.Document
	widget    *scrollsync.Widget
	container *viewportContainer
	scheduler *tickScheduler
	screen    *screen

	// Pointer state
	hovering bool    // Pointer is over the container or indicator
	dragGrab float64 // Slider row grabbed when the drag started

	// File I/O
	contentPath string
	touch       bool
	debugLog    bool
	watcher     *fsnotify.Watcher

	// UI state
	width        int
	height       int
	quitting     bool
	statusMsg    string    // Temporary status message (e.g., "Config reloaded")
	statusMsgAge time.Time // When status message was set
	help         help.Model
}

// Key bindings
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Left      key.Binding
	Right     key.Binding
	ParamUp   key.Binding
	ParamDown key.Binding
	Mode      key.Binding
	Refresh   key.Binding
	Reset     key.Binding
	Quit      key.Binding
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.ParamDown, k.Left, k.Right, k.Mode, k.Refresh, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.ParamUp, k.ParamDown, k.Left, k.Right, k.Reset},
		{k.Mode, k.Refresh, k.Quit},
	}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home/g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end/G", "bottom"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "decrease param"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "increase param"),
	),
	ParamUp: key.NewBinding(
		key.WithKeys("shift+up"),
		key.WithHelp("shift+↑", "prev param"),
	),
	ParamDown: key.NewBinding(
		key.WithKeys("shift+down"),
		key.WithHelp("shift+↓", "next param"),
	),
	Mode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "cycle mode"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Reset: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reset params"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	paramStyle = lipgloss.NewStyle().
			Padding(0, 1)

	selectedParamStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("240")).
				Foreground(lipgloss.Color("15")).
				Bold(true).
				Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	trackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	sliderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	draggingSliderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15"))
)

// Run starts the TUI mode with injected dependencies
func Run(opts Options, deps Dependencies) error {
	lines, err := deps.ContentLoader.Load(opts.ContentPath)
	if err != nil {
		return err
	}

	m := initModel(lines, opts, deps)

	if opts.Watch {
		watcher, err := newWatcher(opts.ContentPath, opts.ConfigPath, m.logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := watcher.Close(); err != nil {
				m.logger.Debugf("[WATCHER] Close failed: %v", err)
			}
		}()

		m.watcher = watcher
	}

	// All-motion tracking is needed for hover mode
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// initModel creates the initial model with injected dependencies
func initModel(lines []string, opts Options, deps Dependencies) model {
	logger := deps.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	mode, t := tuningFromConfig(deps.ConfigProvider.Get())

	// Allocate tuning on heap so parameter pointers remain valid
	localTuning := &t

	scr := &screen{}
	sched := &tickScheduler{}

	doc := scrollsync.NewDocument(
		scrollsync.Environment{
			Viewport: scrollsync.ViewportFunc(func() float64 { return float64(scr.height) }),
			Touch:    opts.Touch,
		},
		scrollsync.WithScheduler(sched),
		scrollsync.WithLogger(logger),
	)

	container := newViewportContainer(containerTop)
	container.setLines(lines)

	m := model{
		// Injected dependencies
		sharedConfig:  deps.ConfigProvider,
		contentLoader: deps.ContentLoader,
		configStore:   deps.ConfigStore,
		logger:        logger,

		// Configuration
		mode:       mode,
		tuning:     localTuning,
		paramMgr:   NewParamManager(newTuningParams(localTuning)),
		configPath: opts.ConfigPath,

		// Widget
		doc:       doc,
		container: container,
		scheduler: sched,
		screen:    scr,

		// File I/O
		contentPath: opts.ContentPath,
		touch:       opts.Touch,
		debugLog:    opts.DebugLog,

		help: help.New(),
	}

	m.attach()

	return m
}

// Init initializes the model
func (m model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	return waitForFileChange(m.watcher, m.logger)
}

// attach (re)initializes the widget on the container from the shared config
func (m *model) attach() {
	m.widget = m.doc.Attach(m.container, m.sharedConfig.Get().Options())
	m.dragGrab = 0

	// The new widget has not seen the pointer yet
	if m.hovering {
		m.widget.PointerEnter()
	}
}

// applyTuning publishes the edited options and re-attaches the widget
func (m *model) applyTuning() {
	cfg := m.tuning.toConfig(m.mode)
	m.sharedConfig.Update(cfg)
	m.configDirty = true
	m.attach()

	m.logger.Debugf("[TUI] Options changed: mode=%s speed=%d height=%d top_offset=%d",
		m.mode, m.tuning.Speed, m.tuning.Height, m.tuning.TopOffset)
}

// increaseSelectedParam increases the selected parameter and re-attaches
func (m *model) increaseSelectedParam() {
	if m.paramMgr.Increase() {
		m.applyTuning()
	}
}

// decreaseSelectedParam decreases the selected parameter and re-attaches
func (m *model) decreaseSelectedParam() {
	if m.paramMgr.Decrease() {
		m.applyTuning()
	}
}

// resetToDefaults resets all parameters and the mode to their default values
func (m *model) resetToDefaults() {
	mode, defaults := tuningFromConfig(config.DefaultConfig())
	m.mode = mode
	m.paramMgr.ResetToDefaults(defaults)
	m.applyTuning()
	m.setStatusMsg("Parameters reset to defaults")
}

// cycleMode switches to the next visibility mode
func (m *model) cycleMode() {
	m.mode = m.mode.Next()
	m.applyTuning()
	m.setStatusMsg("Mode: " + m.mode.String())
}

// applyConfig replaces the options with a freshly loaded config
func (m *model) applyConfig(cfg config.Config) {
	m.sharedConfig.Update(cfg)
	m.mode, *m.tuning = tuningFromConfig(cfg)
	m.configDirty = false
	m.attach()
}

// setStatusMsg sets a temporary status message
func (m *model) setStatusMsg(msg string) {
	m.statusMsg = msg
	m.statusMsgAge = time.Now()
}

// contentWidth returns the columns left for content beside the indicator
func contentWidth(width int) int {
	w := width - indicatorGap - indicatorWidth
	if w < 1 {
		w = 1
	}

	return w
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
