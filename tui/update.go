// ABOUTME: Event handling and state updates for the TUI
// ABOUTME: Routes resize, mouse, key, refresh and file watcher messages to the widget

package tui

import (
	"path/filepath"
	"runtime/debug"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"easyscroll/scrollsync"
)

// Update handles messages and updates the model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Debugf("[PANIC] Update panic: %v", r)
			m.logger.Debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	cmd := m.update(msg)

	// Refreshes scheduled while handling msg become ticks
	return m, tea.Batch(cmd, m.scheduler.drain())
}

// update dispatches a message to its handler
func (m *model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case refreshMsg:
		msg.fire()
		return nil

	case fileChangeMsg:
		return m.handleFileChange(msg)

	case contentLoadedMsg:
		m.handleContentLoaded(msg)
		return nil

	case configLoadedMsg:
		m.handleConfigLoaded(msg)
		return nil
	}

	return nil
}

// handleResize resizes the container and resets the widget to the origin
func (m *model) handleResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.width = msg.Width
	m.screen.height = msg.Height

	m.help.Width = msg.Width
	m.container.setWidth(contentWidth(msg.Width))

	m.doc.Resize()

	g := m.widget.Geometry()
	m.logger.Debugf("[TUI] Resized to %dx%d: visible=%.0f content=%.0f ratio=%.3f",
		msg.Width, msg.Height, g.Visible, g.Content, g.Ratio)
}

// handleMouse routes pointer input to the widget
func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	m.trackHover(msg.X, msg.Y)

	if m.widget.Native() {
		var cmd tea.Cmd
		m.container.view, cmd = m.container.view.Update(msg)
		return cmd
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		if m.inContainer(msg.X, msg.Y) {
			m.widget.Wheel(-1)
		}

	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		if m.inContainer(msg.X, msg.Y) {
			m.widget.Wheel(1)
		}

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.handlePress(msg.X, msg.Y)

	case msg.Action == tea.MouseActionMotion && m.widget.Dragging():
		m.widget.DragTo(m.trackRow(msg.Y) - m.dragGrab)

	case msg.Action == tea.MouseActionRelease && m.widget.Dragging():
		m.widget.DragStop()
		m.logger.Debugf("[TUI] Drag stopped at offset %.0f", m.container.ScrollOffset())
	}

	return nil
}

// handlePress starts a drag when the press lands on the slider
func (m *model) handlePress(x, y int) {
	ind := m.widget.Indicator()
	if !ind.Visible || !m.inIndicator(x, y) {
		return
	}

	start, end := sliderSpan(ind)
	row := y - int(ind.Top)
	if row < start || row >= end {
		return
	}

	m.dragGrab = float64(row) - ind.Slider.Position
	m.widget.DragStart()
}

// trackHover turns pointer motion into enter and leave events
func (m *model) trackHover(x, y int) {
	inside := m.inContainer(x, y) || m.inIndicator(x, y)
	if inside == m.hovering {
		return
	}

	m.hovering = inside
	if inside {
		m.widget.PointerEnter()
	} else {
		m.widget.PointerLeave()
	}
}

// trackRow converts a screen row to a position along the indicator track
func (m *model) trackRow(y int) float64 {
	return float64(y) - m.widget.Indicator().Top
}

// inRows reports whether a screen row falls inside the container rows
func (m *model) inRows(y int) bool {
	return y >= m.container.top && y < m.container.top+m.container.visibleRows()
}

// inContainer reports whether a cell is inside the content region
func (m *model) inContainer(x, y int) bool {
	return x >= 0 && x < contentWidth(m.width) && m.inRows(y)
}

// inIndicator reports whether a cell is on the indicator column
func (m *model) inIndicator(x, y int) bool {
	return x == contentWidth(m.width)+indicatorGap && m.inRows(y)
}

// handleKey handles a key press
func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		return m.handleQuitKey()

	case key.Matches(msg, keys.ParamUp):
		m.paramMgr.SelectPrevious()

	case key.Matches(msg, keys.ParamDown):
		m.paramMgr.SelectNext()

	case key.Matches(msg, keys.Left):
		m.decreaseSelectedParam()

	case key.Matches(msg, keys.Right):
		m.increaseSelectedParam()

	case key.Matches(msg, keys.Mode):
		m.cycleMode()

	case key.Matches(msg, keys.Reset):
		m.resetToDefaults()

	case key.Matches(msg, keys.Refresh):
		m.handleRefreshKey()

	default:
		return m.handleScrollKey(msg)
	}

	return nil
}

// handleScrollKey scrolls the content from the keyboard
func (m *model) handleScrollKey(msg tea.KeyMsg) tea.Cmd {
	if m.widget.Native() {
		return m.handleNativeScrollKey(msg)
	}

	g := m.widget.Geometry()
	offset := m.container.ScrollOffset()

	switch {
	case key.Matches(msg, keys.Up):
		m.widget.Wheel(-1)

	case key.Matches(msg, keys.Down):
		m.widget.Wheel(1)

	case key.Matches(msg, keys.PageUp):
		m.widget.ScrollTo(offset - g.Visible)

	case key.Matches(msg, keys.PageDown):
		m.widget.ScrollTo(offset + g.Visible)

	case key.Matches(msg, keys.Home):
		m.widget.ScrollTo(0)

	case key.Matches(msg, keys.End):
		m.widget.ScrollTo(g.MaxScrollOffset())
	}

	return nil
}

// handleNativeScrollKey leaves scrolling to the viewport
func (m *model) handleNativeScrollKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Home):
		m.container.view.GotoTop()
		return nil

	case key.Matches(msg, keys.End):
		m.container.view.GotoBottom()
		return nil
	}

	var cmd tea.Cmd
	m.container.view, cmd = m.container.view.Update(msg)

	return cmd
}

// handleRefreshKey schedules a geometry recompute
func (m *model) handleRefreshKey() {
	if m.doc.Invoke(m.container.ID(), scrollsync.CommandRefresh) {
		m.setStatusMsg("Refreshing...")
	}
}

// handleQuitKey handles the quit key press
func (m *model) handleQuitKey() tea.Cmd {
	m.quitting = true

	// Save edited options on quit
	if m.configDirty && m.configPath != "" {
		if err := m.configStore.Save(m.configPath, m.sharedConfig.Get()); err != nil {
			m.logger.Debugf("[TUI] Failed to save config on quit: %v", err)
			// Continue anyway - don't block quit on config save failure
		}
	}

	return tea.Quit
}

// handleFileChange reloads whichever watched file changed
func (m *model) handleFileChange(msg fileChangeMsg) tea.Cmd {
	var cmds []tea.Cmd
	if m.watcher != nil {
		cmds = append(cmds, waitForFileChange(m.watcher, m.logger))
	}

	switch msg.path {
	case filepath.Clean(m.contentPath):
		m.logger.Debugf("[WATCHER] Content changed: %s", msg.path)
		cmds = append(cmds, loadContent(m.contentLoader, m.contentPath))

	case filepath.Clean(m.configPath):
		m.logger.Debugf("[WATCHER] Config changed: %s", msg.path)
		cmds = append(cmds, loadConfig(m.configStore, m.configPath))
	}

	return tea.Batch(cmds...)
}

// handleContentLoaded swaps in reloaded content and schedules a refresh
func (m *model) handleContentLoaded(msg contentLoadedMsg) {
	if msg.err != nil {
		m.logger.Debugf("[TUI] Content reload failed: %v", msg.err)
		m.setStatusMsg("Reload failed: " + msg.err.Error())
		return
	}

	m.container.setLines(msg.lines)
	m.doc.Refresh(m.container.ID())
	m.setStatusMsg("Content reloaded")
}

// handleConfigLoaded re-attaches the widget with reloaded options
func (m *model) handleConfigLoaded(msg configLoadedMsg) {
	if msg.err != nil {
		m.logger.Debugf("[TUI] Config reload failed: %v", msg.err)
		m.setStatusMsg("Config reload failed: " + msg.err.Error())
		return
	}

	m.applyConfig(msg.cfg)
	m.setStatusMsg("Config reloaded")
}
