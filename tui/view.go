// ABOUTME: Rendering and display functions for the TUI
// ABOUTME: Implements the Bubble Tea View() function

package tui

import (
	"runtime/debug"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI
func (m model) View() string {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Debugf("[PANIC] View panic: %v", r)
			m.logger.Debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	if m.quitting {
		return "Saving config and exiting...\n"
	}

	// Content and indicator side by side, indicator aligned with the container top
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.container.view.View(),
		m.renderIndicator(),
	)

	return m.renderTitle() + "\n\n" + body + "\n" + m.renderStatus() + "\n" + m.renderHelp()
}
