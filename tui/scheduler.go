// ABOUTME: Deferred refresh scheduling on the Bubble Tea event loop
// ABOUTME: Turns widget refresh callbacks into tea.Tick commands

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// refreshMsg carries a scheduled refresh back into Update
type refreshMsg struct {
	fire func()
}

// tickScheduler queues refresh callbacks as tea.Tick commands.
// Callbacks run inside Update, so widget state is only touched by the event loop.
type tickScheduler struct {
	pending []tea.Cmd
}

// Schedule implements scrollsync.Scheduler
func (s *tickScheduler) Schedule(delay time.Duration, fire func()) {
	s.pending = append(s.pending, tea.Tick(delay, func(time.Time) tea.Msg {
		return refreshMsg{fire: fire}
	}))
}

// drain returns the queued ticks as one command
func (s *tickScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}

	cmds := s.pending
	s.pending = nil

	return tea.Batch(cmds...)
}
