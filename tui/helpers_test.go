// ABOUTME: Test doubles and helpers shared by the TUI tests
// ABOUTME: Mock loaders, a recording config store and message plumbing

package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"easyscroll/config"
)

// mockContentLoader returns fixed lines
type mockContentLoader struct {
	lines []string
	err   error
}

func (l *mockContentLoader) Load(_ string) ([]string, error) {
	return l.lines, l.err
}

// mockConfigStore records saves and returns a fixed config on load
type mockConfigStore struct {
	cfg   config.Config
	err   error
	saved []config.Config
}

func (s *mockConfigStore) Load(_ string) (config.Config, error) {
	return s.cfg, s.err
}

func (s *mockConfigStore) Save(_ string, cfg config.Config) error {
	s.saved = append(s.saved, cfg)
	return nil
}

// createTestLines creates numbered content lines
func createTestLines(count int) []string {
	lines := make([]string, count)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}

	return lines
}

// createTestModel creates a model with mock dependencies, sized to 80x24
func createTestModel(t *testing.T, lines []string, cfg config.Config) (model, *mockConfigStore) {
	t.Helper()

	sharedCfg := &config.SharedConfig{}
	sharedCfg.Update(cfg)

	store := &mockConfigStore{cfg: cfg}

	opts := Options{
		ContentPath: "test.txt",
		ConfigPath:  "/tmp/test_config.toml",
	}
	deps := Dependencies{
		ConfigProvider: sharedCfg,
		ContentLoader:  &mockContentLoader{lines: lines},
		ConfigStore:    store,
	}

	m := initModel(lines, opts, deps)
	m, _ = sendMsg(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	return m, store
}

// sendMsg runs one Update and returns the concrete model
func sendMsg(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()

	updated, cmd := m.Update(msg)

	next, ok := updated.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", updated)
	}

	return next, cmd
}

// collectMsgs executes a command, flattening batches
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collectMsgs(c)...)
		}

		return msgs
	}

	if msg == nil {
		return nil
	}

	return []tea.Msg{msg}
}

// keyPress builds a rune key message
func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// mouseAt builds a mouse message at a screen cell
func mouseAt(x, y int, button tea.MouseButton, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: button, Action: action}
}

// configWith returns the default config with a different mode
func configWith(showBar string) config.Config {
	cfg := config.DefaultConfig()
	cfg.ShowBar = showBar

	return cfg
}
