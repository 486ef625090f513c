// ABOUTME: Rendering functions for TUI components
// ABOUTME: Draws the indicator column, parameter bar, status bar and help line

package tui

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"easyscroll/scrollsync"
)

const (
	trackChar  = "│"
	sliderChar = "┃"
)

// renderTitle renders the file name and the parameter bar
func (m model) renderTitle() string {
	s := titleStyle.Render("easyscroll " + filepath.Base(m.contentPath))

	for i, param := range m.paramMgr.All() {
		line := fmt.Sprintf("%s %s", param.Name, param.Display())

		if i == m.paramMgr.Selected() {
			s += selectedParamStyle.Render(line)
		} else {
			s += paramStyle.Render(line)
		}
	}

	return s
}

// renderIndicator renders the indicator column beside the container
func (m model) renderIndicator() string {
	rows := m.container.visibleRows()
	if rows <= 0 {
		return ""
	}

	gap := strings.Repeat(" ", indicatorGap)
	blank := gap + strings.Repeat(" ", indicatorWidth)

	ind := m.widget.Indicator()
	if m.widget.Native() || !ind.Visible {
		return strings.TrimSuffix(strings.Repeat(blank+"\n", rows), "\n")
	}

	style := sliderStyle
	if m.widget.Dragging() {
		style = draggingSliderStyle
	}

	start, end := sliderSpan(ind)
	lines := make([]string, rows)
	for row := range lines {
		if row >= start && row < end {
			lines[row] = gap + style.Render(sliderChar)
		} else {
			lines[row] = gap + trackStyle.Render(trackChar)
		}
	}

	return strings.Join(lines, "\n")
}

// sliderSpan returns the track rows [start, end) covered by the slider.
// The slider is at least one row and never leaves the track.
func sliderSpan(ind scrollsync.Indicator) (int, int) {
	track := int(math.Round(ind.Length))
	length := int(math.Round(ind.Slider.Length))
	if length < 1 {
		length = 1
	}
	if length > track {
		length = track
	}

	start := int(math.Round(ind.Slider.Position))
	if start < 0 {
		start = 0
	}
	if start+length > track {
		start = track - length
	}

	return start, start + length
}

// renderStatus renders the status bar
func (m model) renderStatus() string {
	// Show status message if recent
	if m.statusMsg != "" && time.Since(m.statusMsgAge) < statusMessageDuration {
		return statusStyle.Width(m.width).Render(m.statusMsg)
	}

	g := m.widget.Geometry()
	offset := int(m.container.ScrollOffset())
	total := m.container.view.TotalLineCount()

	first, last := 0, 0
	if total > 0 {
		first = offset + 1
		last = min(offset+m.container.visibleRows(), total)
	}

	scrolling := "custom"
	if m.widget.Native() {
		scrolling = "native"
	}

	status := fmt.Sprintf("Mode: %s (%s) | Lines %d-%d of %d | Ratio %.2f",
		m.mode, scrolling, first, last, total, g.Ratio)

	if m.widget.Dragging() {
		status += " | dragging"
	}
	if m.configDirty {
		status += " | modified"
	}
	if m.touch {
		status += " | touch"
	}
	if m.debugLog {
		status += " | debug"
	}

	return statusStyle.Width(m.width).Render(status)
}

// renderHelp renders the help text
func (m model) renderHelp() string {
	return m.help.View(keys)
}
