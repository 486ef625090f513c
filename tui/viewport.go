// ABOUTME: Scroll container backed by a bubbles viewport
// ABOUTME: Implements scrollsync.Container in terminal rows and clips lines to the container width

package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
)

const tabWidth = 4

// viewportContainer is the content region the widget scrolls.
// Offsets and lengths are whole rows; the viewport clamps offsets to its content.
type viewportContainer struct {
	id    string
	top   int // Screen row of the first content row
	width int
	lines []string
	view  viewport.Model
}

// newViewportContainer creates an empty container rendered at the given screen row
func newViewportContainer(top int) *viewportContainer {
	vp := viewport.New(0, 0) // Width and height set on first WindowSizeMsg
	vp.MouseWheelEnabled = false

	return &viewportContainer{
		id:   uuid.NewString(),
		top:  top,
		view: vp,
	}
}

func (c *viewportContainer) ID() string {
	return c.id
}

func (c *viewportContainer) ContentLength() float64 {
	return float64(c.view.TotalLineCount())
}

func (c *viewportContainer) ScrollOffset() float64 {
	return float64(c.view.YOffset)
}

func (c *viewportContainer) SetScrollOffset(offset float64) {
	c.view.SetYOffset(int(math.Round(offset)))
}

func (c *viewportContainer) SetVisibleLength(length float64) {
	c.view.Height = int(math.Round(length))
	c.view.SetYOffset(c.view.YOffset) // Re-clamp against the new height
}

func (c *viewportContainer) Top() float64 {
	return float64(c.top)
}

func (c *viewportContainer) SetNativeScroll(native bool) {
	c.view.MouseWheelEnabled = native
}

// native reports whether the viewport handles its own scrolling
func (c *viewportContainer) native() bool {
	return c.view.MouseWheelEnabled
}

// visibleRows returns the number of content rows on screen
func (c *viewportContainer) visibleRows() int {
	return c.view.Height
}

// setLines replaces the content without touching the scroll position
func (c *viewportContainer) setLines(lines []string) {
	c.lines = lines
	c.render()
}

// setWidth changes the container width and re-clips the content
func (c *viewportContainer) setWidth(width int) {
	if width < 1 {
		width = 1
	}

	c.width = width
	c.view.Width = width
	c.render()
}

// render pushes the clipped lines into the viewport.
// The viewport wraps long lines, which would change the content length, so every line is cut to width.
func (c *viewportContainer) render() {
	clipped := make([]string, len(c.lines))
	for i, line := range c.lines {
		clipped[i] = clipLine(line, c.width)
	}

	c.view.SetContent(strings.Join(clipped, "\n"))
}

// clipLine expands tabs and truncates a line to a display width
func clipLine(line string, width int) string {
	line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
	if width <= 0 {
		return line
	}

	return runewidth.Truncate(line, width, "…")
}
