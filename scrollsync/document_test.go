// ABOUTME: Tests for the document registry
// ABOUTME: Re-attachment teardown, command dispatch and refresh on unknown targets

package scrollsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReattachReplacesPreviousWidget(t *testing.T) {
	doc, sched := newTestDocument(800)
	c := newFakeContainer("content", 1000)

	first := doc.Attach(c, Options{Height: 200})
	firstIndicator, ok := doc.Indicator("content")
	require.True(t, ok)
	require.True(t, firstIndicator.Visible)

	first.Refresh()

	second := doc.Attach(c, Options{Height: 100, ShowBar: "hover"})

	assert.False(t, first.Attached())
	assert.True(t, second.Attached())
	assert.False(t, firstIndicator.Visible, "stale indicator removed")

	current, ok := doc.Widget("content")
	require.True(t, ok)
	assert.Same(t, second, current)

	ind, ok := doc.Indicator("content")
	require.True(t, ok)
	assert.NotSame(t, firstIndicator, ind)
	assert.InDelta(t, 100.0, ind.Length, 1e-9)

	// Handlers of the old instance are unbound
	assert.False(t, first.Wheel(1))
	assert.False(t, first.DragStart())
	assert.Zero(t, c.offset)

	// A refresh scheduled by the old instance is dropped
	c.content = 5000
	sched.fireAll()
	assert.InDelta(t, 10.0, second.Geometry().Ratio, 1e-9)
}

func TestInvokeRefreshOnUnknownTargetIsNoop(t *testing.T) {
	doc, sched := newTestDocument(800)

	assert.False(t, doc.Invoke("missing", CommandRefresh))
	assert.False(t, doc.Refresh("missing"))
	assert.Empty(t, sched.pending)
}

func TestInvokeUnknownCommandIsIgnored(t *testing.T) {
	doc, sched := newTestDocument(800)
	doc.Attach(newFakeContainer("c", 1000), Options{Height: 200})

	assert.False(t, doc.Invoke("c", Command("destroy")))
	assert.Empty(t, sched.pending)
}

func TestInvokeRefreshSchedules(t *testing.T) {
	doc, sched := newTestDocument(800)
	c := newFakeContainer("c", 1000)
	w := doc.Attach(c, Options{Height: 200})

	require.True(t, doc.Invoke("c", CommandRefresh))
	require.Len(t, sched.pending, 1)

	c.content = 400
	sched.fireAll()

	assert.InDelta(t, 2.0, w.Geometry().Ratio, 1e-9)
}

func TestDetach(t *testing.T) {
	doc, sched := newTestDocument(800)
	c := newFakeContainer("c", 1000)
	w := doc.Attach(c, Options{Height: 200})

	doc.Detach("c")

	assert.False(t, w.Attached())
	_, ok := doc.Widget("c")
	assert.False(t, ok)
	assert.False(t, doc.Refresh("c"))

	w.Refresh()
	assert.Empty(t, sched.pending)

	doc.Detach("c")
}

func TestDocumentResizeUpdatesAllWidgets(t *testing.T) {
	viewport := 400.0
	doc := NewDocument(Environment{Viewport: ViewportFunc(func() float64 { return viewport })})

	a := doc.Attach(newFakeContainer("a", 1000), Options{Height: FillViewportMarker})
	b := doc.Attach(newFakeContainer("b", 1000), Options{Height: FillViewportMarker, TopOffset: 200})

	viewport = 600
	doc.Resize()

	assert.InDelta(t, 600.0, a.Geometry().Visible, 1e-9)
	assert.InDelta(t, 400.0, b.Geometry().Visible, 1e-9)
}

func TestIndicatorAlignsWithContainerTop(t *testing.T) {
	doc, _ := newTestDocument(800)
	c := newFakeContainer("c", 1000)
	c.top = 3

	w := doc.Attach(c, Options{Height: 200})

	assert.InDelta(t, 3.0, w.Indicator().Top, 1e-9)
}
