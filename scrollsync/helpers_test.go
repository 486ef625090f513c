// ABOUTME: Test doubles for scrollsync: a clamping container and a manual scheduler
// ABOUTME: Shared by widget, document and property tests

package scrollsync

import "time"

// fakeContainer clamps its offset like a native scrolling element
type fakeContainer struct {
	id      string
	content float64
	visible float64
	offset  float64
	top     float64
	native  bool
}

func newFakeContainer(id string, content float64) *fakeContainer {
	return &fakeContainer{id: id, content: content}
}

func (c *fakeContainer) ID() string             { return c.id }
func (c *fakeContainer) ContentLength() float64 { return c.content }
func (c *fakeContainer) ScrollOffset() float64  { return c.offset }
func (c *fakeContainer) Top() float64           { return c.top }
func (c *fakeContainer) SetNativeScroll(n bool) { c.native = n }

func (c *fakeContainer) SetVisibleLength(l float64) {
	c.visible = l
	c.SetScrollOffset(c.offset)
}

func (c *fakeContainer) SetScrollOffset(o float64) {
	limit := c.content - c.visible
	if limit < 0 {
		limit = 0
	}

	switch {
	case o < 0:
		c.offset = 0
	case o > limit:
		c.offset = limit
	default:
		c.offset = o
	}
}

// manualScheduler queues callbacks until the test fires them
type manualScheduler struct {
	pending []func()
	delays  []time.Duration
}

func (s *manualScheduler) Schedule(delay time.Duration, fire func()) {
	s.pending = append(s.pending, fire)
	s.delays = append(s.delays, delay)
}

// fireAll runs every queued callback in scheduling order
func (s *manualScheduler) fireAll() {
	pending := s.pending
	s.pending = nil

	for _, fire := range pending {
		fire()
	}
}

// recordingLogger keeps formatted messages for assertions
type recordingLogger struct {
	formats []string
}

func (l *recordingLogger) Debugf(format string, _ ...any) {
	l.formats = append(l.formats, format)
}

// newTestDocument builds a document with a fixed viewport and manual scheduler
func newTestDocument(viewport float64) (*Document, *manualScheduler) {
	sched := &manualScheduler{}
	doc := NewDocument(Environment{
		Viewport: ViewportFunc(func() float64 { return viewport }),
	}, WithScheduler(sched))

	return doc, sched
}
