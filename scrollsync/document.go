// ABOUTME: Document registry attaching widgets to host containers
// ABOUTME: Keyed by container identity so re-attaching replaces the previous instance

// Package scrollsync keeps a content container, a custom scroll indicator and its
// slider in sync under wheel, drag and resize input.
package scrollsync

import "time"

// Container is the host-owned scrollable content region
type Container interface {
	ID() string             // Identity marker, stable for the container's lifetime
	ContentLength() float64 // Natural length of the full content
	ScrollOffset() float64
	SetScrollOffset(offset float64) // Host clamps to its native scroll bounds
	SetVisibleLength(length float64)
	Top() float64
	SetNativeScroll(native bool)
}

// Viewport reports the current host viewport height
type Viewport interface {
	Height() float64
}

// ViewportFunc adapts a function to the Viewport interface
type ViewportFunc func() float64

// Height calls f
func (f ViewportFunc) Height() float64 {
	return f()
}

// Logger provides debug logging capability
type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Command is a string command accepted by Document.Invoke
type Command string

// CommandRefresh re-runs the geometry after RefreshDelay
const CommandRefresh Command = "refresh"

// Environment describes host capabilities, captured once when the document is created
type Environment struct {
	Viewport Viewport
	Touch    bool // Touch hosts keep native scrolling
}

// Document owns every widget attached within one host
type Document struct {
	env       Environment
	scheduler Scheduler
	logger    Logger
	widgets   map[string]*Widget
}

// DocumentOption configures a Document
type DocumentOption func(*Document)

// WithScheduler sets the scheduler used for deferred refreshes.
// The default is a LoopScheduler drained through RunPending.
func WithScheduler(s Scheduler) DocumentOption {
	return func(d *Document) {
		d.scheduler = s
	}
}

// WithLogger sets the debug logger
func WithLogger(l Logger) DocumentOption {
	return func(d *Document) {
		d.logger = l
	}
}

// NewDocument creates a document for a host environment
func NewDocument(env Environment, opts ...DocumentOption) *Document {
	if env.Viewport == nil {
		env.Viewport = ViewportFunc(func() float64 { return 0 })
	}

	d := &Document{
		env:       env,
		scheduler: NewLoopScheduler(),
		logger:    nopLogger{},
		widgets:   make(map[string]*Widget),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Attach initializes a widget on a container.
// A widget already attached to the same container is torn down first.
func (d *Document) Attach(c Container, opts Options) *Widget {
	id := c.ID()

	if old, ok := d.widgets[id]; ok {
		d.logger.Debugf("[SYNC] Replacing widget on %s", id)
		old.detach()
	}

	w := newWidget(d, c, opts.Normalize())
	d.widgets[id] = w
	w.init()

	return w
}

// Detach tears down the widget attached to a container, if any
func (d *Document) Detach(id string) {
	if w, ok := d.widgets[id]; ok {
		w.detach()
	}
}

// Widget returns the widget attached to a container
func (d *Document) Widget(id string) (*Widget, bool) {
	w, ok := d.widgets[id]
	return w, ok
}

// Indicator returns the indicator inserted for a container
func (d *Document) Indicator(id string) (*Indicator, bool) {
	w, ok := d.widgets[id]
	if !ok {
		return nil, false
	}

	return w.indicator, true
}

// Invoke runs a string command on an attached container.
// Unknown commands and containers without a widget are ignored.
func (d *Document) Invoke(id string, cmd Command) bool {
	w, ok := d.widgets[id]
	if !ok {
		return false
	}

	switch cmd {
	case CommandRefresh:
		w.Refresh()
		return true
	}

	return false
}

// Refresh schedules a geometry recompute for a container.
// Returns false when nothing is attached to it.
func (d *Document) Refresh(id string) bool {
	return d.Invoke(id, CommandRefresh)
}

// Resize recomputes every widget after a viewport resize
func (d *Document) Resize() {
	for _, w := range d.widgets {
		w.Resize()
	}
}

// RunPending runs refreshes whose delay has passed.
// Hosts using the default scheduler call it from their event loop; other schedulers run nothing here.
func (d *Document) RunPending() int {
	if r, ok := d.scheduler.(interface{ RunReady() int }); ok {
		return r.RunReady()
	}

	return 0
}

// viewportHeight reads the current viewport height
func (d *Document) viewportHeight() float64 {
	return d.env.Viewport.Height()
}

// remove drops a widget from the registry if it is still the current one
func (d *Document) remove(w *Widget) {
	if cur, ok := d.widgets[w.container.ID()]; ok && cur == w {
		delete(d.widgets, w.container.ID())
	}
}

// RefreshDelay lets host layout settle before a refresh recomputes geometry
const RefreshDelay = 100 * time.Millisecond
