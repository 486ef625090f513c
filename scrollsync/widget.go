// ABOUTME: Widget instance tying container, indicator and slider together
// ABOUTME: Handles wheel, drag, hover, resize and coalesced refresh input

package scrollsync

// Widget is one attached scroll widget.
// It is not safe for concurrent use; all calls belong to the host's event loop.
type Widget struct {
	doc       *Document
	container Container
	cfg       Config
	geom      Geometry
	indicator *Indicator
	policy    Policy
	native    bool
	detached  bool

	refreshSeq uint64 // Only the latest scheduled refresh runs
}

func newWidget(d *Document, c Container, cfg Config) *Widget {
	native := d.env.Touch || cfg.Mode.Native()

	// Native widgets never show the indicator, whatever mode was asked for
	policyMode := cfg.Mode
	if native {
		policyMode = ModeDefault
	}

	return &Widget{
		doc:       d,
		container: c,
		cfg:       cfg,
		indicator: &Indicator{Owner: c.ID()},
		policy:    Policy{Mode: policyMode},
		native:    native,
	}
}

// init sizes the widget and binds the scrolling behavior
func (w *Widget) init() {
	w.container.SetNativeScroll(w.native)
	w.resize()

	w.doc.logger.Debugf("[SYNC] Attached %s: mode=%s speed=%.0f height=%s native=%t ratio=%.3f",
		w.container.ID(), w.cfg.Mode, w.cfg.Speed, w.cfg.Height, w.native, w.geom.Ratio)
}

// resize recomputes geometry and resets both sides to the origin
func (w *Widget) resize() {
	w.geom = Resolve(w.cfg, w.container.ContentLength(), w.doc.viewportHeight())

	w.container.SetVisibleLength(w.geom.Visible)
	w.indicator.Length = w.geom.Visible
	w.indicator.Top = w.container.Top()
	w.indicator.Slider.Length = w.geom.SliderLength

	w.container.SetScrollOffset(0)
	w.indicator.Slider.Position = 0

	w.policy.AfterResize(w.indicator, w.geom)
}

// detach unbinds the widget and removes its indicator
func (w *Widget) detach() {
	if w.detached {
		return
	}

	w.detached = true
	w.policy.SetDragging(false)
	w.indicator.Visible = false
	w.doc.remove(w)
}

// Config returns the normalized configuration
func (w *Widget) Config() Config {
	return w.cfg
}

// Geometry returns the most recent geometry
func (w *Widget) Geometry() Geometry {
	return w.geom
}

// Indicator returns the widget's indicator
func (w *Widget) Indicator() Indicator {
	return *w.indicator
}

// Native reports whether scrolling is left to the host
func (w *Widget) Native() bool {
	return w.native
}

// Attached reports whether the widget still owns its container
func (w *Widget) Attached() bool {
	return !w.detached
}

// Dragging reports whether a slider drag is in progress
func (w *Widget) Dragging() bool {
	return w.policy.Dragging()
}

// active reports whether custom scrolling handlers are bound
func (w *Widget) active() bool {
	return !w.detached && !w.native
}

// Resize handles a viewport resize
func (w *Widget) Resize() {
	if w.detached {
		return
	}

	w.resize()
}

// Refresh schedules a geometry recompute after RefreshDelay.
// Earlier pending refreshes are superseded by the newest one.
func (w *Widget) Refresh() {
	if w.detached {
		return
	}

	w.refreshSeq++
	seq := w.refreshSeq

	w.doc.scheduler.Schedule(RefreshDelay, func() {
		w.completeRefresh(seq)
	})
}

// completeRefresh runs a scheduled refresh unless a newer one replaced it
func (w *Widget) completeRefresh(seq uint64) {
	if w.detached {
		return
	}

	if seq != w.refreshSeq {
		w.doc.logger.Debugf("[SYNC] Dropping stale refresh %d (current %d)", seq, w.refreshSeq)
		return
	}

	w.resize()
	w.doc.logger.Debugf("[SYNC] Refreshed %s: content=%.0f visible=%.0f ratio=%.3f",
		w.container.ID(), w.geom.Content, w.geom.Visible, w.geom.Ratio)
}

// Wheel scrolls one tick in the direction of deltaY.
// Returns false when the host should handle the wheel natively.
func (w *Widget) Wheel(deltaY float64) bool {
	if !w.active() {
		return false
	}

	step := WheelStep(deltaY) * w.cfg.Speed
	w.container.SetScrollOffset(w.container.ScrollOffset() + step)
	w.indicator.Slider.Position = WheelSlider(w.indicator.Slider.Position, deltaY, w.cfg.Speed, w.geom)

	return true
}

// ScrollTo jumps the content to an offset and derives the slider from it
func (w *Widget) ScrollTo(offset float64) bool {
	if !w.active() {
		return false
	}

	if offset < 0 {
		offset = 0
	}

	if limit := w.geom.MaxScrollOffset(); offset > limit {
		offset = limit
	}

	w.container.SetScrollOffset(offset)
	w.indicator.Slider.Position = SliderForOffset(offset, w.geom)

	return true
}

// DragStart begins a slider drag
func (w *Widget) DragStart() bool {
	if !w.active() {
		return false
	}

	w.policy.SetDragging(true)

	return true
}

// DragTo moves the slider, kept inside the track, and scrolls the content to match
func (w *Widget) DragTo(pos float64) bool {
	if !w.active() || !w.policy.Dragging() {
		return false
	}

	pos = ClampSlider(pos, w.geom)
	w.indicator.Slider.Position = pos
	w.container.SetScrollOffset(QuantizedOffset(pos, w.geom.Ratio, w.cfg.Speed))

	return true
}

// DragStop ends a slider drag
func (w *Widget) DragStop() bool {
	if !w.active() || !w.policy.Dragging() {
		return false
	}

	w.policy.SetDragging(false)

	return true
}

// PointerEnter handles the pointer entering the container or indicator
func (w *Widget) PointerEnter() bool {
	if !w.active() {
		return false
	}

	return w.policy.PointerEnter(w.indicator, w.geom)
}

// PointerLeave handles the pointer leaving the container or indicator
func (w *Widget) PointerLeave() bool {
	if !w.active() {
		return false
	}

	return w.policy.PointerLeave(w.indicator, w.geom)
}
