// ABOUTME: Indicator state and the visibility policy deciding when it is shown
// ABOUTME: Combines mode, drag latch and overflow; show and hide are idempotent

package scrollsync

// Slider is the draggable handle inside the indicator
type Slider struct {
	Length   float64
	Position float64
}

// Indicator is the overlay track drawn next to the container
type Indicator struct {
	Owner   string // Identity marker of the container it belongs to
	Top     float64
	Length  float64
	Visible bool
	Slider  Slider
}

// Action is a visibility request
type Action int

// Visibility actions
const (
	ActionToggle Action = iota // Show when overflowing, hide otherwise
	ActionShow
	ActionHide
)

// Policy decides indicator visibility
type Policy struct {
	Mode     Mode
	dragging bool // Suppresses hover-driven hides mid-drag
	inside   bool // Pointer is over the container or indicator
}

// Dragging reports whether the drag latch is set
func (p *Policy) Dragging() bool {
	return p.dragging
}

// SetDragging sets or clears the drag latch
func (p *Policy) SetDragging(dragging bool) {
	p.dragging = dragging
}

// Apply runs an action against the indicator.
// Returns true if visibility changed.
func (p *Policy) Apply(action Action, ind *Indicator, g Geometry) bool {
	want := ind.Visible

	switch action {
	case ActionShow:
		if g.Overflows() {
			want = true
		}
	case ActionHide:
		if !p.dragging {
			want = false
		}
	case ActionToggle:
		want = g.Overflows()
	}

	if !p.allows() || !g.Overflows() {
		want = false
	}

	if want == ind.Visible {
		return false
	}

	ind.Visible = want

	return true
}

// AfterResize applies the policy that follows a geometry recompute
func (p *Policy) AfterResize(ind *Indicator, g Geometry) bool {
	switch p.Mode {
	case ModeAlways:
		return p.Apply(ActionToggle, ind, g)
	case ModeHover:
		if p.inside {
			return p.Apply(ActionShow, ind, g)
		}
		return p.enforce(ind, g)
	case ModeNone, ModeDefault:
		return p.enforce(ind, g)
	}

	return false
}

// PointerEnter handles the pointer entering container or indicator
func (p *Policy) PointerEnter(ind *Indicator, g Geometry) bool {
	p.inside = true

	if p.Mode != ModeHover {
		return false
	}

	return p.Apply(ActionShow, ind, g)
}

// PointerLeave handles the pointer leaving container or indicator
func (p *Policy) PointerLeave(ind *Indicator, g Geometry) bool {
	p.inside = false

	if p.Mode != ModeHover {
		return false
	}

	return p.Apply(ActionHide, ind, g)
}

// allows reports whether the mode ever shows the indicator
func (p *Policy) allows() bool {
	switch p.Mode {
	case ModeAlways, ModeHover:
		return true
	case ModeDefault, ModeNone:
		return false
	}

	return false
}

// enforce hides an indicator that the mode or geometry no longer permits
func (p *Policy) enforce(ind *Indicator, g Geometry) bool {
	if !ind.Visible || (p.allows() && g.Overflows()) {
		return false
	}

	ind.Visible = false

	return true
}
