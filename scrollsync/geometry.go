// ABOUTME: Geometry resolver computing visible height, ratio and slider length
// ABOUTME: Pure functions; the widget applies the results to container and indicator

package scrollsync

// Geometry is the derived sizing of one widget
type Geometry struct {
	Content      float64 // Natural content length
	Visible      float64 // Effective container and indicator length
	Ratio        float64 // Content / Visible, zero when nothing is visible
	SliderLength float64
}

// Resolve computes the geometry for a configuration.
// viewport is the current viewport height, used only with FillViewport.
func Resolve(cfg Config, content, viewport float64) Geometry {
	g := Geometry{
		Content: content,
		Visible: EffectiveHeight(cfg, viewport),
	}

	if g.Visible <= 0 {
		g.Visible = 0
		return g
	}

	g.Ratio = content / g.Visible

	// A proportional thumb: shrinks as overflow grows, fills the track otherwise
	if g.Ratio > 1 {
		g.SliderLength = g.Visible / g.Ratio
	} else {
		g.SliderLength = g.Visible
	}

	return g
}

// EffectiveHeight returns the container height a configuration asks for
func EffectiveHeight(cfg Config, viewport float64) float64 {
	if cfg.Height.Fill() {
		h := viewport - float64(cfg.TopOffset)
		if h < 0 {
			return 0
		}

		return h
	}

	if cfg.Height.Fixed() <= 0 {
		return DefaultHeight
	}

	return float64(cfg.Height.Fixed())
}

// Overflows reports whether content is longer than the visible length
func (g Geometry) Overflows() bool {
	return g.Ratio > 1
}

// MaxSliderPosition is the largest slider offset that keeps it inside the track
func (g Geometry) MaxSliderPosition() float64 {
	limit := g.Visible - g.SliderLength
	if limit < 0 {
		return 0
	}

	return limit
}

// MaxScrollOffset is the native scroll bound of the container
func (g Geometry) MaxScrollOffset() float64 {
	limit := g.Content - g.Visible
	if limit < 0 {
		return 0
	}

	return limit
}
