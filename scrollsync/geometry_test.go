// ABOUTME: Tests for the geometry resolver
// ABOUTME: Covers fixed and fill-viewport heights, ratio and slider sizing

package scrollsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		content     float64
		viewport    float64
		wantVisible float64
		wantRatio   float64
		wantSlider  float64
	}{
		{
			name:        "1000 content in 200 fixed height",
			cfg:         Config{Height: FixedHeight(200), Speed: 20},
			content:     1000,
			wantVisible: 200,
			wantRatio:   5,
			wantSlider:  40,
		},
		{
			name:        "fill viewport minus offset",
			cfg:         Config{Height: FillViewport, TopOffset: 100, Speed: 20},
			content:     1400,
			viewport:    800,
			wantVisible: 700,
			wantRatio:   2,
			wantSlider:  350,
		},
		{
			name:        "content shorter than container",
			cfg:         Config{Height: FixedHeight(200), Speed: 20},
			content:     100,
			wantVisible: 200,
			wantRatio:   0.5,
			wantSlider:  200,
		},
		{
			name:        "content exactly fits",
			cfg:         Config{Height: FixedHeight(200), Speed: 20},
			content:     200,
			wantVisible: 200,
			wantRatio:   1,
			wantSlider:  200,
		},
		{
			name:        "offset larger than viewport",
			cfg:         Config{Height: FillViewport, TopOffset: 900, Speed: 20},
			content:     500,
			viewport:    800,
			wantVisible: 0,
			wantRatio:   0,
			wantSlider:  0,
		},
		{
			name:        "empty content",
			cfg:         Config{Height: FixedHeight(50), Speed: 20},
			content:     0,
			wantVisible: 50,
			wantRatio:   0,
			wantSlider:  50,
		},
		{
			name:        "zero fixed height uses default",
			cfg:         Config{Speed: 20},
			content:     666,
			wantVisible: DefaultHeight,
			wantRatio:   2,
			wantSlider:  DefaultHeight / 2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Resolve(tt.cfg, tt.content, tt.viewport)

			assert.InDelta(t, tt.wantVisible, g.Visible, 1e-9, "visible")
			assert.InDelta(t, tt.wantRatio, g.Ratio, 1e-9, "ratio")
			assert.InDelta(t, tt.wantSlider, g.SliderLength, 1e-9, "slider length")
		})
	}
}

func TestEffectiveHeightFillViewport(t *testing.T) {
	cfg := Config{Height: FillViewport, TopOffset: 100}

	assert.InDelta(t, 700.0, EffectiveHeight(cfg, 800), 1e-9)
}

func TestSliderLengthShrinksWithOverflow(t *testing.T) {
	cfg := Config{Height: FixedHeight(100), Speed: 10}

	prev := Resolve(cfg, 200, 0).SliderLength
	for _, content := range []float64{400, 800, 1600} {
		cur := Resolve(cfg, content, 0).SliderLength
		assert.Less(t, cur, prev)
		assert.InDelta(t, 100*100/content, cur, 1e-9)
		prev = cur
	}
}

func TestGeometryBounds(t *testing.T) {
	g := Resolve(Config{Height: FixedHeight(200)}, 1000, 0)

	assert.True(t, g.Overflows())
	assert.InDelta(t, 160.0, g.MaxSliderPosition(), 1e-9)
	assert.InDelta(t, 800.0, g.MaxScrollOffset(), 1e-9)

	fits := Resolve(Config{Height: FixedHeight(200)}, 50, 0)
	assert.False(t, fits.Overflows())
	assert.Zero(t, fits.MaxSliderPosition())
	assert.Zero(t, fits.MaxScrollOffset())
}
