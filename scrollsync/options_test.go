// ABOUTME: Tests for option normalization and value parsing
// ABOUTME: Verifies silent fallback to defaults for malformed configuration

package scrollsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ModeAlways, cfg.Mode)
	assert.InDelta(t, 20.0, cfg.Speed, 1e-9)
	assert.Equal(t, FixedHeight(333), cfg.Height)
	assert.Equal(t, 0, cfg.TopOffset)
}

func TestOptionsNormalize(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want Config
	}{
		{
			name: "empty options use defaults",
			opts: Options{},
			want: DefaultConfig(),
		},
		{
			name: "all valid values",
			opts: Options{ShowBar: "hover", Speed: 50, Height: 200},
			want: Config{Mode: ModeHover, Speed: 50, Height: FixedHeight(200)},
		},
		{
			name: "fill viewport with top offset",
			opts: Options{ShowBar: "always", Height: "fill-viewport", TopOffset: 100},
			want: Config{Mode: ModeAlways, Speed: DefaultSpeed, Height: FillViewport, TopOffset: 100},
		},
		{
			name: "window alias",
			opts: Options{Height: "window", TopOffset: "220"},
			want: Config{Mode: DefaultMode, Speed: DefaultSpeed, Height: FillViewport, TopOffset: 220},
		},
		{
			name: "top offset ignored for fixed height",
			opts: Options{Height: 150, TopOffset: 40},
			want: Config{Mode: DefaultMode, Speed: DefaultSpeed, Height: FixedHeight(150)},
		},
		{
			name: "unknown mode falls back",
			opts: Options{ShowBar: "sometimes"},
			want: DefaultConfig(),
		},
		{
			name: "zero speed falls back",
			opts: Options{Speed: 0},
			want: DefaultConfig(),
		},
		{
			name: "negative speed falls back",
			opts: Options{Speed: -5.5},
			want: DefaultConfig(),
		},
		{
			name: "non-numeric speed falls back",
			opts: Options{Speed: "fast"},
			want: DefaultConfig(),
		},
		{
			name: "numeric string speed",
			opts: Options{Speed: "35"},
			want: Config{Mode: DefaultMode, Speed: 35, Height: FixedHeight(DefaultHeight)},
		},
		{
			name: "non-positive height falls back",
			opts: Options{Height: 0},
			want: DefaultConfig(),
		},
		{
			name: "non-numeric height falls back",
			opts: Options{Height: "tall"},
			want: DefaultConfig(),
		},
		{
			name: "height with unit suffix",
			opts: Options{Height: "250px"},
			want: Config{Mode: DefaultMode, Speed: DefaultSpeed, Height: FixedHeight(250)},
		},
		{
			name: "negative top offset ignored",
			opts: Options{Height: FillViewportMarker, TopOffset: -3},
			want: Config{Mode: DefaultMode, Speed: DefaultSpeed, Height: FillViewport},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Normalize())
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in     string
		want   Mode
		wantOK bool
	}{
		{"default", ModeDefault, true},
		{"always", ModeAlways, true},
		{" Hover ", ModeHover, true},
		{"NONE", ModeNone, true},
		{"", DefaultMode, false},
		{"visible", DefaultMode, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMode(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestModeStringRoundTrip(t *testing.T) {
	for _, m := range []Mode{ModeDefault, ModeAlways, ModeHover, ModeNone} {
		got, ok := ParseMode(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}
}

func TestModeNextCycles(t *testing.T) {
	m := ModeDefault
	seen := map[Mode]bool{}

	for range 4 {
		seen[m] = true
		m = m.Next()
	}

	assert.Equal(t, ModeDefault, m)
	assert.Len(t, seen, 4)
}

func TestHeightString(t *testing.T) {
	assert.Equal(t, "fill-viewport", FillViewport.String())
	assert.Equal(t, "200", FixedHeight(200).String())
}
