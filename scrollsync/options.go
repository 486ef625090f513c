// ABOUTME: Widget configuration: loose user options and their normalized form
// ABOUTME: Malformed values fall back to defaults silently instead of failing

package scrollsync

import (
	"math"
	"strconv"
	"strings"
)

// Defaults applied when an option is missing or malformed
const (
	DefaultMode   = ModeAlways
	DefaultSpeed  = 20.0 // Units scrolled per wheel tick
	DefaultHeight = 333  // Fixed container height
)

// FillViewportMarker selects a container height that fills the viewport below TopOffset
const FillViewportMarker = "fill-viewport"

// windowMarker is the older spelling of FillViewportMarker
const windowMarker = "window"

// Height is either a fixed length or "fill the viewport"
type Height struct {
	fill  bool
	fixed int
}

// FillViewport fills the remaining viewport height below the top offset
var FillViewport = Height{fill: true}

// FixedHeight returns a fixed container height
func FixedHeight(n int) Height {
	return Height{fixed: n}
}

// Fill reports whether the height tracks the viewport
func (h Height) Fill() bool {
	return h.fill
}

// Fixed returns the fixed height (zero for FillViewport)
func (h Height) Fixed() int {
	return h.fixed
}

// String returns the option spelling of the height
func (h Height) String() string {
	if h.fill {
		return FillViewportMarker
	}

	return strconv.Itoa(h.fixed)
}

// Config is the normalized widget configuration.
// It is immutable after Attach except through Refresh or a new Attach.
type Config struct {
	Mode      Mode
	Speed     float64
	Height    Height
	TopOffset int // Only used with FillViewport
}

// DefaultConfig returns the configuration used when no options are given
func DefaultConfig() Config {
	return Config{
		Mode:   DefaultMode,
		Speed:  DefaultSpeed,
		Height: FixedHeight(DefaultHeight),
	}
}

// Options are the user-facing initialization values.
// Speed, Height and TopOffset accept numbers or numeric strings; Height also
// accepts FillViewportMarker. Zero values mean "use the default".
type Options struct {
	ShowBar   string
	Speed     any
	Height    any
	TopOffset any
}

// Normalize converts options to a Config, replacing malformed values with defaults
func (o Options) Normalize() Config {
	cfg := DefaultConfig()

	if o.ShowBar != "" {
		if mode, ok := ParseMode(o.ShowBar); ok {
			cfg.Mode = mode
		}
	}

	if speed, ok := parseNumber(o.Speed); ok && speed > 0 {
		cfg.Speed = speed
	}

	if h, ok := ParseHeight(o.Height); ok {
		cfg.Height = h
	}

	// Top offset only applies when filling the viewport
	if cfg.Height.Fill() {
		if off, ok := parseNumber(o.TopOffset); ok && off > 0 {
			cfg.TopOffset = int(off)
		}
	}

	return cfg
}

// ParseHeight interprets a height option.
// Strings are read like a leading integer ("200px" is 200); non-positive values are rejected.
func ParseHeight(v any) (Height, bool) {
	if s, ok := v.(string); ok {
		trimmed := strings.ToLower(strings.TrimSpace(s))
		if trimmed == FillViewportMarker || trimmed == windowMarker {
			return FillViewport, true
		}

		n, ok := leadingInt(trimmed)
		if !ok || n <= 0 {
			return Height{}, false
		}

		return FixedHeight(n), true
	}

	f, ok := parseNumber(v)
	if !ok {
		return Height{}, false
	}

	n := int(f)
	if n <= 0 {
		return Height{}, false
	}

	return FixedHeight(n), true
}

// parseNumber accepts Go numeric types and numeric strings
func parseNumber(v any) (float64, bool) {
	var f float64

	switch n := v.(type) {
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// leadingInt parses the decimal digits at the start of s
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}

	return n, true
}
