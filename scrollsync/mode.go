// ABOUTME: Visibility modes controlling when the scroll indicator is shown
// ABOUTME: Closed enumeration with parsing from the user-facing showBar values

package scrollsync

import "strings"

// Mode selects the visibility policy of the indicator
type Mode int

// Visibility modes. ModeDefault leaves scrolling to the host's native behavior.
const (
	ModeDefault Mode = iota // Native scrolling, no indicator
	ModeAlways              // Shown whenever content overflows
	ModeHover               // Shown while the pointer is over container or indicator
	ModeNone                // Custom scrolling, indicator never shown
)

// String returns the showBar spelling of the mode
func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeAlways:
		return "always"
	case ModeHover:
		return "hover"
	case ModeNone:
		return "none"
	}

	return "unknown"
}

// Native reports whether the mode defers to the host's own scrolling
func (m Mode) Native() bool {
	return m == ModeDefault
}

// Next cycles through the modes in declaration order
func (m Mode) Next() Mode {
	switch m {
	case ModeDefault:
		return ModeAlways
	case ModeAlways:
		return ModeHover
	case ModeHover:
		return ModeNone
	case ModeNone:
		return ModeDefault
	}

	return ModeAlways
}

// ParseMode maps a showBar value to a Mode.
// The second result is false when the value is not a known mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default":
		return ModeDefault, true
	case "always":
		return ModeAlways, true
	case "hover":
		return ModeHover, true
	case "none":
		return ModeNone, true
	}

	return DefaultMode, false
}
