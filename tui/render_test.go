// ABOUTME: Tests for indicator and status rendering helpers
// ABOUTME: Validates slider row spans and the status bar contents

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"easyscroll/config"
	"easyscroll/scrollsync"
)

func TestSliderSpan(t *testing.T) {
	tests := []struct {
		name      string
		length    float64
		slider    scrollsync.Slider
		wantStart int
		wantEnd   int
	}{
		{"at top", 20, scrollsync.Slider{Length: 4, Position: 0}, 0, 4},
		{"rounds position", 20, scrollsync.Slider{Length: 4, Position: 2.6}, 3, 7},
		{"at bottom", 20, scrollsync.Slider{Length: 4, Position: 16}, 16, 20},
		{"never leaves track", 20, scrollsync.Slider{Length: 4, Position: 16.6}, 16, 20},
		{"at least one row", 20, scrollsync.Slider{Length: 0.2, Position: 5}, 5, 6},
		{"full track", 10, scrollsync.Slider{Length: 10, Position: 0}, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := sliderSpan(scrollsync.Indicator{Length: tt.length, Slider: tt.slider})

			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("sliderSpan = [%d, %d), want [%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestRenderStatus(t *testing.T) {
	m, _ := createTestModel(t, createTestLines(100), config.DefaultConfig())

	status := m.renderStatus()
	assert.Contains(t, status, "Mode: always (custom)")
	assert.Contains(t, status, "Lines 1-20 of 100")
	assert.Contains(t, status, "Ratio 5.00")

	m.setStatusMsg("Config reloaded")
	assert.Contains(t, m.renderStatus(), "Config reloaded")
}

func TestRenderTitleShowsParameters(t *testing.T) {
	m, _ := createTestModel(t, createTestLines(100), config.DefaultConfig())

	title := m.renderTitle()

	assert.Contains(t, title, "test.txt")
	assert.Contains(t, title, "Speed 3")
	assert.Contains(t, title, "Height fill")
	assert.Contains(t, title, "Top offset 4")
}
