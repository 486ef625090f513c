// ABOUTME: Position synchronizer math between content offset and slider position
// ABOUTME: Wheel steps move both sides independently; drags derive offset from the slider

package scrollsync

import "math"

// fallbackDragSpeed replaces a non-positive speed in the drag quantization
const fallbackDragSpeed = 1.0

// WheelStep returns the direction of a wheel delta: -1 for up, +1 otherwise
func WheelStep(deltaY float64) float64 {
	if deltaY < 0 {
		return -1
	}

	return 1
}

// ClampSlider keeps a slider position inside the indicator track
func ClampSlider(pos float64, g Geometry) float64 {
	if pos < 0 {
		return 0
	}

	if limit := g.MaxSliderPosition(); pos > limit {
		return limit
	}

	return pos
}

// WheelSlider returns the slider position after one wheel tick.
// The slider moves speed/ratio per tick, mirroring the content step without reading it back.
func WheelSlider(pos, deltaY, speed float64, g Geometry) float64 {
	if g.Ratio <= 0 {
		return 0
	}

	return ClampSlider(pos+WheelStep(deltaY)*speed/g.Ratio, g)
}

// QuantizedOffset converts a slider position to a content offset.
// The result is rounded up to a multiple of speed so drags scroll in wheel-sized steps.
func QuantizedOffset(pos, ratio, speed float64) float64 {
	if speed <= 0 {
		speed = fallbackDragSpeed
	}

	return math.Ceil(pos*ratio/speed) * speed
}

// SliderForOffset derives the slider position that mirrors a content offset
func SliderForOffset(offset float64, g Geometry) float64 {
	if g.Ratio <= 0 {
		return 0
	}

	return ClampSlider(offset/g.Ratio, g)
}
