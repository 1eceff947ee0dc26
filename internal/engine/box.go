package engine

import "math"

// Box is a node's computed position relative to its parent and its size.
type Box struct {
	Top, Left     float64
	Width, Height float64
}

// sanitize maps NaN and infinities to 0 and forbids negative sizes.
func sanitize(top, left, width, height float32) Box {
	return Box{
		Top:    finite(float64(top)),
		Left:   finite(float64(left)),
		Width:  max(finite(float64(width)), 0),
		Height: max(finite(float64(height)), 0),
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
