package layout

import "math"

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// Undefined is the size with both axes unconstrained.
func Undefined() Size {
	return Size{Width: math.NaN(), Height: math.NaN()}
}

// IsZero returns true if both axes are exactly zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Standardized replaces NaN or infinite components with 0.
func (s Size) Standardized() Size {
	return Size{Width: Finite(s.Width), Height: Finite(s.Height)}
}

// Finite returns v, or 0 when v is NaN or infinite.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// NonNegative returns Finite(v) clamped to be at least 0.
func NonNegative(v float64) float64 {
	return max(Finite(v), 0)
}
