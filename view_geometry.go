package flexview

import "math"

// Frame returns the view's rectangle in its superview's coordinate space.
// With a non-identity transform it is the bounding box of the transformed bounds.
func (v *View) Frame() Rect {
	w, h := v.bounds.Width, v.bounds.Height
	if v.transform.IsIdentity() {
		return NewRect(v.center.X-w/2, v.center.Y-h/2, w, h)
	}

	corners := [4]Point{
		{X: -w / 2, Y: -h / 2},
		{X: w / 2, Y: -h / 2},
		{X: -w / 2, Y: h / 2},
		{X: w / 2, Y: h / 2},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		p := v.transform.Apply(c)
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return NewRect(v.center.X+minX, v.center.Y+minY, maxX-minX, maxY-minY)
}

// SetFrame moves and resizes the view, then notifies frame observers.
// NaN or infinite components are replaced with 0.
func (v *View) SetFrame(frame Rect) {
	frame = frame.Standardized()
	v.center = frame.Center()
	v.bounds.Width = frame.Width
	v.bounds.Height = frame.Height
	v.notify(v.frameObservers)
}

// Bounds returns the view's rectangle in its own coordinate space.
func (v *View) Bounds() Rect {
	return v.bounds
}

// SetBounds replaces the bounds around the current center, then notifies
// bounds observers. NaN or infinite components are replaced with 0.
func (v *View) SetBounds(bounds Rect) {
	v.bounds = bounds.Standardized()
	v.notify(v.boundsObservers)
}

// Center returns the view's center in its superview's coordinate space.
func (v *View) Center() Point {
	return v.center
}

// SetCenter moves the view without resizing it. Observers are not notified.
func (v *View) SetCenter(center Point) {
	v.center = Point{X: finite(center.X), Y: finite(center.Y)}
}

// Transform returns the view's transform.
func (v *View) Transform() Transform {
	return v.transform
}

// SetTransform replaces the view's transform. The frame changes accordingly
// but observers are not notified.
func (v *View) SetTransform(t Transform) {
	v.transform = t
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
