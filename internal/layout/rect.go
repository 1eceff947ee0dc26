package layout

// Rect represents a rectangle in points.
// X and Y are the origin; Width and Height are dimensions.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFrom builds a Rect from an origin and a size.
func RectFrom(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Origin returns the rectangle's origin.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// MaxX returns the x-coordinate of the right edge.
func (r Rect) MaxX() float64 {
	return r.X + r.Width
}

// MaxY returns the y-coordinate of the bottom edge (top edge in a Y-up system).
func (r Rect) MaxY() float64 {
	return r.Y + r.Height
}

// MidX returns the horizontal center.
func (r Rect) MidX() float64 {
	return r.X + r.Width/2
}

// MidY returns the vertical center.
func (r Rect) MidY() float64 {
	return r.Y + r.Height/2
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.MaxX() && y >= r.Y && y < r.MaxY()
}

// Offset returns a new Rect moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// IsStandardized reports whether every component is finite.
func (r Rect) IsStandardized() bool {
	return r == r.Standardized()
}

// Standardized replaces NaN or infinite components with 0.
func (r Rect) Standardized() Rect {
	return Rect{
		X:      Finite(r.X),
		Y:      Finite(r.Y),
		Width:  Finite(r.Width),
		Height: Finite(r.Height),
	}
}
