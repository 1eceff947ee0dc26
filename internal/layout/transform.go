package layout

// Transform is a 2D affine transform applied around a view's center.
//
//	x' = A*x + C*y + Tx
//	y' = B*x + D*y + Ty
type Transform struct {
	A, B, C, D float64
	Tx, Ty     float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Scale returns a transform scaling by (sx, sy).
func Scale(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// Translation returns a transform translating by (tx, ty).
func Translation(tx, ty float64) Transform {
	return Transform{A: 1, D: 1, Tx: tx, Ty: ty}
}

// IsIdentity reports whether t leaves every point unchanged.
// The zero Transform is treated as identity so an unset field behaves.
func (t Transform) IsIdentity() bool {
	if t == (Transform{}) {
		return true
	}
	return t == Identity()
}

// Apply maps p through the transform.
func (t Transform) Apply(p Point) Point {
	if t.IsIdentity() {
		return p
	}
	return Point{
		X: t.A*p.X + t.C*p.Y + t.Tx,
		Y: t.B*p.X + t.D*p.Y + t.Ty,
	}
}
