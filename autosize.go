package flexview

import "math"

// IntrinsicContentSize returns the size the view wants under constraint-based
// auto-sizing. A layout-enabled, included view computes its layout with its
// cached maximum layout width and unconstrained height; other views report
// their content's natural size.
func (v *View) IntrinsicContentSize() Size {
	size := v.SizeThatFits(Size{Width: math.Inf(1), Height: math.Inf(1)})
	if v.yoga == nil {
		return size
	}

	if v.yoga.includedInLayout {
		maxWidth := v.maxLayoutWidth
		if maxWidth == 0 {
			maxWidth = math.NaN()
		}
		size = v.yoga.CalculateLayout(Size{Width: maxWidth, Height: math.NaN()})
	}
	v.setMaxLayoutWidth(size.Width)
	return size
}

// MaxLayoutWidth returns the width auto-sizing last resolved, or NaN when unset.
func (v *View) MaxLayoutWidth() float64 {
	return v.maxLayoutWidth
}

func (v *View) setMaxLayoutWidth(width float64) {
	if width < 0 {
		width = math.NaN()
	}
	v.maxLayoutWidth = width
}

// InvalidateIntrinsicContentSize tells the host the intrinsic size changed.
// The superview is flagged for a layout pass.
func (v *View) InvalidateIntrinsicContentSize() {
	v.intrinsicInvalidations++
	if v.superview != nil {
		v.superview.needsLayout = true
	}
	v.notify(v.intrinsicObservers)
}

// IntrinsicInvalidations returns how many times the intrinsic size was invalidated.
func (v *View) IntrinsicInvalidations() int {
	return v.intrinsicInvalidations
}

// SetNeedsLayout flags the view for the next LayoutIfNeeded.
func (v *View) SetNeedsLayout() {
	v.needsLayout = true
}

// NeedsLayout reports whether a host layout pass is pending.
func (v *View) NeedsLayout() bool {
	return v.needsLayout
}

// LayoutIfNeeded runs the host layout pass if one is pending.
func (v *View) LayoutIfNeeded() {
	if !v.needsLayout {
		return
	}
	v.needsLayout = false
	if v.onLayoutSubviews != nil {
		v.onLayoutSubviews(v)
	}
}

// updateConstraintsIfNeeded refreshes the cached auto-sizing width after the
// host resized the view.
func (v *View) updateConstraintsIfNeeded(width float64) {
	if !v.usesConstraints {
		return
	}
	if math.IsNaN(v.maxLayoutWidth) || v.maxLayoutWidth != width {
		v.setMaxLayoutWidth(width)
		v.InvalidateIntrinsicContentSize()
		if sv := v.superview; sv != nil {
			sv.LayoutIfNeeded()
		}
	}
}
