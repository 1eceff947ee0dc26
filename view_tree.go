package flexview

import "slices"

// --- View hierarchy API ---

// AddSubview appends child to this view's subviews.
// A child that already has a superview is moved.
func (v *View) AddSubview(child *View) {
	v.InsertSubview(child, len(v.subviews))
}

// InsertSubview inserts child at index, clamped to the valid range.
// A child that already has a superview is moved.
func (v *View) InsertSubview(child *View, index int) {
	if child == nil {
		panic("flexview: InsertSubview requires a non-nil view")
	}
	for p := v; p != nil; p = p.superview {
		if p == child {
			panic("flexview: InsertSubview would create a cycle")
		}
	}
	if old := child.superview; old != nil {
		old.detachSubview(child)
		old.subviewsChanged()
	}
	v.attachSubview(child, index)
	v.subviewsChanged()
}

func (v *View) attachSubview(child *View, index int) {
	index = max(0, min(index, len(v.subviews)))
	child.superview = v
	v.subviews = slices.Insert(v.subviews, index, child)
}

func (v *View) detachSubview(child *View) bool {
	i := slices.Index(v.subviews, child)
	if i < 0 {
		return false
	}
	v.subviews = slices.Delete(v.subviews, i, i+1)
	child.superview = nil
	return true
}

// RemoveFromSuperview detaches the view from its superview.
func (v *View) RemoveFromSuperview() {
	parent := v.superview
	if parent == nil {
		return
	}
	if parent.detachSubview(v) {
		parent.subviewsChanged()
	}
}

// RemoveAllSubviews detaches every subview.
func (v *View) RemoveAllSubviews() {
	if len(v.subviews) == 0 {
		return
	}
	for _, child := range v.subviews {
		child.superview = nil
	}
	v.subviews = nil
	v.subviewsChanged()
}

// ExchangeSubviews swaps the subviews at indices i and j.
func (v *View) ExchangeSubviews(i, j int) {
	if i == j || i < 0 || j < 0 || i >= len(v.subviews) || j >= len(v.subviews) {
		return
	}
	v.subviews[i], v.subviews[j] = v.subviews[j], v.subviews[i]
	v.subviewsChanged()
}

// Subviews returns the subviews in order. The slice must not be modified.
func (v *View) Subviews() []*View {
	return v.subviews
}

// Superview returns the parent view, or nil if this is a root.
func (v *View) Superview() *View {
	return v.superview
}

// subviewsChanged marks the view for a host layout pass and notifies observers.
// The shadow tree is reconciled lazily on the next layout computation.
func (v *View) subviewsChanged() {
	v.needsLayout = true
	v.notify(v.subviewObservers)
}
