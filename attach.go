package flexview

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-flexview/internal/engine"
)

// eligibleSubviews returns the subviews that are layout-enabled and included, in order.
func eligibleSubviews(v *View) []*View {
	var result []*View
	for _, s := range v.subviews {
		if s.yoga != nil && s.yoga.includedInLayout {
			result = append(result, s)
		}
	}
	return result
}

// hasExactSameChildren compares node children with the subviews' nodes by identity.
func hasExactSameChildren(h *engine.Handle[View], subviews []*View) bool {
	if h.ChildCount() != len(subviews) {
		return false
	}
	for i, s := range subviews {
		if h.ChildAt(i) != s.yoga.handle {
			return false
		}
	}
	return true
}

// attachNodesFromViewHierarchy makes the shadow tree under v mirror v's
// eligible subviews, recursively. Children are only rebuilt when they differ,
// since reinserting them dirties the node and drops cached measurements.
func attachNodesFromViewHierarchy(v *View) {
	l := v.Yoga()
	h := l.handle

	if l.IsLeaf() {
		h.RemoveAllChildren()
		if !h.HasMeasureFunc() {
			h.SetMeasureFunc(measureView)
		}
		return
	}

	h.SetMeasureFunc(nil)

	subviews := eligibleSubviews(v)
	if !hasExactSameChildren(h, subviews) {
		h.RemoveAllChildren()
		for i, s := range subviews {
			h.InsertChild(s.yoga.handle, i)
		}
		Logger().Debug("rebuilt layout children",
			zap.Stringer("view", v),
			zap.Int("children", len(subviews)))
	}

	for _, s := range subviews {
		attachNodesFromViewHierarchy(s)
	}
}
