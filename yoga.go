package flexview

import (
	"math"
	"runtime"

	"go.uber.org/zap"

	"github.com/grindlemire/go-flexview/internal/engine"
)

// Flexibility selects the axes ApplyLayoutWithFlexibility leaves unconstrained.
type Flexibility uint8

const (
	FlexibleWidth Flexibility = 1 << iota
	FlexibleHeight
)

// Layout is the per-view layout facade. It owns the view's engine node and
// decides how the view takes part in the shadow tree.
type Layout struct {
	view   *View
	handle *engine.Handle[View]
	cfg    *Config

	includedInLayout bool
	isApplyingLayout bool
}

// Yoga returns the view's layout facade, creating it on first access.
// Creating the facade enables layout for the view; there is no way to disable it again.
func (v *View) Yoga() *Layout {
	if v.yoga != nil {
		return v.yoga
	}
	if v.cfg == nil {
		v.cfg = DefaultConfig()
	}

	l := &Layout{
		view:             v,
		handle:           engine.New(v.cfg.engine, v),
		cfg:              v.cfg,
		includedInLayout: true,
	}
	v.yoga = l

	// The handle only weakly references v, so v can be collected; its node is
	// then released on the layout goroutine during the next computation.
	runtime.AddCleanup(v, (*engine.Handle[View]).ScheduleRelease, l.handle)

	if v.cfg.applyOnResize {
		installResizeHooks(v)
	}
	Logger().Debug("layout enabled", zap.Stringer("view", v))
	return l
}

// View returns the view that owns this facade.
func (l *Layout) View() *View {
	return l.view
}

// Configure runs fn against the facade. A nil fn is a no-op.
func (l *Layout) Configure(fn func(*Layout)) {
	if fn != nil {
		fn(l)
	}
}

// IsIncludedInLayout reports whether the view takes part in its superview's layout.
func (l *Layout) IsIncludedInLayout() bool {
	return l.includedInLayout
}

// SetIncludedInLayout toggles participation. An excluded view and its whole
// subtree are pruned from the shadow tree on the next layout computation.
func (l *Layout) SetIncludedInLayout(included bool) {
	l.includedInLayout = included
}

// IsDirty reports whether the engine will recompute this node.
func (l *Layout) IsDirty() bool {
	return l.handle.IsDirty()
}

// IsLeaf reports whether no subview is both layout-enabled and included.
// Excluded views are always leaves.
func (l *Layout) IsLeaf() bool {
	assertMainThread(l.cfg, "Layout.IsLeaf")
	if !l.includedInLayout {
		return true
	}
	for _, s := range l.view.subviews {
		if s.yoga != nil && s.yoga.includedInLayout {
			return false
		}
	}
	return true
}

// NumberOfChildren returns the node's child count in the shadow tree as of
// the last synchronization.
func (l *Layout) NumberOfChildren() int {
	return l.handle.ChildCount()
}

// ResolvedDirection returns the writing direction resolved by the last computation.
func (l *Layout) ResolvedDirection() Direction {
	return l.handle.ResolvedDirection()
}

// IntrinsicSize computes the layout with both axes unconstrained.
func (l *Layout) IntrinsicSize() Size {
	return l.CalculateLayout(UndefinedSize())
}

// MarkDirty flags an included leaf's measured content as changed.
// Containers are never marked: only leaves carry measured content.
// When the root layout view takes part in constraint-based auto-sizing, its
// cached intrinsic size is invalidated so the host runs a layout pass.
func (l *Layout) MarkDirty() {
	if !l.includedInLayout || !l.IsLeaf() {
		return
	}

	if !l.handle.HasMeasureFunc() {
		// The node may still hold children from before its subviews were excluded.
		l.handle.RemoveAllChildren()
		l.handle.SetMeasureFunc(measureView)
	}
	l.handle.MarkDirty()

	root := l.rootYogaView()
	if root == nil || !root.usesConstraints {
		return
	}
	root.maxLayoutWidth = math.NaN()
	root.InvalidateIntrinsicContentSize()
	if sv := root.superview; sv != nil {
		sv.LayoutIfNeeded()
	}
}

// CalculateLayout synchronizes the shadow tree with the view hierarchy and
// runs the engine within size. NaN on an axis leaves it unconstrained.
// The returned size is never negative, NaN or infinite.
func (l *Layout) CalculateLayout(size Size) Size {
	assertMainThread(l.cfg, "Layout.CalculateLayout")
	if !l.includedInLayout {
		panic("flexview: Layout.CalculateLayout called on a view excluded from layout")
	}

	if n := engine.DrainReleased(); n > 0 {
		Logger().Debug("released layout nodes", zap.Int("count", n))
	}

	attachNodesFromViewHierarchy(l.view)
	l.handle.Calculate(size.Width, size.Height, l.handle.Style().Direction)

	box := l.handle.Box()
	return Size{Width: box.Width, Height: box.Height}
}

// ApplyLayout computes the layout within the view's bounds and writes frames
// to the view and its layout-enabled descendants, resetting the view's origin.
func (l *Layout) ApplyLayout() {
	l.ApplyLayoutWithFlexibility(false, 0)
}

// ApplyLayoutPreservingOrigin is ApplyLayout that optionally keeps the view's
// current origin.
func (l *Layout) ApplyLayoutPreservingOrigin(preserveOrigin bool) {
	l.ApplyLayoutWithFlexibility(preserveOrigin, 0)
}

// ApplyLayoutWithFlexibility is ApplyLayoutPreservingOrigin with the axes in
// flexibility left unconstrained, so the view sizes to its content on them.
// It is a no-op while the view is already applying layout or is excluded.
func (l *Layout) ApplyLayoutWithFlexibility(preserveOrigin bool, flexibility Flexibility) {
	if l.isApplyingLayout || !l.includedInLayout {
		return
	}

	size := l.view.bounds.Size()
	if flexibility&FlexibleWidth != 0 {
		size.Width = math.NaN()
	}
	if flexibility&FlexibleHeight != 0 {
		size.Height = math.NaN()
	}

	l.CalculateLayout(size)
	applyLayoutToViewHierarchy(l.view, preserveOrigin)
}

// rootYogaView walks up while the superview is layout-enabled and included.
func (l *Layout) rootYogaView() *View {
	v := l.view
	for {
		parent := v.superview
		if parent == nil || parent.yoga == nil || !parent.yoga.includedInLayout {
			return v
		}
		v = parent
	}
}
