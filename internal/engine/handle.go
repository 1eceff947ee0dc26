package engine

import (
	"weak"

	"github.com/kjk/flex"
)

// MeasureMode is how a measure callback must interpret a constraint.
type MeasureMode = flex.MeasureMode

const (
	MeasureModeUndefined = flex.MeasureModeUndefined
	MeasureModeExactly   = flex.MeasureModeExactly
	MeasureModeAtMost    = flex.MeasureModeAtMost
)

// MeasureFunc returns the natural size of a leaf owner under the given constraints.
type MeasureFunc[T any] func(owner *T, width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) (float64, float64)

// Handle exclusively owns one engine node.
type Handle[T any] struct {
	node  *flex.Node
	owner weak.Pointer[T]

	// revision counts structural mutations (child edits, measure func swaps).
	revision uint64
	released bool
}

// New creates a node with cfg, owned by the returned handle.
// owner is referenced weakly; the handle never keeps it alive.
func New[T any](cfg *Config, owner *T) *Handle[T] {
	h := &Handle[T]{
		node:  flex.NewNodeWithConfig(cfg.cfg),
		owner: weak.Make(owner),
	}
	h.node.Context = h
	return h
}

// Owner resolves the back-reference. Returns nil once the owner is gone.
func (h *Handle[T]) Owner() *T {
	return h.owner.Value()
}

// Revision returns the number of structural mutations applied so far.
func (h *Handle[T]) Revision() uint64 {
	return h.revision
}

// IsReleased reports whether Release has run.
func (h *Handle[T]) IsReleased() bool {
	return h.released
}

// Box returns the sanitized result of the last Calculate covering this node.
func (h *Handle[T]) Box() Box {
	l := &h.node.Layout
	return sanitize(
		l.Position[flex.EdgeTop],
		l.Position[flex.EdgeLeft],
		l.Dimensions[flex.DimensionWidth],
		l.Dimensions[flex.DimensionHeight],
	)
}

// ResolvedDirection returns the layout direction computed by the engine.
func (h *Handle[T]) ResolvedDirection() flex.Direction {
	return h.node.Layout.Direction
}

// IsDirty returns whether the engine will recompute this node.
func (h *Handle[T]) IsDirty() bool {
	return h.node.IsDirty
}

// ChildCount returns the number of engine children.
func (h *Handle[T]) ChildCount() int {
	return len(h.node.Children)
}

// ChildAt returns the handle owning the child node at index i, or nil.
func (h *Handle[T]) ChildAt(i int) *Handle[T] {
	child := h.node.GetChild(i)
	if child == nil {
		return nil
	}
	owner, _ := child.Context.(*Handle[T])
	return owner
}

// Children returns the handles of all engine children in order.
func (h *Handle[T]) Children() []*Handle[T] {
	result := make([]*Handle[T], 0, len(h.node.Children))
	for i := range h.node.Children {
		result = append(result, h.ChildAt(i))
	}
	return result
}

// Parent returns the handle of the engine parent, or nil for a root.
func (h *Handle[T]) Parent() *Handle[T] {
	if h.node.Parent == nil {
		return nil
	}
	parent, _ := h.node.Parent.Context.(*Handle[T])
	return parent
}

// InsertChild inserts child at index. A child still attached to another
// parent is detached from it first.
func (h *Handle[T]) InsertChild(child *Handle[T], index int) {
	if old := child.node.Parent; old != nil {
		old.RemoveChild(child.node)
	}
	h.node.InsertChild(child.node, index)
	h.revision++
}

// RemoveAllChildren detaches every engine child.
func (h *Handle[T]) RemoveAllChildren() {
	if len(h.node.Children) == 0 {
		return
	}
	for i := len(h.node.Children) - 1; i >= 0; i-- {
		h.node.RemoveChild(h.node.Children[i])
	}
	h.revision++
}

// HasMeasureFunc reports whether the node is a measured leaf.
func (h *Handle[T]) HasMeasureFunc() bool {
	return h.node.Measure != nil
}

// SetMeasureFunc installs fn as the node's measure callback, or clears it when fn is nil.
// The engine refuses a measure callback on a node with children.
func (h *Handle[T]) SetMeasureFunc(fn MeasureFunc[T]) {
	if fn == nil {
		if h.node.Measure != nil {
			h.node.SetMeasureFunc(nil)
			h.revision++
		}
		return
	}
	h.node.SetMeasureFunc(func(n *flex.Node, width float32, widthMode flex.MeasureMode, height float32, heightMode flex.MeasureMode) flex.Size {
		handle, _ := n.Context.(*Handle[T])
		if handle == nil {
			return flex.Size{}
		}
		owner := handle.Owner()
		if owner == nil {
			return flex.Size{}
		}
		w, ht := fn(owner, float64(width), widthMode, float64(height), heightMode)
		return flex.Size{Width: float32(w), Height: float32(ht)}
	})
	h.revision++
}

// MarkDirty marks a measured leaf dirty. It is a no-op on other nodes:
// only leaves carry measured content.
func (h *Handle[T]) MarkDirty() {
	if h.node.Measure == nil {
		return
	}
	h.node.MarkDirty()
}

// Calculate runs the engine on the tree rooted at this node.
// NaN on an axis leaves that axis unconstrained.
func (h *Handle[T]) Calculate(width, height float64, direction flex.Direction) {
	flex.CalculateLayout(h.node, float32(width), float32(height), direction)
}
