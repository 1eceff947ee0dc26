package engine

import (
	"math"
	"testing"

	"github.com/kjk/flex"
)

type owner struct {
	name string
	w, h float64
	hits int
}

func measureOwner(o *owner, width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) (float64, float64) {
	o.hits++
	return o.w, o.h
}

func newTestConfig() *Config {
	return NewConfig(1, true)
}

func TestNew_OwnerBackReference(t *testing.T) {
	o := &owner{name: "root"}
	h := New(newTestConfig(), o)

	if got := h.Owner(); got != o {
		t.Errorf("Owner() = %p, want %p", got, o)
	}
	if h.ChildCount() != 0 {
		t.Errorf("ChildCount() = %d, want 0", h.ChildCount())
	}
	if h.HasMeasureFunc() {
		t.Error("new handle should not have a measure func")
	}
}

func TestConfig_Accessors(t *testing.T) {
	cfg := NewConfig(2, true)
	if cfg.PointScaleFactor() != 2 {
		t.Errorf("PointScaleFactor() = %v, want 2", cfg.PointScaleFactor())
	}
	if !cfg.WebFlexBasis() {
		t.Error("WebFlexBasis() = false, want true")
	}
}

func TestHandle_InsertAndRemoveChildren(t *testing.T) {
	cfg := newTestConfig()
	parent := New(cfg, &owner{name: "parent"})
	a := New(cfg, &owner{name: "a"})
	b := New(cfg, &owner{name: "b"})

	parent.InsertChild(a, 0)
	parent.InsertChild(b, 1)

	if parent.ChildCount() != 2 {
		t.Fatalf("ChildCount() = %d, want 2", parent.ChildCount())
	}
	if parent.ChildAt(0) != a || parent.ChildAt(1) != b {
		t.Error("children should be [a, b] in insertion order")
	}
	if a.Parent() != parent {
		t.Error("a.Parent() should be parent")
	}
	if parent.ChildAt(5) != nil {
		t.Error("ChildAt out of range should be nil")
	}

	rev := parent.Revision()
	parent.RemoveAllChildren()
	if parent.ChildCount() != 0 {
		t.Errorf("ChildCount() after RemoveAllChildren = %d, want 0", parent.ChildCount())
	}
	if parent.Revision() != rev+1 {
		t.Errorf("Revision() = %d, want %d", parent.Revision(), rev+1)
	}
	if a.Parent() != nil {
		t.Error("removed child should have no parent")
	}

	// Removing from an empty node is not a mutation.
	parent.RemoveAllChildren()
	if parent.Revision() != rev+1 {
		t.Errorf("Revision() after empty RemoveAllChildren = %d, want %d", parent.Revision(), rev+1)
	}
}

func TestHandle_InsertChild_MovesFromOldParent(t *testing.T) {
	cfg := newTestConfig()
	first := New(cfg, &owner{})
	second := New(cfg, &owner{})
	child := New(cfg, &owner{})

	first.InsertChild(child, 0)
	second.InsertChild(child, 0)

	if first.ChildCount() != 0 {
		t.Errorf("old parent ChildCount() = %d, want 0", first.ChildCount())
	}
	if child.Parent() != second {
		t.Error("child should be attached to the new parent")
	}
}

func TestHandle_MeasuredLeaf(t *testing.T) {
	cfg := newTestConfig()
	root := New(cfg, &owner{name: "root"})
	leafOwner := &owner{name: "leaf", w: 30, h: 10}
	leaf := New(cfg, leafOwner)

	root.SetStyle(func(s *flex.Style) {
		s.Dimensions[flex.DimensionWidth] = flex.Value{Value: 100, Unit: flex.UnitPoint}
		s.Dimensions[flex.DimensionHeight] = flex.Value{Value: 50, Unit: flex.UnitPoint}
	})
	root.InsertChild(leaf, 0)
	leaf.SetMeasureFunc(measureOwner)

	root.Calculate(math.NaN(), math.NaN(), flex.DirectionLTR)

	if leafOwner.hits == 0 {
		t.Error("measure func should have been called for the leaf")
	}
	if got := root.Box(); got != (Box{Width: 100, Height: 50}) {
		t.Errorf("root Box() = %+v, want {0 0 100 50}", got)
	}
	if got := leaf.Box(); got != (Box{Width: 100, Height: 10}) {
		t.Errorf("leaf Box() = %+v, want {0 0 100 10}", got)
	}
	if root.IsDirty() || leaf.IsDirty() {
		t.Error("nodes should be clean after Calculate")
	}

	leaf.MarkDirty()
	if !leaf.IsDirty() || !root.IsDirty() {
		t.Error("MarkDirty on a leaf should dirty it and its ancestors")
	}
}

func TestHandle_MarkDirty_NoOpWithoutMeasureFunc(t *testing.T) {
	h := New(newTestConfig(), &owner{})
	h.Calculate(10, 10, flex.DirectionLTR)

	h.MarkDirty()

	if h.IsDirty() {
		t.Error("MarkDirty without a measure func should be a no-op")
	}
}

func TestHandle_SetMeasureFunc_Clear(t *testing.T) {
	h := New(newTestConfig(), &owner{})
	h.SetMeasureFunc(measureOwner)
	rev := h.Revision()

	h.SetMeasureFunc(nil)
	if h.HasMeasureFunc() {
		t.Error("SetMeasureFunc(nil) should clear the callback")
	}
	if h.Revision() != rev+1 {
		t.Errorf("Revision() = %d, want %d", h.Revision(), rev+1)
	}

	h.SetMeasureFunc(nil)
	if h.Revision() != rev+1 {
		t.Error("clearing an absent callback should not count as a mutation")
	}
}

func TestHandle_SetStyle_DirtiesOnlyOnChange(t *testing.T) {
	h := New(newTestConfig(), &owner{})
	h.Calculate(10, 10, flex.DirectionLTR)

	h.SetStyle(func(s *flex.Style) {})
	if h.IsDirty() {
		t.Error("unchanged style should not dirty the node")
	}

	h.SetStyle(func(s *flex.Style) { s.FlexGrow = 1 })
	if !h.IsDirty() {
		t.Error("changed style should dirty the node")
	}
	if h.Style().FlexGrow != 1 {
		t.Errorf("Style().FlexGrow = %v, want 1", h.Style().FlexGrow)
	}
}

func TestHandle_SetStyle_AspectRatio(t *testing.T) {
	h := New(newTestConfig(), &owner{})
	h.Calculate(10, 10, flex.DirectionLTR)

	h.SetStyle(func(s *flex.Style) { s.AspectRatio = 2 })

	if h.Style().AspectRatio != 2 {
		t.Errorf("Style().AspectRatio = %v, want 2", h.Style().AspectRatio)
	}
	if !h.IsDirty() {
		t.Error("aspect ratio change should dirty the node")
	}
	if h.Style().Display != flex.DisplayFlex {
		t.Error("display should be restored after dirtying")
	}
}

func TestHandle_Release(t *testing.T) {
	cfg := newTestConfig()
	parent := New(cfg, &owner{})
	child := New(cfg, &owner{})
	grandchild := New(cfg, &owner{})
	parent.InsertChild(child, 0)
	child.InsertChild(grandchild, 0)

	child.ScheduleRelease()
	if n := DrainReleased(); n != 1 {
		t.Fatalf("DrainReleased() = %d, want 1", n)
	}

	if !child.IsReleased() {
		t.Error("child should be released")
	}
	if parent.ChildCount() != 0 {
		t.Errorf("parent ChildCount() = %d, want 0", parent.ChildCount())
	}
	if grandchild.Parent() != nil {
		t.Error("grandchild should be detached")
	}
	if n := DrainReleased(); n != 0 {
		t.Errorf("second DrainReleased() = %d, want 0", n)
	}

	// Releasing twice is harmless.
	child.Release()
}

func TestSanitize(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := map[string]struct {
		top, left, width, height float32
		want                     Box
	}{
		"finite":         {top: 1, left: 2, width: 3, height: 4, want: Box{Top: 1, Left: 2, Width: 3, Height: 4}},
		"nan everywhere": {top: nan, left: nan, width: nan, height: nan, want: Box{}},
		"infinite":       {top: inf, left: -inf, width: inf, height: inf, want: Box{}},
		"negative size":  {top: -3, left: -4, width: -5, height: -1, want: Box{Top: -3, Left: -4}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := sanitize(tt.top, tt.left, tt.width, tt.height); got != tt.want {
				t.Errorf("sanitize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
