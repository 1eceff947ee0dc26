package flexview

import (
	"math"

	"github.com/grindlemire/go-flexview/internal/layout"
)

// View is a node of the host view hierarchy.
// It owns its subviews directly and, once layout is enabled, its Layout facade.
type View struct {
	name string

	// Tree structure (single source of truth)
	subviews  []*View
	superview *View

	// Geometry: center and bounds are stored, frame is derived from them.
	center    Point
	bounds    Rect
	transform Transform
	yUp       bool // Y grows upward in this view's coordinate space

	// Intrinsic content; nil marks a base view that never self-measures.
	content ContentSizer

	// Constraint-based auto-sizing
	usesConstraints        bool
	maxLayoutWidth         float64 // NaN = unset
	needsLayout            bool
	intrinsicInvalidations int

	cfg  *Config
	yoga *Layout

	// Deferred facade configuration from WithLayout options
	pendingLayout []func(*Layout)

	// Observers
	frameObservers     []func(*View)
	boundsObservers    []func(*View)
	subviewObservers   []func(*View)
	intrinsicObservers []func(*View)
	onLayoutSubviews   func(*View)
}

// NewView creates a new View with the given options.
// By default a View has a zero frame, no content and layout disabled.
func NewView(opts ...ViewOption) *View {
	v := &View{
		transform:      layout.Identity(),
		maxLayoutWidth: math.NaN(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.cfg == nil {
		v.cfg = DefaultConfig()
	}
	if len(v.pendingLayout) > 0 {
		l := v.Yoga()
		for _, fn := range v.pendingLayout {
			fn(l)
		}
		v.pendingLayout = nil
	}
	return v
}

// Name returns the view's debug name.
func (v *View) Name() string {
	return v.name
}

// SetName sets the view's debug name.
func (v *View) SetName(name string) {
	v.name = name
}

// Config returns the layout configuration the view was created with.
func (v *View) Config() *Config {
	return v.cfg
}

// Content returns the view's intrinsic content, or nil for a base view.
func (v *View) Content() ContentSizer {
	return v.content
}

// SetContent replaces the view's intrinsic content and marks its layout dirty.
func (v *View) SetContent(content ContentSizer) {
	v.content = content
	if v.yoga != nil {
		v.yoga.MarkDirty()
	}
}

// IsBaseView reports whether the view carries no intrinsic content.
func (v *View) IsBaseView() bool {
	return v.content == nil
}

// SizeThatFits returns the content's natural size within constraint.
// Base views report their current bounds size.
func (v *View) SizeThatFits(constraint Size) Size {
	if v.content == nil {
		return v.bounds.Size()
	}
	return v.content.SizeThatFits(constraint)
}

// IsYogaEnabled reports whether the layout facade has been created.
// It never creates the facade.
func (v *View) IsYogaEnabled() bool {
	return v.yoga != nil
}

// UsesConstraints reports whether the view participates in constraint-based
// auto-sizing, so intrinsic size changes must be propagated to the host.
func (v *View) UsesConstraints() bool {
	return v.usesConstraints
}

// SetUsesConstraints toggles constraint-based auto-sizing participation.
func (v *View) SetUsesConstraints(enabled bool) {
	v.usesConstraints = enabled
}

// IsFlipped reports whether Y grows downward in this view's coordinate space.
func (v *View) IsFlipped() bool {
	return !v.yUp
}

// SetFlipped selects the coordinate convention for this view's subviews.
func (v *View) SetFlipped(flipped bool) {
	v.yUp = !flipped
}

// String returns the view's name, or "view" when unnamed.
func (v *View) String() string {
	if v.name == "" {
		return "view"
	}
	return v.name
}
