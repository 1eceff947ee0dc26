// layout.go re-exports geometry from internal/layout and style enums from the engine.
// Any changes to internal/layout types must be mirrored here.
package flexview

import (
	"github.com/kjk/flex"

	"github.com/grindlemire/go-flexview/internal/layout"
)

// Rect represents a rectangle with position and dimensions in points.
type Rect = layout.Rect

// Point represents an x/y coordinate.
type Point = layout.Point

// Size represents a width/height pair.
type Size = layout.Size

// Transform is a 2D affine transform applied around a view's center.
type Transform = layout.Transform

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// UndefinedSize returns a Size with both axes unconstrained.
func UndefinedSize() Size {
	return layout.Undefined()
}

// IdentityTransform returns the identity transform.
func IdentityTransform() Transform {
	return layout.Identity()
}

// ScaleTransform returns a transform scaling by (sx, sy).
func ScaleTransform(sx, sy float64) Transform {
	return layout.Scale(sx, sy)
}

// TranslationTransform returns a transform translating by (tx, ty).
func TranslationTransform(tx, ty float64) Transform {
	return layout.Translation(tx, ty)
}

// Direction is the resolved writing direction (LTR/RTL).
type Direction = flex.Direction

const (
	DirectionInherit = flex.DirectionInherit
	DirectionLTR     = flex.DirectionLTR
	DirectionRTL     = flex.DirectionRTL
)

// FlexDirection specifies the main axis for laying out children.
type FlexDirection = flex.FlexDirection

const (
	FlexDirectionColumn        = flex.FlexDirectionColumn
	FlexDirectionColumnReverse = flex.FlexDirectionColumnReverse
	FlexDirectionRow           = flex.FlexDirectionRow
	FlexDirectionRowReverse    = flex.FlexDirectionRowReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = flex.Justify

const (
	JustifyFlexStart    = flex.JustifyFlexStart
	JustifyCenter       = flex.JustifyCenter
	JustifyFlexEnd      = flex.JustifyFlexEnd
	JustifySpaceBetween = flex.JustifySpaceBetween
	JustifySpaceAround  = flex.JustifySpaceAround
)

// Align specifies how children are aligned along the cross axis.
type Align = flex.Align

const (
	AlignAuto         = flex.AlignAuto
	AlignFlexStart    = flex.AlignFlexStart
	AlignCenter       = flex.AlignCenter
	AlignFlexEnd      = flex.AlignFlexEnd
	AlignStretch      = flex.AlignStretch
	AlignBaseline     = flex.AlignBaseline
	AlignSpaceBetween = flex.AlignSpaceBetween
	AlignSpaceAround  = flex.AlignSpaceAround
)

// PositionType selects relative or absolute positioning.
type PositionType = flex.PositionType

const (
	PositionTypeRelative = flex.PositionTypeRelative
	PositionTypeAbsolute = flex.PositionTypeAbsolute
)

// Wrap controls whether children wrap onto multiple lines.
type Wrap = flex.Wrap

const (
	WrapNoWrap = flex.WrapNoWrap
	WrapWrap   = flex.WrapWrap
)

// Overflow controls how content outside the box affects layout.
type Overflow = flex.Overflow

const (
	OverflowVisible = flex.OverflowVisible
	OverflowScroll  = flex.OverflowScroll
)

// Display removes a node from layout when set to DisplayNone.
type Display = flex.Display

const (
	DisplayFlex = flex.DisplayFlex
	DisplayNone = flex.DisplayNone
)

// Edge selects one side, or a group of sides, of a box.
type Edge = flex.Edge

const (
	EdgeLeft       = flex.EdgeLeft
	EdgeTop        = flex.EdgeTop
	EdgeRight      = flex.EdgeRight
	EdgeBottom     = flex.EdgeBottom
	EdgeStart      = flex.EdgeStart
	EdgeEnd        = flex.EdgeEnd
	EdgeHorizontal = flex.EdgeHorizontal
	EdgeVertical   = flex.EdgeVertical
	EdgeAll        = flex.EdgeAll
)
