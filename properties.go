package flexview

import (
	"fmt"

	"github.com/kjk/flex"
)

// Style properties forward to the engine node. Setters dirty the node only
// when the stored style actually changes.

func (l *Layout) style() flex.Style {
	return l.handle.Style()
}

func (l *Layout) setStyle(mutate func(*flex.Style)) {
	assertMainThread(l.cfg, "Layout style setter")
	l.handle.SetStyle(mutate)
}

// Direction returns the writing direction set on the node.
func (l *Layout) Direction() Direction { return l.style().Direction }

// SetDirection sets the writing direction used when computing from this node.
func (l *Layout) SetDirection(d Direction) {
	l.setStyle(func(s *flex.Style) { s.Direction = d })
}

func (l *Layout) FlexDirection() FlexDirection { return l.style().FlexDirection }

func (l *Layout) SetFlexDirection(d FlexDirection) {
	l.setStyle(func(s *flex.Style) { s.FlexDirection = d })
}

func (l *Layout) JustifyContent() Justify { return l.style().JustifyContent }

func (l *Layout) SetJustifyContent(j Justify) {
	l.setStyle(func(s *flex.Style) { s.JustifyContent = j })
}

func (l *Layout) AlignContent() Align { return l.style().AlignContent }

func (l *Layout) SetAlignContent(a Align) {
	l.setStyle(func(s *flex.Style) { s.AlignContent = a })
}

func (l *Layout) AlignItems() Align { return l.style().AlignItems }

func (l *Layout) SetAlignItems(a Align) {
	l.setStyle(func(s *flex.Style) { s.AlignItems = a })
}

func (l *Layout) AlignSelf() Align { return l.style().AlignSelf }

func (l *Layout) SetAlignSelf(a Align) {
	l.setStyle(func(s *flex.Style) { s.AlignSelf = a })
}

func (l *Layout) PositionType() PositionType { return l.style().PositionType }

func (l *Layout) SetPositionType(p PositionType) {
	l.setStyle(func(s *flex.Style) { s.PositionType = p })
}

func (l *Layout) FlexWrap() Wrap { return l.style().FlexWrap }

func (l *Layout) SetFlexWrap(w Wrap) {
	l.setStyle(func(s *flex.Style) { s.FlexWrap = w })
}

func (l *Layout) Overflow() Overflow { return l.style().Overflow }

func (l *Layout) SetOverflow(o Overflow) {
	l.setStyle(func(s *flex.Style) { s.Overflow = o })
}

func (l *Layout) Display() Display { return l.style().Display }

func (l *Layout) SetDisplay(d Display) {
	l.setStyle(func(s *flex.Style) { s.Display = d })
}

func (l *Layout) Flex() float64 { return float64(l.style().Flex) }

func (l *Layout) SetFlex(f float64) {
	l.setStyle(func(s *flex.Style) { s.Flex = float32(f) })
}

func (l *Layout) FlexGrow() float64 { return float64(l.style().FlexGrow) }

func (l *Layout) SetFlexGrow(f float64) {
	l.setStyle(func(s *flex.Style) { s.FlexGrow = float32(f) })
}

func (l *Layout) FlexShrink() float64 { return float64(l.style().FlexShrink) }

func (l *Layout) SetFlexShrink(f float64) {
	l.setStyle(func(s *flex.Style) { s.FlexShrink = float32(f) })
}

func (l *Layout) FlexBasis() Value { return valueFromFlex(l.style().FlexBasis) }

// SetFlexBasis accepts point, percent and auto values.
func (l *Layout) SetFlexBasis(v Value) {
	checkUnit("flexBasis", v, pointPercentOrAuto)
	l.setStyle(func(s *flex.Style) { s.FlexBasis = v.toFlex() })
}

// AspectRatio returns the width/height ratio, or NaN when unset.
func (l *Layout) AspectRatio() float64 { return float64(l.style().AspectRatio) }

func (l *Layout) SetAspectRatio(r float64) {
	l.setStyle(func(s *flex.Style) { s.AspectRatio = float32(r) })
}

// Edge properties

func checkEdge(property string, edge Edge) {
	if edge < flex.EdgeLeft || edge > flex.EdgeAll {
		panic(fmt.Sprintf("flexview: %s has no edge %d", property, edge))
	}
}

// Position returns the inset on edge.
func (l *Layout) Position(edge Edge) Value {
	checkEdge("position", edge)
	return valueFromFlex(l.style().Position[edge])
}

// SetPosition sets the inset on edge. Point and percent values only.
func (l *Layout) SetPosition(edge Edge, v Value) {
	checkEdge("position", edge)
	checkUnit("position", v, pointOrPercent)
	l.setStyle(func(s *flex.Style) { s.Position[edge] = v.toFlex() })
}

func (l *Layout) Left() Value       { return l.Position(EdgeLeft) }
func (l *Layout) SetLeft(v Value)   { l.SetPosition(EdgeLeft, v) }
func (l *Layout) Top() Value        { return l.Position(EdgeTop) }
func (l *Layout) SetTop(v Value)    { l.SetPosition(EdgeTop, v) }
func (l *Layout) Right() Value      { return l.Position(EdgeRight) }
func (l *Layout) SetRight(v Value)  { l.SetPosition(EdgeRight, v) }
func (l *Layout) Bottom() Value     { return l.Position(EdgeBottom) }
func (l *Layout) SetBottom(v Value) { l.SetPosition(EdgeBottom, v) }
func (l *Layout) Start() Value      { return l.Position(EdgeStart) }
func (l *Layout) SetStart(v Value)  { l.SetPosition(EdgeStart, v) }
func (l *Layout) End() Value        { return l.Position(EdgeEnd) }
func (l *Layout) SetEnd(v Value)    { l.SetPosition(EdgeEnd, v) }

// Margin returns the margin on edge.
func (l *Layout) Margin(edge Edge) Value {
	checkEdge("margin", edge)
	return valueFromFlex(l.style().Margin[edge])
}

// SetMargin sets the margin on edge. EdgeHorizontal, EdgeVertical and EdgeAll
// act as shorthands resolved by the engine.
func (l *Layout) SetMargin(edge Edge, v Value) {
	checkEdge("margin", edge)
	checkUnit("margin", v, pointPercentOrAuto)
	l.setStyle(func(s *flex.Style) { s.Margin[edge] = v.toFlex() })
}

// Padding returns the padding on edge.
func (l *Layout) Padding(edge Edge) Value {
	checkEdge("padding", edge)
	return valueFromFlex(l.style().Padding[edge])
}

// SetPadding sets the padding on edge. Point and percent values only.
func (l *Layout) SetPadding(edge Edge, v Value) {
	checkEdge("padding", edge)
	checkUnit("padding", v, pointOrPercent)
	l.setStyle(func(s *flex.Style) { s.Padding[edge] = v.toFlex() })
}

// BorderWidth returns the border width on edge, in points.
func (l *Layout) BorderWidth(edge Edge) float64 {
	checkEdge("borderWidth", edge)
	return float64(l.style().Border[edge].Value)
}

// SetBorderWidth sets the border width on edge, in points.
func (l *Layout) SetBorderWidth(edge Edge, width float64) {
	checkEdge("borderWidth", edge)
	l.setStyle(func(s *flex.Style) { s.Border[edge] = Points(width).toFlex() })
}

// Dimensions

func (l *Layout) Width() Value { return valueFromFlex(l.style().Dimensions[flex.DimensionWidth]) }

// SetWidth accepts point, percent and auto values.
func (l *Layout) SetWidth(v Value) {
	checkUnit("width", v, pointPercentOrAuto)
	l.setStyle(func(s *flex.Style) { s.Dimensions[flex.DimensionWidth] = v.toFlex() })
}

func (l *Layout) Height() Value { return valueFromFlex(l.style().Dimensions[flex.DimensionHeight]) }

// SetHeight accepts point, percent and auto values.
func (l *Layout) SetHeight(v Value) {
	checkUnit("height", v, pointPercentOrAuto)
	l.setStyle(func(s *flex.Style) { s.Dimensions[flex.DimensionHeight] = v.toFlex() })
}

func (l *Layout) MinWidth() Value { return valueFromFlex(l.style().MinDimensions[flex.DimensionWidth]) }

func (l *Layout) SetMinWidth(v Value) {
	checkUnit("minWidth", v, pointOrPercent)
	l.setStyle(func(s *flex.Style) { s.MinDimensions[flex.DimensionWidth] = v.toFlex() })
}

func (l *Layout) MinHeight() Value {
	return valueFromFlex(l.style().MinDimensions[flex.DimensionHeight])
}

func (l *Layout) SetMinHeight(v Value) {
	checkUnit("minHeight", v, pointOrPercent)
	l.setStyle(func(s *flex.Style) { s.MinDimensions[flex.DimensionHeight] = v.toFlex() })
}

func (l *Layout) MaxWidth() Value { return valueFromFlex(l.style().MaxDimensions[flex.DimensionWidth]) }

func (l *Layout) SetMaxWidth(v Value) {
	checkUnit("maxWidth", v, pointOrPercent)
	l.setStyle(func(s *flex.Style) { s.MaxDimensions[flex.DimensionWidth] = v.toFlex() })
}

func (l *Layout) MaxHeight() Value {
	return valueFromFlex(l.style().MaxDimensions[flex.DimensionHeight])
}

func (l *Layout) SetMaxHeight(v Value) {
	checkUnit("maxHeight", v, pointOrPercent)
	l.setStyle(func(s *flex.Style) { s.MaxDimensions[flex.DimensionHeight] = v.toFlex() })
}
