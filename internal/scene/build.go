package scene

import (
	"fmt"

	"github.com/grindlemire/go-flexview"
)

// Build creates the view tree for s. Every node is layout-enabled; nodes
// marked exclude keep their facade but are left out of layout.
func Build(s *Scene, cfg *flexview.Config) (*flexview.View, error) {
	if s == nil || s.Root == nil {
		return nil, ErrNoRoot
	}
	return buildNode(s.Root, s.YUp, cfg, "root")
}

func buildNode(n *Node, yUp bool, cfg *flexview.Config, path string) (*flexview.View, error) {
	name := n.Name
	if name == "" {
		name = path
	}

	opts := []flexview.ViewOption{flexview.WithName(name), flexview.WithConfig(cfg)}
	if n.Text != "" {
		opts = append(opts, flexview.WithText(n.Text))
	}
	if yUp {
		opts = append(opts, flexview.WithYUp())
	}
	v := flexview.NewView(opts...)

	if err := applyStyle(v.Yoga(), &n.Style); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	v.Yoga().SetIncludedInLayout(!n.Exclude)

	for i, child := range n.Children {
		if child == nil {
			return nil, fmt.Errorf("%s: child %d is empty", name, i)
		}
		cv, err := buildNode(child, yUp, cfg, fmt.Sprintf("%s/%d", path, i))
		if err != nil {
			return nil, err
		}
		v.AddSubview(cv)
	}
	return v, nil
}

type lengthSetter struct {
	property  string
	raw       string
	allowAuto bool
	set       func(flexview.Value)
}

func applyStyle(l *flexview.Layout, s *Style) error {
	if err := applyKeywords(l, s); err != nil {
		return err
	}

	if s.Flex != nil {
		l.SetFlex(*s.Flex)
	}
	if s.FlexGrow != nil {
		l.SetFlexGrow(*s.FlexGrow)
	}
	if s.FlexShrink != nil {
		l.SetFlexShrink(*s.FlexShrink)
	}
	if s.AspectRatio != nil {
		l.SetAspectRatio(*s.AspectRatio)
	}

	lengths := []lengthSetter{
		{"flexBasis", s.FlexBasis, true, l.SetFlexBasis},
		{"width", s.Width, true, l.SetWidth},
		{"height", s.Height, true, l.SetHeight},
		{"minWidth", s.MinWidth, false, l.SetMinWidth},
		{"minHeight", s.MinHeight, false, l.SetMinHeight},
		{"maxWidth", s.MaxWidth, false, l.SetMaxWidth},
		{"maxHeight", s.MaxHeight, false, l.SetMaxHeight},
	}
	for _, e := range []struct {
		property  string
		values    Edges
		allowAuto bool
		set       func(flexview.Edge, flexview.Value)
	}{
		{"inset", s.Inset, false, l.SetPosition},
		{"margin", s.Margin, true, l.SetMargin},
		{"padding", s.Padding, false, l.SetPadding},
	} {
		more, err := edgeLengths(e.property, e.values, e.allowAuto, e.set)
		if err != nil {
			return err
		}
		lengths = append(lengths, more...)
	}

	for _, ls := range lengths {
		if ls.raw == "" {
			continue
		}
		v, err := parseLength(ls.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", ls.property, err)
		}
		if v.IsAuto() && !ls.allowAuto {
			return fmt.Errorf("%s: auto is not supported", ls.property)
		}
		ls.set(v)
	}

	for key, width := range s.Border {
		edge, _, err := lookup("border edge", key, edges)
		if err != nil {
			return err
		}
		if width < 0 {
			return fmt.Errorf("border %s: width must not be negative", key)
		}
		l.SetBorderWidth(edge, width)
	}
	return nil
}

func edgeLengths(property string, values Edges, allowAuto bool, set func(flexview.Edge, flexview.Value)) ([]lengthSetter, error) {
	var result []lengthSetter
	for key, raw := range values {
		edge, _, err := lookup(property+" edge", key, edges)
		if err != nil {
			return nil, err
		}
		result = append(result, lengthSetter{
			property:  property + " " + key,
			raw:       raw,
			allowAuto: allowAuto,
			set:       func(v flexview.Value) { set(edge, v) },
		})
	}
	return result, nil
}

func applyKeywords(l *flexview.Layout, s *Style) error {
	if v, ok, err := lookup("direction", s.Direction, directions); err != nil {
		return err
	} else if ok {
		l.SetDirection(v)
	}
	if v, ok, err := lookup("flexDirection", s.FlexDirection, flexDirections); err != nil {
		return err
	} else if ok {
		l.SetFlexDirection(v)
	}
	if v, ok, err := lookup("justifyContent", s.JustifyContent, justifies); err != nil {
		return err
	} else if ok {
		l.SetJustifyContent(v)
	}
	if v, ok, err := lookup("alignContent", s.AlignContent, aligns); err != nil {
		return err
	} else if ok {
		l.SetAlignContent(v)
	}
	if v, ok, err := lookup("alignItems", s.AlignItems, aligns); err != nil {
		return err
	} else if ok {
		l.SetAlignItems(v)
	}
	if v, ok, err := lookup("alignSelf", s.AlignSelf, aligns); err != nil {
		return err
	} else if ok {
		l.SetAlignSelf(v)
	}
	if v, ok, err := lookup("position", s.Position, positionTypes); err != nil {
		return err
	} else if ok {
		l.SetPositionType(v)
	}
	if v, ok, err := lookup("flexWrap", s.FlexWrap, wraps); err != nil {
		return err
	} else if ok {
		l.SetFlexWrap(v)
	}
	if v, ok, err := lookup("overflow", s.Overflow, overflows); err != nil {
		return err
	} else if ok {
		l.SetOverflow(v)
	}
	if v, ok, err := lookup("display", s.Display, displays); err != nil {
		return err
	} else if ok {
		l.SetDisplay(v)
	}
	return nil
}
