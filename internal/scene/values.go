package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-flexview"
)

// parseLength parses "12", "12pt", "50%" or "auto".
func parseLength(s string) (flexview.Value, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return flexview.Undefined(), nil
	case strings.EqualFold(s, "auto"):
		return flexview.Auto(), nil
	case strings.HasSuffix(s, "%"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return flexview.Value{}, fmt.Errorf("invalid percentage %q", s)
		}
		return flexview.Percent(n), nil
	default:
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "pt"), 64)
		if err != nil {
			return flexview.Value{}, fmt.Errorf("invalid length %q", s)
		}
		return flexview.Points(n), nil
	}
}

var (
	directions = map[string]flexview.Direction{
		"inherit": flexview.DirectionInherit,
		"ltr":     flexview.DirectionLTR,
		"rtl":     flexview.DirectionRTL,
	}
	flexDirections = map[string]flexview.FlexDirection{
		"row":            flexview.FlexDirectionRow,
		"row-reverse":    flexview.FlexDirectionRowReverse,
		"column":         flexview.FlexDirectionColumn,
		"column-reverse": flexview.FlexDirectionColumnReverse,
	}
	justifies = map[string]flexview.Justify{
		"flex-start":    flexview.JustifyFlexStart,
		"center":        flexview.JustifyCenter,
		"flex-end":      flexview.JustifyFlexEnd,
		"space-between": flexview.JustifySpaceBetween,
		"space-around":  flexview.JustifySpaceAround,
	}
	aligns = map[string]flexview.Align{
		"auto":          flexview.AlignAuto,
		"flex-start":    flexview.AlignFlexStart,
		"center":        flexview.AlignCenter,
		"flex-end":      flexview.AlignFlexEnd,
		"stretch":       flexview.AlignStretch,
		"baseline":      flexview.AlignBaseline,
		"space-between": flexview.AlignSpaceBetween,
		"space-around":  flexview.AlignSpaceAround,
	}
	positionTypes = map[string]flexview.PositionType{
		"relative": flexview.PositionTypeRelative,
		"absolute": flexview.PositionTypeAbsolute,
	}
	wraps = map[string]flexview.Wrap{
		"nowrap": flexview.WrapNoWrap,
		"wrap":   flexview.WrapWrap,
	}
	overflows = map[string]flexview.Overflow{
		"visible": flexview.OverflowVisible,
		"scroll":  flexview.OverflowScroll,
	}
	displays = map[string]flexview.Display{
		"flex": flexview.DisplayFlex,
		"none": flexview.DisplayNone,
	}
	edges = map[string]flexview.Edge{
		"left":       flexview.EdgeLeft,
		"top":        flexview.EdgeTop,
		"right":      flexview.EdgeRight,
		"bottom":     flexview.EdgeBottom,
		"start":      flexview.EdgeStart,
		"end":        flexview.EdgeEnd,
		"horizontal": flexview.EdgeHorizontal,
		"vertical":   flexview.EdgeVertical,
		"all":        flexview.EdgeAll,
	}
)

// lookup resolves a keyword; the empty string keeps the engine default.
func lookup[T any](property, key string, table map[string]T) (value T, ok bool, err error) {
	if key == "" {
		return value, false, nil
	}
	value, ok = table[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return value, false, fmt.Errorf("unknown %s %q", property, key)
	}
	return value, true, nil
}
