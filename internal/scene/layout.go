package scene

import (
	"fmt"

	"github.com/grindlemire/go-flexview"
)

// Frame is the computed geometry of one view.
type Frame struct {
	Path     string   `json:"path"`
	Name     string   `json:"name"`
	Depth    int      `json:"depth"`
	Text     string   `json:"text,omitempty"`
	Lines    []string `json:"lines,omitempty"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	AbsX     float64  `json:"absX"`
	AbsY     float64  `json:"absY"`
	Excluded bool     `json:"excluded,omitempty"`
}

// Result holds a laid out scene.
type Result struct {
	Root   *flexview.View
	Size   flexview.Size
	Frames []Frame
}

// Layout builds s, applies layout within the scene size and collects the
// frames in depth-first order.
func Layout(s *Scene, cfg *flexview.Config) (*Result, error) {
	root, err := Build(s, cfg)
	if err != nil {
		return nil, err
	}
	if !root.Yoga().IsIncludedInLayout() {
		return nil, fmt.Errorf("root %s is excluded from layout", root)
	}

	root.SetFrame(flexview.NewRect(0, 0, s.Width, s.Height))

	var flexibility flexview.Flexibility
	if s.Width == 0 {
		flexibility |= flexview.FlexibleWidth
	}
	if s.Height == 0 {
		flexibility |= flexview.FlexibleHeight
	}
	root.Yoga().ApplyLayoutWithFlexibility(false, flexibility)

	res := &Result{Root: root, Size: root.Frame().Size()}
	collect(root, "root", 0, flexview.Point{}, &res.Frames)
	return res, nil
}

func collect(v *flexview.View, path string, depth int, parentOrigin flexview.Point, out *[]Frame) {
	f := v.Frame()
	abs := parentOrigin.Add(f.Origin())

	frame := Frame{
		Path:     path,
		Name:     v.Name(),
		Depth:    depth,
		X:        f.X,
		Y:        f.Y,
		Width:    f.Width,
		Height:   f.Height,
		AbsX:     abs.X,
		AbsY:     abs.Y,
		Excluded: !v.Yoga().IsIncludedInLayout(),
	}
	if tc, ok := v.Content().(*flexview.TextContent); ok {
		frame.Text = tc.Text
		frame.Lines = tc.Lines(f.Width)
	}
	*out = append(*out, frame)

	for i, child := range v.Subviews() {
		collect(child, fmt.Sprintf("%s/%d", path, i), depth+1, abs, out)
	}
}
