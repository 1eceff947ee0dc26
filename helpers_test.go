package flexview

import (
	"fmt"
	"testing"
)

func newTestConfig(t *testing.T, opts ...ConfigOption) *Config {
	t.Helper()
	cfg, err := NewConfig(opts...)
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	return cfg
}

// newGrowRow builds a row container of the given size holding n children
// that each grow with factor 1.
func newGrowRow(cfg *Config, width, height float64, n int) (*View, []*View) {
	root := NewView(
		WithName("root"),
		WithConfig(cfg),
		WithFrame(NewRect(0, 0, width, height)),
		WithLayout(func(l *Layout) {
			l.SetFlexDirection(FlexDirectionRow)
		}),
	)
	children := make([]*View, n)
	for i := range children {
		children[i] = NewView(
			WithName(fmt.Sprintf("child%d", i)),
			WithConfig(cfg),
			WithLayout(func(l *Layout) {
				l.SetFlexGrow(1)
			}),
		)
		root.AddSubview(children[i])
	}
	return root, children
}

func framesOf(views ...*View) []Rect {
	result := make([]Rect, len(views))
	for i, v := range views {
		result[i] = v.Frame()
	}
	return result
}

func nodeChildren(v *View) []*View {
	var result []*View
	for _, h := range v.Yoga().handle.Children() {
		result = append(result, h.Owner())
	}
	return result
}

func names(views ...*View) []string {
	result := make([]string, len(views))
	for i, v := range views {
		result[i] = v.Name()
	}
	return result
}
