package flexview

import (
	"math"
	"testing"

	"github.com/grindlemire/go-flexview/internal/engine"
)

func TestSanitizeMeasurement(t *testing.T) {
	type tc struct {
		constrained float64
		measured    float64
		mode        engine.MeasureMode
		want        float64
	}

	tests := map[string]tc{
		"exactly uses constraint":       {constrained: 40, measured: 10, mode: engine.MeasureModeExactly, want: 40},
		"at most clamps":                {constrained: 40, measured: 90, mode: engine.MeasureModeAtMost, want: 40},
		"at most keeps smaller":         {constrained: 40, measured: 15, mode: engine.MeasureModeAtMost, want: 15},
		"undefined uses measured":       {constrained: math.Inf(1), measured: 77, mode: engine.MeasureModeUndefined, want: 77},
		"NaN measurement":               {constrained: math.Inf(1), measured: math.NaN(), mode: engine.MeasureModeUndefined, want: 0},
		"infinite measurement":          {constrained: math.Inf(1), measured: math.Inf(1), mode: engine.MeasureModeUndefined, want: 0},
		"negative measurement":          {constrained: 10, measured: -5, mode: engine.MeasureModeAtMost, want: 0},
		"NaN measurement under at most": {constrained: 10, measured: math.NaN(), mode: engine.MeasureModeAtMost, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := sanitizeMeasurement(tt.constrained, tt.measured, tt.mode)
			if got != tt.want {
				t.Errorf("sanitizeMeasurement(%v, %v, %v) = %v, want %v",
					tt.constrained, tt.measured, tt.mode, got, tt.want)
			}
		})
	}
}

func TestMeasureView_SanitizesContent(t *testing.T) {
	v := NewView(WithContent(FixedContent{Width: math.NaN(), Height: -5}))

	w, h := measureView(v, math.NaN(), engine.MeasureModeUndefined, 10, engine.MeasureModeAtMost)

	if w != 0 || h != 0 {
		t.Errorf("measureView() = (%v, %v), want (0, 0)", w, h)
	}
}

func TestMeasureView_BaseViewIsZero(t *testing.T) {
	v := NewView()
	v.SetBounds(NewRect(0, 0, 50, 50))

	w, h := measureView(v, 100, engine.MeasureModeAtMost, 100, engine.MeasureModeAtMost)

	if w != 0 || h != 0 {
		t.Errorf("measureView() = (%v, %v), want (0, 0)", w, h)
	}
}

func TestMeasureView_PassesConstraints(t *testing.T) {
	var got Size
	v := NewView(WithContent(ContentFunc(func(constraint Size) Size {
		got = constraint
		return Size{Width: 12, Height: 8}
	})))

	w, h := measureView(v, math.NaN(), engine.MeasureModeUndefined, 30, engine.MeasureModeExactly)

	if !math.IsInf(got.Width, 1) {
		t.Errorf("constraint width = %v, want +Inf for an undefined axis", got.Width)
	}
	if got.Height != 30 {
		t.Errorf("constraint height = %v, want 30", got.Height)
	}
	if w != 12 || h != 30 {
		t.Errorf("measureView() = (%v, %v), want (12, 30)", w, h)
	}
}

func TestMeasure_WrapsTextToAvailableWidth(t *testing.T) {
	cfg := newTestConfig(t)
	label := NewView(WithConfig(cfg), WithText("hello brave new world"), WithLayout(func(*Layout) {}))
	root := NewView(
		WithConfig(cfg),
		WithFrame(NewRect(0, 0, 11, 10)),
		WithLayout(func(l *Layout) { l.SetAlignItems(AlignFlexStart) }),
		WithSubviews(label),
	)

	root.Yoga().ApplyLayout()

	if got := label.Frame(); got != NewRect(0, 0, 11, 2) {
		t.Errorf("label Frame() = %v, want 0,0 11x2", got)
	}
}
