package flexview

import (
	"math"

	"github.com/grindlemire/go-flexview/internal/engine"
	"github.com/grindlemire/go-flexview/internal/layout"
)

// measureView is the engine's measure callback for leaf views.
// Base views never self-measure.
func measureView(v *View, width float64, widthMode engine.MeasureMode, height float64, heightMode engine.MeasureMode) (float64, float64) {
	if v.IsBaseView() {
		return 0, 0
	}

	constrainedWidth := width
	if widthMode == engine.MeasureModeUndefined {
		constrainedWidth = math.Inf(1)
	}
	constrainedHeight := height
	if heightMode == engine.MeasureModeUndefined {
		constrainedHeight = math.Inf(1)
	}

	fits := v.content.SizeThatFits(Size{Width: constrainedWidth, Height: constrainedHeight})

	return sanitizeMeasurement(constrainedWidth, fits.Width, widthMode),
		sanitizeMeasurement(constrainedHeight, fits.Height, heightMode)
}

// sanitizeMeasurement resolves one axis of a measurement against its mode.
// The result is never negative, NaN or infinite.
func sanitizeMeasurement(constrained, measured float64, mode engine.MeasureMode) float64 {
	var result float64
	switch mode {
	case engine.MeasureModeExactly:
		result = constrained
	case engine.MeasureModeAtMost:
		result = min(constrained, measured)
	default:
		result = measured
	}
	return layout.NonNegative(result)
}
