package flexview

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-flexview/internal/layout"
)

// applyLayoutToViewHierarchy writes the computed boxes of v and its eligible
// descendants onto their frames. Descendants always start from a zero origin;
// only v itself honours preserveOrigin.
//
// Committing a frame notifies observers, which may re-enter this function for
// the same view; the nested call sees isApplyingLayout and returns.
func applyLayoutToViewHierarchy(v *View, preserveOrigin bool) {
	assertMainThread(v.cfg, "applyLayoutToViewHierarchy")

	l := v.Yoga()
	if l.isApplyingLayout || !l.includedInLayout {
		return
	}

	l.isApplyingLayout = true
	defer func() { l.isApplyingLayout = false }()

	if !l.IsLeaf() {
		for _, s := range eligibleSubviews(v) {
			applyLayoutToViewHierarchy(s, false)
		}
	}

	box := l.handle.Box()
	size := Size{Width: box.Width, Height: box.Height}
	identity := v.transform.IsIdentity()

	var origin Point
	if preserveOrigin {
		if identity {
			origin = v.Frame().Origin()
		} else {
			// The frame of a transformed view is its bounding box; position
			// through the center so the transform stays meaningful.
			origin = Point{
				X: v.center.X - v.bounds.Width/2,
				Y: v.center.Y - v.bounds.Height/2,
			}
		}
	}

	frame := layout.RectFrom(origin, size).Offset(box.Left, box.Top)

	// The engine is top-down; reflect through the parent's height when the
	// superview's Y axis grows upward.
	if sv := v.superview; sv != nil && !sv.IsFlipped() && sv.yoga != nil && sv.yoga.includedInLayout {
		parentHeight := sv.yoga.handle.Box().Height
		frame.Y = parentHeight - frame.MaxY()
	}

	if identity {
		v.SetFrame(frame)
	} else {
		bounds := v.bounds
		bounds.Width, bounds.Height = size.Width, size.Height
		v.SetBounds(bounds)
		v.SetCenter(frame.Center())
	}

	Logger().Debug("applied layout",
		zap.Stringer("view", v),
		zap.Float64("x", frame.X),
		zap.Float64("y", frame.Y),
		zap.Float64("width", frame.Width),
		zap.Float64("height", frame.Height))
}
