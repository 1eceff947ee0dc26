package flexview

// Observers replace interception of the host's native entry points: the host
// view reports frame, bounds, hierarchy and intrinsic-size changes through them.

// OnFrameChange registers fn to run after every SetFrame.
func (v *View) OnFrameChange(fn func(*View)) {
	v.frameObservers = append(v.frameObservers, fn)
}

// OnBoundsChange registers fn to run after every SetBounds.
func (v *View) OnBoundsChange(fn func(*View)) {
	v.boundsObservers = append(v.boundsObservers, fn)
}

// OnSubviewsChange registers fn to run after subviews are added, removed or reordered.
func (v *View) OnSubviewsChange(fn func(*View)) {
	v.subviewObservers = append(v.subviewObservers, fn)
}

// OnIntrinsicSizeInvalidated registers fn to run after InvalidateIntrinsicContentSize.
func (v *View) OnIntrinsicSizeInvalidated(fn func(*View)) {
	v.intrinsicObservers = append(v.intrinsicObservers, fn)
}

// SetOnLayoutSubviews sets the host layout pass run by LayoutIfNeeded.
func (v *View) SetOnLayoutSubviews(fn func(*View)) {
	v.onLayoutSubviews = fn
}

func (v *View) notify(observers []func(*View)) {
	for _, fn := range observers {
		fn(v)
	}
}

// installResizeHooks re-applies layout, preserving origin, whenever the
// host resizes the view. Bounds changes also refresh the auto-sizing width.
func installResizeHooks(v *View) {
	v.OnFrameChange(func(v *View) {
		v.applyLayoutFromHost()
	})
	v.OnBoundsChange(func(v *View) {
		v.applyLayoutFromHost()
		v.updateConstraintsIfNeeded(v.bounds.Width)
	})
}

func (v *View) applyLayoutFromHost() {
	if v.yoga == nil || !v.yoga.includedInLayout {
		return
	}
	v.yoga.ApplyLayoutPreservingOrigin(true)
}
