package flexview

// ViewOption configures a View.
type ViewOption func(*View)

// WithName sets a debug name used in logs.
func WithName(name string) ViewOption {
	return func(v *View) {
		v.name = name
	}
}

// WithConfig sets the layout configuration. Views default to DefaultConfig().
func WithConfig(cfg *Config) ViewOption {
	return func(v *View) {
		v.cfg = cfg
	}
}

// WithFrame sets the initial frame without notifying observers.
func WithFrame(frame Rect) ViewOption {
	return func(v *View) {
		frame = frame.Standardized()
		v.center = frame.Center()
		v.bounds.Width = frame.Width
		v.bounds.Height = frame.Height
	}
}

// WithContent gives the view intrinsic content, making it a measured leaf.
func WithContent(content ContentSizer) ViewOption {
	return func(v *View) {
		v.content = content
	}
}

// WithText gives the view text content measured in terminal cells.
func WithText(text string) ViewOption {
	return func(v *View) {
		v.content = NewTextContent(text)
	}
}

// WithTransform sets the initial transform.
func WithTransform(t Transform) ViewOption {
	return func(v *View) {
		v.transform = t
	}
}

// WithYUp makes Y grow upward inside the view.
func WithYUp() ViewOption {
	return func(v *View) {
		v.yUp = true
	}
}

// WithConstraints marks the view as participating in constraint-based auto-sizing.
func WithConstraints() ViewOption {
	return func(v *View) {
		v.usesConstraints = true
	}
}

// WithLayout enables layout on the view and runs fn against its facade once
// all other options are applied.
func WithLayout(fn func(*Layout)) ViewOption {
	return func(v *View) {
		v.pendingLayout = append(v.pendingLayout, fn)
	}
}

// WithSubviews appends subviews in order.
func WithSubviews(subviews ...*View) ViewOption {
	return func(v *View) {
		for _, s := range subviews {
			if old := s.superview; old != nil {
				old.detachSubview(s)
			}
			v.attachSubview(s, len(v.subviews))
		}
	}
}
