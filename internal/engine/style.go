package engine

import "github.com/kjk/flex"

// Style returns a copy of the node's style.
func (h *Handle[T]) Style() flex.Style {
	return h.node.Style
}

// SetStyle applies mutate to a copy of the style and stores the result,
// marking the node dirty when anything changed.
func (h *Handle[T]) SetStyle(mutate func(*flex.Style)) {
	scratch := flex.Node{Style: h.node.Style}
	mutate(&scratch.Style)

	flex.NodeCopyStyle(h.node, &scratch)

	// The engine's style comparison ignores the aspect ratio.
	if !flex.FloatsEqual(h.node.Style.AspectRatio, scratch.Style.AspectRatio) {
		h.node.Style.AspectRatio = scratch.Style.AspectRatio
		h.touch()
	}
}

// touch marks the node dirty through the style copy path, the only exported
// dirtying entry point that accepts nodes without a measure callback.
func (h *Handle[T]) touch() {
	original := flex.Node{Style: h.node.Style}
	flipped := flex.Node{Style: h.node.Style}
	if flipped.Style.Display == flex.DisplayNone {
		flipped.Style.Display = flex.DisplayFlex
	} else {
		flipped.Style.Display = flex.DisplayNone
	}
	flex.NodeCopyStyle(h.node, &flipped)
	flex.NodeCopyStyle(h.node, &original)
}
