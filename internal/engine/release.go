package engine

import (
	"sync"

	"github.com/kjk/flex"
)

type releaser interface {
	release()
}

var (
	releaseMu sync.Mutex
	pending   []releaser
)

// ScheduleRelease queues the handle for release on the next DrainReleased.
// It is safe to call from any goroutine, typically a runtime cleanup.
func (h *Handle[T]) ScheduleRelease() {
	releaseMu.Lock()
	pending = append(pending, h)
	releaseMu.Unlock()
}

// DrainReleased releases every queued handle and returns how many were released.
// Call it from the goroutine that owns the layout trees.
func DrainReleased() int {
	releaseMu.Lock()
	queue := pending
	pending = nil
	releaseMu.Unlock()

	for _, r := range queue {
		r.release()
	}
	return len(queue)
}

func (h *Handle[T]) release() {
	h.Release()
}

// Release detaches the node from its parent and children and drops its measure
// callback. The handle must not be used afterwards.
func (h *Handle[T]) Release() {
	if h.released {
		return
	}
	if parent := h.node.Parent; parent != nil {
		parent.RemoveChild(h.node)
	}
	h.RemoveAllChildren()
	h.node.SetMeasureFunc(nil)
	h.node.Context = nil
	h.released = true
}

// Node exposes the engine node for callers that need the raw engine API.
func (h *Handle[T]) Node() *flex.Node {
	return h.node
}
