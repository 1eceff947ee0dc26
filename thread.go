package flexview

import (
	"fmt"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// mainGoroutine is the id of the goroutine bound as the UI thread, 0 if unbound.
var mainGoroutine atomic.Int64

// BindMainThread records the calling goroutine as the only one allowed to
// drive layout. Until it is called no thread check is performed.
func BindMainThread() {
	mainGoroutine.Store(goid.Get())
}

// UnbindMainThread removes the UI goroutine binding.
func UnbindMainThread() {
	mainGoroutine.Store(0)
}

// IsMainThread reports whether the caller may drive layout.
func IsMainThread() bool {
	id := mainGoroutine.Load()
	return id == 0 || id == goid.Get()
}

func assertMainThread(cfg *Config, op string) {
	if cfg.assertions && !IsMainThread() {
		panic(fmt.Sprintf("flexview: %s must be called on the main thread", op))
	}
}
