// Package engine wraps github.com/kjk/flex nodes behind an owner-typed handle.
//
// A [Handle] exclusively owns one engine node and keeps a weak back-reference to
// the value that owns the handle. The engine sees the handle through the node's
// Context so a measure callback can resolve its owner without keeping it alive.
//
// Nothing in this package is safe for concurrent use except [Handle.ScheduleRelease],
// which is meant to be called from a runtime cleanup.
package engine
