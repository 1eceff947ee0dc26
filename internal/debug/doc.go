// Package debug provides optional file-based debug logging.
//
// After Init, layout events are written to a file as JSON lines, rotated by
// size. Before Init, logging is a no-op. The flexview command calls Init when
// --debug or FLEXVIEW_DEBUG names a file.
package debug
