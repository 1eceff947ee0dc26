// Package layout holds the float geometry shared by the view hierarchy and the
// engine binding: [Rect], [Point], [Size] and [Transform].
//
// Types are re-exported through the root flexview package for public consumption.
// All values are in points; the engine rounds to the pixel grid separately.
package layout
