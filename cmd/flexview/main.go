// Package main provides the flexview command for laying out YAML scenes.
//
// Usage:
//
//	flexview layout [--format table|json] scene.yaml   Print computed frames
//	flexview render scene.yaml                         Draw frames on a character grid
//	flexview version                                   Print version information
//
// Configuration is read from flags, FLEXVIEW_* environment variables and an
// optional flexview.yaml in the working directory.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
