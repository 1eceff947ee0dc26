// Package scene loads view trees described in YAML and reports the frames
// computed for them.
//
// A scene file looks like:
//
//	width: 80
//	height: 24
//	root:
//	  name: window
//	  style:
//	    flexDirection: row
//	    padding: {all: "1"}
//	  children:
//	    - name: sidebar
//	      style: {width: "20"}
//	    - name: body
//	      text: hello world
//	      style: {flexGrow: 1}
//
// Lengths are strings: "12" is points, "50%" is a percentage and "auto" is auto.
package scene
