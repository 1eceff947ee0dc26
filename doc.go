// Package flexview binds the flexbox layout engine to a tree of views.
//
// A View opts into layout by accessing its Layout facade through View.Yoga.
// Every layout computation mirrors the view hierarchy into the engine's
// shadow tree, computes it and writes the resulting frames back onto the
// views:
//
//	root := flexview.NewView(flexview.WithFrame(flexview.NewRect(0, 0, 300, 100)))
//	root.Yoga().SetFlexDirection(flexview.FlexDirectionRow)
//	for range 3 {
//		child := flexview.NewView(flexview.WithLayout(func(l *flexview.Layout) {
//			l.SetFlexGrow(1)
//		}))
//		root.AddSubview(child)
//	}
//	root.Yoga().ApplyLayout()
//
// Views whose facade is excluded with SetIncludedInLayout(false) are pruned
// from the shadow tree together with their subtree and keep whatever frame
// they had. Leaves measure through their ContentSizer.
//
// All layout entry points must run on a single UI goroutine; see BindMainThread.
package flexview
