// Package plotdraw positions and scales composite 2D vector drawings on a
// plotting canvas.
//
// # Overview
//
// A Drawing groups several vertex-based primitives into one unit that can be
// placed at a data-space coordinate on a canvas. Its horizontal scale is
// recomputed from the canvas's current view extents on every Update, so the
// drawing keeps a constant apparent size relative to the view window rather
// than to absolute data units. The typical use is diagram markers on a plot
// (lens arrows, apertures, stops) that should stay readable while the user
// zooms.
//
// # Quick Start
//
//	import "github.com/plotkit/plotdraw"
//
//	up := plotdraw.NewArrow(0, 0, 0, -5, 0.1)
//	down := plotdraw.NewArrow(0, 0, 0, 5, 0.1)
//	lens := plotdraw.New(up, down)
//
//	plot := plotdraw.NewPlot(640, 480,
//		plotdraw.WithViewBounds(plotdraw.RectWH(0, -10, 40, 20)))
//	lens.ApplyTo(plot, 10, 0)
//
//	// Keep the apparent size constant across zooms.
//	plot.OnViewChange(func() { lens.Update() })
//
//	// Move it later.
//	lens.Update(plotdraw.AtX(5))
//
// # Coordinate System
//
// Primitives are defined in their own untransformed coordinates, normally
// around x = 0 so positioning and scaling behave well. Drawings place them in
// data space; the canvas's DataTransform maps data space onto the pixel grid
// with the origin at the top-left and y growing downward.
//
// # Concurrency
//
// The package is single-threaded by design. Drawings and canvases are meant
// to be driven from one goroutine, typically a UI callback loop.
package plotdraw
