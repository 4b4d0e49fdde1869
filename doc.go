// Package graphing draws static 2-D scatter and line charts onto a drawing
// surface owned by the host.
//
// Coordinates
//
// Three bases are used. Data space holds the caller's values. Graph
// space has its origin in the bottom-left corner and uses surface pixels;
// all axis geometry is authored in it. Surface space is the host's pixel
// grid with the origin in the top-left corner. A single Y flip
// (Transform.GraphToSurface) relates graph and surface space.
//
// All registered data sets share one linear data to plot mapping derived
// from the union of their bounds, so every series of a chart is drawn to
// the same scale.
//
// Drawing
//
// The host supplies a Surface. Package vgsurface adapts any gonum
// vg.Canvas (PNG, SVG, PDF, ...) to it.
//
//	c, err := graphing.New(surface, dom, graph, vec.V(0.15, 0.15))
//	c.SetXAxis("Time", "s", graphing.Ticks{NumberMajorTicks: 4, NumberMinorTicksPerMajorTick: 5})
//	c.SetYAxis("Speed", "m/s", graphing.Ticks{NumberMajorTicks: 5, NumberMinorTicksPerMajorTick: 2})
//	c.AddDataSet(ds, color.Black)
//	c.DrawGraph()
//	c.GraphDataSets()
package graphing
