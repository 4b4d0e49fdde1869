// Coordinate transformations
//
// Three bases are involved when a data point is drawn: data space (the
// caller's values), graph space (pixels, origin bottom-left) and surface
// space (pixels, origin top-left). Data is mapped linearly into the plot
// rectangle, which lives in graph space, and graph space is flipped into
// surface space.
package graphing

import (
	"fmt"

	"github.com/vdobler/graphing/vec"
)

// A Transformation bundles two functions Trans and Inverse which map
// between two intervals.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
}

// IdentityTrans does not transform at all. Plot space and graph space
// are related by it.
var IdentityTrans = Transformation{
	Name:    "Identity",
	Trans:   func(from, to Interval, x float64) float64 { return x },
	Inverse: func(from, to Interval, y float64) float64 { return y },
}

// LinearTrans implements a linear mapping of from to to.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return from.Min + (from.Max-from.Min)*(y-to.Min)/(to.Max-to.Min)
	},
}

// ----------------------------------------------------------------------------
// Transform

// Transform maps between data, graph and surface space for fixed bounds.
// It is a plain value computed from the chart's current state; a new one
// must be obtained after the registered data changes.
type Transform struct {
	DOM   vec.Rect // the whole surface
	Graph vec.Rect // region of the chart inside DOM
	Plot  vec.Rect // region of the data, in graph space

	X, Y Interval // combined data bounds
}

// newTransform checks that both data intervals can be divided by.
func newTransform(dom, graph, plot vec.Rect, x, y Interval) (Transform, error) {
	if x.Degenerate() {
		return Transform{}, fmt.Errorf("%w: x range %v", ErrInvalidAxisExtent, x)
	}
	if y.Degenerate() {
		return Transform{}, fmt.Errorf("%w: y range %v", ErrInvalidAxisExtent, y)
	}
	return Transform{DOM: dom, Graph: graph, Plot: plot, X: x, Y: y}, nil
}

func (t Transform) plotX() Interval {
	return Interval{t.Plot.Start.X, t.Plot.Start.X + t.Plot.Dimensions.X}
}

func (t Transform) plotY() Interval {
	return Interval{t.Plot.Start.Y, t.Plot.Start.Y + t.Plot.Dimensions.Y}
}

// DataToPlot maps the data point (x,y) into the plot rectangle. The result
// is in graph space.
func (t Transform) DataToPlot(x, y float64) vec.Vector2 {
	px := LinearTrans.Trans(t.X, t.plotX(), x)
	py := LinearTrans.Trans(t.Y, t.plotY(), y)
	return vec.Vector2{
		X: IdentityTrans.Trans(t.plotX(), t.plotX(), px),
		Y: IdentityTrans.Trans(t.plotY(), t.plotY(), py),
	}
}

// PlotToData is the inverse of DataToPlot.
func (t Transform) PlotToData(p vec.Vector2) (x, y float64) {
	return LinearTrans.Inverse(t.X, t.plotX(), p.X),
		LinearTrans.Inverse(t.Y, t.plotY(), p.Y)
}

// GraphToSurface flips the graph space point p into surface space.
func (t Transform) GraphToSurface(p vec.Vector2) vec.Vector2 {
	return graphToSurface(t.DOM, t.Graph, p)
}

// SurfaceToGraph is the inverse of GraphToSurface.
func (t Transform) SurfaceToGraph(p vec.Vector2) vec.Vector2 {
	return vec.Vector2{
		X: p.X - t.Graph.Start.X,
		Y: t.DOM.Dimensions.Y - t.Graph.Start.Y - p.Y,
	}
}

// DataToSurface maps a data point all the way to surface space.
func (t Transform) DataToSurface(x, y float64) vec.Vector2 {
	return t.GraphToSurface(t.DataToPlot(x, y))
}

// graphToSurface needs no data bounds; axis geometry uses it directly.
func graphToSurface(dom, graph vec.Rect, p vec.Vector2) vec.Vector2 {
	return vec.Vector2{
		X: graph.Start.X + p.X,
		Y: dom.Dimensions.Y - (graph.Start.Y + p.Y),
	}
}
