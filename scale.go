package graphing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vdobler/graphing/data"
	"github.com/vdobler/graphing/vec"
)

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
type Interval struct {
	Min, Max float64
}

// emptyInterval returns the interval every Update tightens: Min is the
// largest and Max the smallest finite float64.
func emptyInterval() Interval {
	return Interval{math.MaxFloat64, -math.MaxFloat64}
}

// Update expands i to include x. NaNs are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if v < i.Min {
			i.Min = v
		}
		if v > i.Max {
			i.Max = v
		}
	}
}

// Degenerate reports whether no finite linear mapping from i exists: i
// has no extent or an infinite one. Unset (empty) intervals are
// degenerate too.
func (i Interval) Degenerate() bool {
	return !(i.Max > i.Min) || math.IsInf(i.Max-i.Min, 0)
}

// Lerp interpolates linearly between Min (t=0) and Max (t=1).
// The end points are returned exactly.
func (i Interval) Lerp(t float64) float64 {
	switch t {
	case 0:
		return i.Min
	case 1:
		return i.Max
	}
	return i.Min + t*(i.Max-i.Min)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}

// ----------------------------------------------------------------------------
// Bounds aggregation

// Entry is a registered data set together with its draw color.
type Entry struct {
	DataSet   data.DataSet
	DrawColor color.Color
}

// GraphData is the registry of all data sets of a chart together with
// their combined bounds.
type GraphData struct {
	Min, Max vec.Vector2
	DataSets []Entry
}

// newGraphData returns an empty registry with its bounds set to the
// sentinels so the first data set always tightens both.
func newGraphData() GraphData {
	return GraphData{Min: vec.MaxVector(), Max: vec.MinVector()}
}

// fold recomputes the combined bounds over every registered data set.
func (g *GraphData) fold() {
	x, y := emptyInterval(), emptyInterval()
	for _, e := range g.DataSets {
		x.Update(e.DataSet.Min.X, e.DataSet.Max.X)
		y.Update(e.DataSet.Min.Y, e.DataSet.Max.Y)
	}
	g.Min = vec.Vector2{X: x.Min, Y: y.Min}
	g.Max = vec.Vector2{X: x.Max, Y: y.Max}
}

// XRange and YRange return the combined bounds per axis.
func (g *GraphData) XRange() Interval { return Interval{g.Min.X, g.Max.X} }
func (g *GraphData) YRange() Interval { return Interval{g.Min.Y, g.Max.Y} }
