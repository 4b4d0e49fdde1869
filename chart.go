package graphing

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"

	"github.com/vdobler/graphing/data"
	"github.com/vdobler/graphing/vec"
	"gonum.org/v1/plot/plotutil"
)

// ----------------------------------------------------------------------------
// Chart

// Chart is a single 2-D chart drawn onto a host Surface.
//
// A Chart is configured by setting both axes, filled by adding data sets
// and then drawn with DrawGraph followed by any number of PlotDataSet(s)
// and GraphDataSet(s) calls. A Chart must not be used concurrently.
type Chart struct {
	Surface Surface

	// Style is used for measuring axis titles in SetXAxis and SetYAxis
	// and for all drawing; change it before configuring the axes.
	Style Style

	DOMBounds   vec.Rect // the whole surface
	GraphBounds vec.Rect // the chart inside the surface
	PlotBounds  vec.Rect // the data area, in graph space

	XAxis, YAxis AxisSpec

	GraphData GraphData

	// TrustDataBounds skips validating the Min and Max of data sets in
	// AddDataSet. A data set whose Min and Max do not cover its points is
	// then drawn with a silently distorted or clipped scale.
	TrustDataBounds bool

	// Logger receives debug records. Nil disables logging.
	Logger *slog.Logger
}

// New creates a chart covering graph on a surface of extent dom. The
// fraction labelRatio of the graph's width and height is reserved for the
// axes, ticks and labels; the rest is the plot area.
func New(s Surface, dom, graph vec.Rect, labelRatio vec.Vector2) (*Chart, error) {
	if dom.Dimensions.X <= 0 || dom.Dimensions.Y <= 0 ||
		graph.Dimensions.X <= 0 || graph.Dimensions.Y <= 0 {
		return nil, fmt.Errorf("%w: empty surface %v or graph %v",
			ErrInvalidBounds, dom.Dimensions, graph.Dimensions)
	}
	if !dom.Contains(graph) {
		return nil, fmt.Errorf("%w: graph %+v outside surface %+v", ErrInvalidBounds, graph, dom)
	}
	if !(labelRatio.X >= 0 && labelRatio.X < 1 && labelRatio.Y >= 0 && labelRatio.Y < 1) {
		return nil, fmt.Errorf("%w: label ratio %v not in [0,1)", ErrInvalidBounds, labelRatio)
	}

	c := &Chart{
		Surface:     s,
		Style:       DefaultStyle(),
		DOMBounds:   dom,
		GraphBounds: graph,
		PlotBounds: vec.Rect{
			Start:      graph.Dimensions.Hadamard(labelRatio),
			Dimensions: graph.Dimensions.Hadamard(vec.V(1-labelRatio.X, 1-labelRatio.Y)),
		},
		XAxis:     AxisSpec{orient: horizontal{}},
		YAxis:     AxisSpec{orient: vertical{}},
		GraphData: newGraphData(),
	}
	return c, nil
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func (c *Chart) logger() *slog.Logger {
	if c.Logger == nil {
		return discard
	}
	return c.Logger
}

// GraphToSurface maps a graph space point to surface space.
func (c *Chart) GraphToSurface(p vec.Vector2) vec.Vector2 {
	return graphToSurface(c.DOMBounds, c.GraphBounds, p)
}

// ----------------------------------------------------------------------------
// Data registry

// AddDataSet registers ds to be drawn in col and recomputes the combined
// bounds over all registered data sets. A nil col picks the next color
// of plotutil's default palette.
//
// Unless TrustDataBounds is set ds is validated first; an inconsistent
// data set is not registered and the error wraps ErrInconsistentDataSet.
// The point count is checked even for trusted data sets.
func (c *Chart) AddDataSet(ds data.DataSet, col color.Color) error {
	n := len(c.GraphData.DataSets)
	validate := ds.Validate
	if c.TrustDataBounds {
		validate = ds.ValidateCount
	}
	if err := validate(); err != nil {
		return fmt.Errorf("graphing: data set %d: %w", n, err)
	}
	if col == nil {
		col = plotutil.Color(n)
	}

	c.GraphData.DataSets = append(c.GraphData.DataSets, Entry{DataSet: ds, DrawColor: col})
	c.GraphData.fold()

	c.logger().Debug("data set added", "index", n, "points", ds.NumberOfDatapoints,
		"min", ds.Min, "max", ds.Max,
		"combinedMin", c.GraphData.Min, "combinedMax", c.GraphData.Max)
	return nil
}

// ClearData removes all data sets and resets the combined bounds.
func (c *Chart) ClearData() {
	c.GraphData = newGraphData()
	c.logger().Debug("data cleared")
}

// Transform returns the data to surface transformation for the current
// data sets. It fails with ErrNoData if no data set is registered and
// with ErrInvalidAxisExtent if the combined bounds have no extent on
// an axis.
func (c *Chart) Transform() (Transform, error) {
	if len(c.GraphData.DataSets) == 0 {
		return Transform{}, ErrNoData
	}
	return newTransform(c.DOMBounds, c.GraphBounds, c.PlotBounds,
		c.GraphData.XRange(), c.GraphData.YRange())
}

func (c *Chart) entry(i int) (Entry, error) {
	if i < 0 || i >= len(c.GraphData.DataSets) {
		return Entry{}, fmt.Errorf("%w: index %d of %d", ErrUnknownDataSet, i, len(c.GraphData.DataSets))
	}
	return c.GraphData.DataSets[i], nil
}
