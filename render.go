package graphing

import (
	"fmt"
	"image/color"

	"github.com/vdobler/graphing/vec"
)

// Wipe fills the whole surface with col.
func (c *Chart) Wipe(col color.Color) {
	c.Surface.FillBackground(col)
}

// DrawGraph draws both axis lines, their ticks, tick labels, titles and
// units. Both axes must be configured and at least one data set must be
// registered. Nothing is drawn if DrawGraph fails.
func (c *Chart) DrawGraph() error {
	for _, a := range []*AxisSpec{&c.XAxis, &c.YAxis} {
		if !a.configured() {
			return fmt.Errorf("%w: %s", ErrAxisNotConfigured, a.Kind())
		}
	}
	if _, err := c.Transform(); err != nil {
		return err
	}

	xAxis, yAxis := c.axisLines()
	c.strokeGraphLine(xAxis)
	c.strokeGraphLine(yAxis)

	axes := []struct {
		spec      *AxisSpec
		axis, opp vec.Line
	}{
		{&c.XAxis, xAxis, yAxis},
		{&c.YAxis, yAxis, xAxis},
	}
	for _, a := range axes {
		bounds := a.spec.orient.bounds(&c.GraphData)
		layout := c.layoutAxis(a.spec, a.axis, a.opp, bounds)
		for _, mark := range layout.Marks {
			c.strokeGraphLine(mark.Line)
		}
		for _, label := range layout.Labels {
			c.Surface.FillText(c.Style.TickLabel, c.GraphToSurface(label.At), label.Text)
		}
		c.logger().Debug("axis drawn", "axis", a.spec.Kind(), "bounds", bounds,
			"marks", len(layout.Marks), "labels", len(layout.Labels))
	}

	for _, a := range axes {
		c.drawAxisTitle(a.spec)
	}
	return nil
}

func (c *Chart) strokeGraphLine(l vec.Line) {
	c.Surface.StrokeLine(c.Style.Axis, c.GraphToSurface(l.Start), c.GraphToSurface(l.End))
}

// drawAxisTitle draws title and unit of a, rotating the surface frame for
// the vertical axis. The rotation is undone before returning.
func (c *Chart) drawAxisTitle(a *AxisSpec) {
	if rot := a.orient.frameRotation(); rot != 0 {
		c.Surface.Rotate(rot)
		defer c.Surface.ResetTransform()
	}
	if a.Title.Text != "" {
		at := a.orient.anchor(c.GraphToSurface(a.TitleOffset))
		c.Surface.FillText(c.Style.Title, at, a.Title.Text)
	}
	if a.Unit.Text != "" {
		at := a.orient.anchor(c.GraphToSurface(a.UnitOffset))
		c.Surface.FillText(c.Style.Unit, at, a.Unit.Text)
	}
}

// ----------------------------------------------------------------------------
// Plotting data

// PlotDataSet draws every point of data set i as a small square marker.
// All data sets share one scale: the one spanned by their combined bounds.
func (c *Chart) PlotDataSet(i int) error {
	e, t, err := c.prepare(i)
	if err != nil {
		return err
	}
	size := c.Style.MarkerSize
	half := vec.Vector2{X: size / 2, Y: size / 2}
	for _, p := range e.DataSet.Points() {
		at := t.DataToSurface(p.X, p.Y)
		c.Surface.FillRect(e.DrawColor, vec.Rect{
			Start:      at.Sub(half),
			Dimensions: vec.Vector2{X: size, Y: size},
		})
	}
	c.logger().Debug("data set plotted", "index", i, "points", e.DataSet.NumberOfDatapoints)
	return nil
}

// PlotDataSets draws the points of all data sets.
func (c *Chart) PlotDataSets() error {
	for i := range c.GraphData.DataSets {
		if err := c.PlotDataSet(i); err != nil {
			return err
		}
	}
	return nil
}

// GraphDataSet connects consecutive points of data set i with straight
// lines. The points are connected in the order given; sort them first
// if they describe a function.
func (c *Chart) GraphDataSet(i int) error {
	e, t, err := c.prepare(i)
	if err != nil {
		return err
	}
	sty := c.Style.Line
	sty.Color = e.DrawColor

	pts := e.DataSet.Points()
	if len(pts) == 0 {
		return nil
	}
	last := t.DataToSurface(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		next := t.DataToSurface(p.X, p.Y)
		c.Surface.StrokeLine(sty, last, next)
		last = next
	}
	c.logger().Debug("data set graphed", "index", i, "segments", len(pts)-1)
	return nil
}

// GraphDataSets draws all data sets as lines.
func (c *Chart) GraphDataSets() error {
	for i := range c.GraphData.DataSets {
		if err := c.GraphDataSet(i); err != nil {
			return err
		}
	}
	return nil
}

func (c *Chart) prepare(i int) (Entry, Transform, error) {
	e, err := c.entry(i)
	if err != nil {
		return Entry{}, Transform{}, err
	}
	t, err := c.Transform()
	if err != nil {
		return Entry{}, Transform{}, err
	}
	return e, t, nil
}
