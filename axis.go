package graphing

import (
	"fmt"
	"math"

	"github.com/vdobler/graphing/vec"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Axis configuration

// AxisKind names one of the two axes.
type AxisKind int

const (
	Horizontal AxisKind = iota
	Vertical
)

func (k AxisKind) String() string {
	return [...]string{"horizontal", "vertical"}[k]
}

// Label is a piece of axis text together with its measured width and
// height in pixels.
type Label struct {
	Text       string
	Dimensions vec.Vector2
}

// TickSize is the length of major and minor tick marks.
type TickSize struct {
	Major, Minor float64
}

// DefaultTickSize is used when an axis is configured with a zero TickSize.
var DefaultTickSize = TickSize{Major: 10, Minor: 5}

// Ticks configures the graduation of an axis. NumberMajorTicks is the
// number of intervals between major ticks; NumberMinorTicksPerMajorTick
// subdivides each interval (0 and 1 mean no minor ticks).
type Ticks struct {
	NumberMajorTicks             int
	NumberMinorTicksPerMajorTick int
	TickSize                     TickSize
}

// AxisSpec describes one axis. The offsets are graph space positions of
// the title and unit computed when the axis is configured.
type AxisSpec struct {
	Title, Unit Label
	Ticks       Ticks

	TitleOffset, UnitOffset vec.Vector2

	orient orientation
}

// Kind reports whether a is the horizontal or the vertical axis.
func (a *AxisSpec) Kind() AxisKind { return a.orient.kind() }

func (a *AxisSpec) configured() bool { return a.Ticks.NumberMajorTicks > 0 }

// SetXAxis configures the horizontal axis.
func (c *Chart) SetXAxis(title, unit string, ticks Ticks) error {
	return c.setAxis(&c.XAxis, title, unit, ticks)
}

// SetYAxis configures the vertical axis. Its title and unit are drawn
// rotated by 90° counterclockwise.
func (c *Chart) SetYAxis(title, unit string, ticks Ticks) error {
	return c.setAxis(&c.YAxis, title, unit, ticks)
}

func (c *Chart) setAxis(a *AxisSpec, title, unit string, ticks Ticks) error {
	if ticks.NumberMajorTicks < 1 || ticks.NumberMinorTicksPerMajorTick < 0 {
		return fmt.Errorf("%w: %s axis with %d major and %d minor ticks",
			ErrInvalidTicks, a.Kind(), ticks.NumberMajorTicks, ticks.NumberMinorTicksPerMajorTick)
	}
	if ticks.TickSize == (TickSize{}) {
		ticks.TickSize = DefaultTickSize
	}
	if unit != "" {
		unit = "(" + unit + ")"
	}

	a.Ticks = ticks
	a.Title = c.measure(c.Style.Title, title)
	a.Unit = c.measure(c.Style.Unit, unit)
	a.TitleOffset, a.UnitOffset = a.orient.offsets(c, a.Title, a.Unit)

	c.logger().Debug("axis configured", "axis", a.Kind(), "title", title, "unit", unit,
		"majorTicks", ticks.NumberMajorTicks, "minorTicks", ticks.NumberMinorTicksPerMajorTick,
		"titleOffset", a.TitleOffset, "unitOffset", a.UnitOffset)
	return nil
}

func (c *Chart) measure(sty draw.TextStyle, txt string) Label {
	if txt == "" {
		return Label{}
	}
	return Label{
		Text:       txt,
		Dimensions: vec.Vector2{X: c.Surface.MeasureText(sty, txt), Y: fontHeight(sty)},
	}
}

// ----------------------------------------------------------------------------
// Orientation

// orientation captures everything that differs between the horizontal
// and the vertical axis. horizontal and vertical are its only
// implementations.
type orientation interface {
	kind() AxisKind

	// bounds selects the axis' combined data bounds.
	bounds(g *GraphData) Interval

	// labelShift is subtracted from the label edge to place a tick
	// label of the given width and height.
	labelShift(axisDir, oppDir vec.Vector2, width, height float64) vec.Vector2

	// offsets computes the graph space title and unit positions.
	offsets(c *Chart, title, unit Label) (vec.Vector2, vec.Vector2)

	// frameRotation is the rotation applied to the surface while the
	// title and unit are drawn.
	frameRotation() float64

	// anchor converts a surface point into the rotated frame.
	anchor(p vec.Vector2) vec.Vector2
}

type horizontal struct{}

func (horizontal) kind() AxisKind               { return Horizontal }
func (horizontal) bounds(g *GraphData) Interval { return g.XRange() }
func (horizontal) frameRotation() float64       { return 0 }
func (horizontal) anchor(p vec.Vector2) vec.Vector2 {
	return p
}

// Horizontal tick labels are centred below their tick.
func (horizontal) labelShift(axisDir, oppDir vec.Vector2, width, height float64) vec.Vector2 {
	return axisDir.Mul(width / 2)
}

// The title sits on a fixed baseline, the unit directly below it; both
// are centred on the surface.
func (horizontal) offsets(c *Chart, title, unit Label) (vec.Vector2, vec.Vector2) {
	w := c.DOMBounds.Dimensions.X
	base := c.Style.TitleBaseline
	return vec.Vector2{X: (w - title.Dimensions.X) / 2, Y: base},
		vec.Vector2{X: (w - unit.Dimensions.X) / 2, Y: base - unit.Dimensions.Y}
}

type vertical struct{}

func (vertical) kind() AxisKind               { return Vertical }
func (vertical) bounds(g *GraphData) Interval { return g.YRange() }
func (vertical) frameRotation() float64       { return -math.Pi / 2 }

// In a frame rotated by -90° the surface point (x,y) is addressed as
// (-y,x).
func (vertical) anchor(p vec.Vector2) vec.Vector2 {
	return vec.Vector2{X: -p.Y, Y: p.X}
}

// Vertical tick labels end left of the tick and are centred on it.
func (vertical) labelShift(axisDir, oppDir vec.Vector2, width, height float64) vec.Vector2 {
	return oppDir.Mul(width).Add(axisDir.Mul(height / 2))
}

// Title and unit are centred vertically in the left margin. The rotated
// text grows to the left of its baseline, so the unit is moved right by
// its own height plus a gap.
func (vertical) offsets(c *Chart, title, unit Label) (vec.Vector2, vec.Vector2) {
	dom, graph := c.DOMBounds.Dimensions, c.GraphBounds.Dimensions
	x := (dom.X - graph.X) / 2
	return vec.Vector2{X: x, Y: (dom.Y - title.Dimensions.X) / 2},
		vec.Vector2{X: x + unit.Dimensions.Y + c.Style.TitleGap, Y: (dom.Y - unit.Dimensions.X) / 2}
}

// ----------------------------------------------------------------------------
// Tick layout

// TickMark is a tick mark in graph space.
type TickMark struct {
	vec.Line
	Major bool
}

// TickLabel is the label of a major tick. At is the graph space start
// of its baseline.
type TickLabel struct {
	Value float64
	Text  string
	At    vec.Vector2
}

// AxisLayout holds the tick marks and labels of one axis.
type AxisLayout struct {
	Marks  []TickMark
	Labels []TickLabel
}

// layoutAxis places the ticks and tick labels of a along axis. opp is the
// other axis; tick marks point away from it. bounds are the data bounds
// of a.
func (c *Chart) layoutAxis(a *AxisSpec, axis, opp vec.Line, bounds Interval) AxisLayout {
	var (
		n       = a.Ticks.NumberMajorTicks
		m       = a.Ticks.NumberMinorTicksPerMajorTick
		size    = a.Ticks.TickSize
		axisVec = axis.Vector()
		axisDir = axis.Direction()
		oppDir  = opp.Direction()
		sep     = axisVec.Div(float64(n))
		height  = fontHeight(c.Style.TickLabel)
		layout  AxisLayout
	)

	for j := 0; j <= n; j++ {
		t := float64(j) / float64(n)
		start := axis.Start.Add(axisVec.Mul(t))
		end := start.Sub(oppDir.Mul(size.Major))
		layout.Marks = append(layout.Marks, TickMark{Line: vec.Line{Start: start, End: end}, Major: true})

		if j != n {
			for i := 1; i < m; i++ {
				ms := start.Add(sep.Mul(float64(i) / float64(m)))
				me := ms.Sub(oppDir.Mul(size.Minor))
				layout.Marks = append(layout.Marks, TickMark{Line: vec.Line{Start: ms, End: me}})
			}
		}

		value := bounds.Lerp(t)
		txt := FormatPrecision(value, FindSignificantFigures(value, bounds.Min, bounds.Max, n))
		width := c.Surface.MeasureText(c.Style.TickLabel, txt)
		edge := end.Sub(oppDir.Mul(c.Style.TickLabelMargin))
		layout.Labels = append(layout.Labels, TickLabel{
			Value: value,
			Text:  txt,
			At:    edge.Sub(a.orient.labelShift(axisDir, oppDir, width, height)),
		})
	}
	return layout
}

// axisLines returns the horizontal and the vertical axis line in graph
// space. Both start at the lower left corner of the plot area.
func (c *Chart) axisLines() (x, y vec.Line) {
	p := c.PlotBounds
	x = vec.Line{Start: p.Start, End: p.Start.Add(vec.Vector2{X: p.Dimensions.X})}
	y = vec.Line{Start: p.Start, End: p.Start.Add(vec.Vector2{Y: p.Dimensions.Y})}
	return x, y
}
