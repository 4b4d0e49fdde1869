package graphing

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Chart is drawn.
type Style struct {
	Background color.Color

	// Axis is used for the two axis lines and all tick marks.
	Axis draw.LineStyle

	Title     draw.TextStyle // axis titles
	Unit      draw.TextStyle // axis units
	TickLabel draw.TextStyle // numbers at major ticks

	// TickLabelMargin is the gap between the outer end of a major
	// tick and its label.
	TickLabelMargin float64

	// TitleGap separates the title and the unit of the vertical axis.
	TitleGap float64

	// TitleBaseline is the height of the horizontal axis title's
	// baseline in graph space.
	TitleBaseline float64

	// MarkerSize is the edge length of the square drawn per data point.
	MarkerSize float64

	// Line is used to connect data points. Its color is replaced by the
	// data set's draw color.
	Line draw.LineStyle
}

// SansFont is the font used by DefaultStyle.
var SansFont = font.Font{Typeface: "Liberation", Variant: "Sans"}

// DefaultStyle returns the style of a plain black on white chart with a
// 24 pt axis title, an 18 pt unit and 10 pt tick labels.
func DefaultStyle() Style {
	textStyle := func(size vg.Length) draw.TextStyle {
		return text.Style{
			Color:   color.Black,
			Font:    font.From(SansFont, size),
			XAlign:  draw.XLeft,
			YAlign:  draw.YBottom,
			Handler: plot.DefaultTextHandler,
		}
	}

	sty := Style{}
	sty.Background = color.White

	sty.Axis.Color = color.Black
	sty.Axis.Width = vg.Length(1)

	sty.Title = textStyle(24)
	sty.Unit = textStyle(18)
	sty.TickLabel = textStyle(10)

	sty.TickLabelMargin = 10
	sty.TitleGap = 2
	sty.TitleBaseline = 8
	sty.MarkerSize = 2

	sty.Line.Width = vg.Length(1)

	return sty
}

// fontHeight is the nominal height of text drawn with sty.
func fontHeight(sty draw.TextStyle) float64 {
	return sty.Font.Size.Points()
}
