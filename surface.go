package graphing

import (
	"image/color"

	"github.com/vdobler/graphing/vec"
	"gonum.org/v1/plot/vg/draw"
)

// Surface is the drawing API of the host a Chart renders onto.
// Coordinates are pixels with the origin in the top-left corner and y
// growing downwards. Text is drawn left aligned on its baseline.
//
// Package vgsurface implements Surface on top of any gonum vg.Canvas.
type Surface interface {
	// StrokeLine strokes the segment from..to.
	StrokeLine(sty draw.LineStyle, from, to vec.Vector2)

	// FillRect fills r.
	FillRect(col color.Color, r vec.Rect)

	// MeasureText returns the width of txt drawn with sty.
	MeasureText(sty draw.TextStyle, txt string) float64

	// FillText draws txt with its baseline starting at at.
	FillText(sty draw.TextStyle, at vec.Vector2, txt string)

	// Rotate rotates the drawing frame by rad radians (clockwise on
	// screen for positive rad) on top of any current rotation.
	Rotate(rad float64)

	// ResetTransform restores the unrotated frame.
	ResetTransform()

	// FillBackground fills the whole surface.
	FillBackground(col color.Color)
}
