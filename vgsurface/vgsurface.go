// Package vgsurface draws graphing charts onto gonum vg canvases.
//
// The chart works in a top-left based pixel grid while vg canvases put
// their origin in the bottom-left corner. Surface flips between the two
// and tracks the frame rotation itself, so only text is ever drawn with
// a rotated vg transformation.
package vgsurface

import (
	"image/color"

	"github.com/vdobler/graphing"
	"github.com/vdobler/graphing/vec"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Surface implements graphing.Surface on a draw.Canvas. One surface
// pixel is one vg.Point.
type Surface struct {
	draw.Canvas

	rot float64
}

var _ graphing.Surface = (*Surface)(nil)

// New returns a Surface drawing onto c.
func New(c draw.Canvas) *Surface {
	return &Surface{Canvas: c}
}

// Bounds returns the surface extent, suitable as the dom argument of
// graphing.New.
func (s *Surface) Bounds() vec.Rect {
	size := s.Rectangle.Size()
	return vec.Rect{Dimensions: vec.V(size.X.Points(), size.Y.Points())}
}

// point converts p from the rotated surface frame to canvas coordinates.
func (s *Surface) point(p vec.Vector2) vg.Point {
	if s.rot != 0 {
		p = p.Rotate(-s.rot)
	}
	return vg.Point{
		X: s.Min.X + vg.Length(p.X),
		Y: s.Max.Y - vg.Length(p.Y),
	}
}

func (s *Surface) StrokeLine(sty draw.LineStyle, from, to vec.Vector2) {
	s.StrokeLines(sty, []vg.Point{s.point(from), s.point(to)})
}

func (s *Surface) FillRect(col color.Color, r vec.Rect) {
	r = r.Canonical()
	end := r.End()
	s.FillPolygon(col, []vg.Point{
		s.point(r.Start),
		s.point(vec.V(end.X, r.Start.Y)),
		s.point(end),
		s.point(vec.V(r.Start.X, end.Y)),
	})
}

func (s *Surface) MeasureText(sty draw.TextStyle, txt string) float64 {
	return sty.Width(txt).Points()
}

// FillText draws txt on its baseline. Alignment and rotation of sty are
// ignored; the frame rotation applies instead.
func (s *Surface) FillText(sty draw.TextStyle, at vec.Vector2, txt string) {
	if txt == "" {
		return
	}
	hdlr := sty.Handler
	if hdlr == nil {
		hdlr = plot.DefaultTextHandler
	}
	face := hdlr.Cache().Lookup(sty.Font, sty.Font.Size)

	s.Push()
	defer s.Pop()
	s.Translate(s.point(at))
	if s.rot != 0 {
		s.Canvas.Rotate(-s.rot)
	}
	s.SetColor(sty.Color)
	s.FillString(face, vg.Point{}, txt)
}

// Rotate adds rad to the frame rotation. The canvas itself is not
// rotated.
func (s *Surface) Rotate(rad float64) { s.rot += rad }

func (s *Surface) ResetTransform() { s.rot = 0 }

func (s *Surface) FillBackground(col color.Color) {
	s.SetColor(col)
	s.Fill(s.Rectangle.Path())
}

