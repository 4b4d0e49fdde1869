package graphing

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/vdobler/graphing/vec"
	"gonum.org/v1/plot/vg/draw"
)

// charWidth is the width of every rune on a fakeSurface.
const charWidth = 6

type op int

const (
	opStroke op = iota
	opRect
	opText
	opRotate
	opReset
	opBackground
)

// call is one recorded Surface call.
type call struct {
	op       op
	from, to vec.Vector2 // opStroke
	rect     vec.Rect    // opRect
	color    color.Color // opStroke, opRect, opBackground
	text     string      // opText
	at       vec.Vector2 // opText
	size     float64     // opText: font size
	rotation float64     // frame rotation in effect
}

// fakeSurface records all drawing calls and measures text with a fixed
// width per rune.
type fakeSurface struct {
	calls    []call
	rotation float64
}

var _ Surface = (*fakeSurface)(nil)

func (s *fakeSurface) StrokeLine(sty draw.LineStyle, from, to vec.Vector2) {
	s.calls = append(s.calls, call{op: opStroke, from: from, to: to, color: sty.Color, rotation: s.rotation})
}

func (s *fakeSurface) FillRect(col color.Color, r vec.Rect) {
	s.calls = append(s.calls, call{op: opRect, rect: r, color: col, rotation: s.rotation})
}

func (s *fakeSurface) MeasureText(sty draw.TextStyle, txt string) float64 {
	return float64(charWidth * utf8.RuneCountInString(txt))
}

func (s *fakeSurface) FillText(sty draw.TextStyle, at vec.Vector2, txt string) {
	s.calls = append(s.calls, call{op: opText, at: at, text: txt,
		size: sty.Font.Size.Points(), rotation: s.rotation})
}

func (s *fakeSurface) Rotate(rad float64) {
	s.rotation += rad
	s.calls = append(s.calls, call{op: opRotate, rotation: s.rotation})
}

func (s *fakeSurface) ResetTransform() {
	s.rotation = 0
	s.calls = append(s.calls, call{op: opReset})
}

func (s *fakeSurface) FillBackground(col color.Color) {
	s.calls = append(s.calls, call{op: opBackground, color: col})
}

func (s *fakeSurface) count(o op) int {
	n := 0
	for _, c := range s.calls {
		if c.op == o {
			n++
		}
	}
	return n
}

func (s *fakeSurface) texts() []call {
	var texts []call
	for _, c := range s.calls {
		if c.op == opText {
			texts = append(texts, c)
		}
	}
	return texts
}

func near(a, b vec.Vector2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
