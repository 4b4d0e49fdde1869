// Package vec provides the small amount of 2-D vector algebra needed to
// lay out a chart: vectors, axis aligned rectangles and line segments.
//
// All types are values. No operation modifies its receiver.
package vec

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Vector2

// Vector2 is a two dimensional vector.
type Vector2 struct {
	X, Y float64
}

// V is shorthand for Vector2{x, y}.
func V(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

// MaxVector returns the vector with the largest finite float64 in both
// components. It seeds a running minimum.
func MaxVector() Vector2 { return Vector2{math.MaxFloat64, math.MaxFloat64} }

// MinVector returns the vector with the smallest finite float64 in both
// components. It seeds a running maximum.
func MinVector() Vector2 { return Vector2{-math.MaxFloat64, -math.MaxFloat64} }

func (a Vector2) Add(b Vector2) Vector2 { return Vector2{a.X + b.X, a.Y + b.Y} }
func (a Vector2) Sub(b Vector2) Vector2 { return Vector2{a.X - b.X, a.Y - b.Y} }
func (a Vector2) Mul(s float64) Vector2 { return Vector2{a.X * s, a.Y * s} }

// Div divides a by s. Dividing by zero yields the zero vector.
func (a Vector2) Div(s float64) Vector2 {
	if s == 0 {
		return Vector2{}
	}
	return Vector2{a.X / s, a.Y / s}
}

// Length is the euclidean length of a.
func (a Vector2) Length() float64 { return math.Sqrt(a.X*a.X + a.Y*a.Y) }

// Unit returns a scaled to length 1. The zero vector stays zero.
func (a Vector2) Unit() Vector2 { return a.Div(a.Length()) }

// Abs takes the absolute value component wise.
func (a Vector2) Abs() Vector2 { return Vector2{math.Abs(a.X), math.Abs(a.Y)} }

// Hadamard is the component wise product of a and b.
func (a Vector2) Hadamard(b Vector2) Vector2 { return Vector2{a.X * b.X, a.Y * b.Y} }

// Dot is the scalar product of a and b.
func (a Vector2) Dot(b Vector2) float64 { return a.X*b.X + a.Y*b.Y }

// Rotate rotates a by theta radians using the screen convention where
// the sine term of the y component carries the inverted sign.
func (a Vector2) Rotate(theta float64) Vector2 {
	sin, cos := math.Sincos(theta)
	return Vector2{
		X: a.X*cos + a.Y*sin,
		Y: -a.X*sin + a.Y*cos,
	}
}

// IsFinite reports whether neither component is NaN or infinite.
func (a Vector2) IsFinite() bool {
	return !math.IsNaN(a.X) && !math.IsNaN(a.Y) &&
		!math.IsInf(a.X, 0) && !math.IsInf(a.Y, 0)
}

func (a Vector2) String() string {
	return fmt.Sprintf("(%g,%g)", a.X, a.Y)
}

// ----------------------------------------------------------------------------
// Rect

// Rect is an axis aligned rectangle. Start is the corner with the smaller
// coordinates, Dimensions its width and height.
type Rect struct {
	Start      Vector2
	Dimensions Vector2
}

// RectFromCorners returns the rectangle spanned by (x0,y0) and (x1,y1).
func RectFromCorners(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Start:      Vector2{x0, y0},
		Dimensions: Vector2{x1 - x0, y1 - y0},
	}
}

// End is the corner opposite to Start.
func (r Rect) End() Vector2 { return r.Start.Add(r.Dimensions) }

// Canonical returns r with non-negative dimensions covering the same area.
func (r Rect) Canonical() Rect {
	if r.Dimensions.X < 0 {
		r.Start.X += r.Dimensions.X
		r.Dimensions.X = -r.Dimensions.X
	}
	if r.Dimensions.Y < 0 {
		r.Start.Y += r.Dimensions.Y
		r.Dimensions.Y = -r.Dimensions.Y
	}
	return r
}

// Contains reports whether s lies completely inside r. Both rectangles
// are canonicalized first.
func (r Rect) Contains(s Rect) bool {
	r, s = r.Canonical(), s.Canonical()
	re, se := r.End(), s.End()
	return s.Start.X >= r.Start.X && s.Start.Y >= r.Start.Y &&
		se.X <= re.X && se.Y <= re.Y
}

// ----------------------------------------------------------------------------
// Line

// Line is the segment from Start to End.
type Line struct {
	Start, End Vector2
}

// Vector is End-Start.
func (l Line) Vector() Vector2 { return l.End.Sub(l.Start) }

// Direction is the unit vector pointing from Start to End.
func (l Line) Direction() Vector2 { return l.Vector().Unit() }

// At returns the point a fraction t along l.
func (l Line) At(t float64) Vector2 { return l.Start.Add(l.Vector().Mul(t)) }
