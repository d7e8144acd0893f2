package ggforce

import (
	"fmt"
	"math"
)

// Point is a position in the 2D plane. Samples, control points and arc
// centers are all points.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
//
// The result is exactly pt for t = 0 and exactly o for t = 1.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: lerp(pt.X, o.X, t),
		Y: lerp(pt.Y, o.Y, t),
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// Polar returns the point at the given distance and angle from pt. An angle of
// 0 points along the positive x axis.
func (pt Point) Polar(radius, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: pt.X + radius*cos,
		Y: pt.Y + radius*sin,
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// IsFinite reports whether both x and y are finite.
func (pt Point) IsFinite() bool {
	return !pt.IsInf() && !pt.IsNaN()
}
