package ggforce

// Link is a straight segment between two points.
//
// It is sampled exactly like the linear [Bezier] through the same two points,
// so that attribute interpolation along a link behaves like along any other
// curve.
type Link struct {
	P0 Point
	P1 Point
}

func (l Link) Kind() Kind   { return LinkKind }
func (l Link) Closed() bool { return false }

func (l Link) Validate() error {
	if !l.P0.IsFinite() || !l.P1.IsFinite() {
		return invalid(LinkKind, "endpoints %s and %s must be finite", l.P0, l.P1)
	}
	return nil
}

// Length returns the length of the link.
func (l Link) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Bezier returns the degree 1 Bézier equivalent to l.
func (l Link) Bezier() Bezier {
	return Bezier{Points: []Point{l.P0, l.P1}}
}

func (l Link) Eval(t float64) Point {
	return l.Bezier().Eval(t)
}

func (l Link) Start() Point { return l.P0 }
func (l Link) End() Point   { return l.P1 }

func (l Link) Tangents() (Vec2, Vec2) {
	d := l.P1.Sub(l.P0).Normalize()
	return d, d
}

func (l Link) sampleCount(n int) int { return n }

func (l Link) sampleInto(dst []Sample, n int) {
	l.Bezier().sampleInto(dst, n)
}

// pointsFor always returns 2; a link is its own chord.
func (l Link) pointsFor(tolerance float64) int { return 2 }
