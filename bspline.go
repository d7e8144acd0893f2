package ggforce

import "math"

// BSpline is a uniform B-spline defined by its control polygon. In general the
// curve does not pass through the control points.
//
// An open spline is clamped: its knot vector repeats the first and last knot
// degree+1 times, so the curve starts exactly at the first control point and
// ends exactly at the last one. Its degree is 3, or 2 when there are only three
// control points.
//
// A periodic spline is a closed uniform cubic B-spline. The control polygon
// wraps around, and the curve ends where it started.
type BSpline struct {
	Points   []Point
	Periodic bool
}

func (s BSpline) Kind() Kind   { return BSplineKind }
func (s BSpline) Closed() bool { return s.Periodic }

func (s BSpline) Validate() error {
	if len(s.Points) < 3 {
		return invalid(BSplineKind, "need at least 3 control points, got %d", len(s.Points))
	}
	if i, ok := finitePoints(s.Points); !ok {
		return invalid(BSplineKind, "control point %d %s is not finite", i, s.Points[i])
	}
	return nil
}

// Degree returns the polynomial degree of the spline's pieces.
func (s BSpline) Degree() int {
	if s.Periodic {
		return 3
	}
	return min(3, len(s.Points)-1)
}

// Knots returns the knot vector of an open spline, normalized to [0, 1]. It
// returns nil for periodic splines, whose knots are implicitly uniform.
func (s BSpline) Knots() []float64 {
	if s.Periodic {
		return nil
	}
	m := len(s.Points)
	p := s.Degree()
	knots := make([]float64, m+p+1)
	for i := range knots {
		switch {
		case i <= p:
			knots[i] = 0
		case i >= m:
			knots[i] = 1
		default:
			knots[i] = float64(i-p) / float64(m-p)
		}
	}
	return knots
}

func (s BSpline) Eval(t float64) Point {
	if s.Periodic {
		return s.evalPeriodic(t)
	}
	return newDeBoor(s).eval(t)
}

func (s BSpline) Start() Point { return s.Eval(0) }
func (s BSpline) End() Point   { return s.Eval(1) }

func (s BSpline) Tangents() (Vec2, Vec2) {
	pts := s.Points
	if s.Periodic {
		// The derivative of the first periodic piece at its start.
		m := len(pts)
		d := pts[2%m].Sub(pts[0]).Normalize()
		return d, d
	}
	n := len(pts)
	rev := make([]Point, n-1)
	for i := range rev {
		rev[i] = pts[n-2-i]
	}
	return firstDirection(pts[0], pts[1:]...), firstDirection(pts[n-1], rev...).Negate()
}

func (s BSpline) sampleCount(n int) int { return n }

func (s BSpline) sampleInto(dst []Sample, n int) {
	if s.Periodic {
		sampleCurve(dst, s, n)
		return
	}
	db := newDeBoor(s)
	for i := range n {
		t := param(i, n)
		dst[i] = Sample{Point: db.eval(t), T: t}
	}
}

// pointsFor bounds the magnitude of the curve's second derivative, which
// limits how far the curve strays from its chords.
func (s BSpline) pointsFor(tolerance float64) int {
	if s.Periodic {
		// Every periodic piece has the second differences of the control
		// polygon as the control points of its second derivative.
		pieces := len(s.Points)
		steps := stepsFor(maxSecondDifference(s.controlPolygon()), tolerance)
		return min(pieces*steps, MaxPoints-1) + 1
	}
	return stepsFor(s.secondDerivativeBound(), tolerance) + 1
}

// secondDerivativeBound returns the largest control point of the second
// derivative of an open spline. As a B-spline lies within the convex hull of
// its control points, this bounds the second derivative everywhere.
func (s BSpline) secondDerivativeBound() float64 {
	p := s.Degree()
	knots := s.Knots()
	pts := s.Points
	d := make([]Vec2, len(pts)-1)
	for i := range d {
		d[i] = pts[i+1].Sub(pts[i]).Mul(float64(p) / (knots[i+p+1] - knots[i+1]))
	}
	var bound float64
	for i := 0; i+1 < len(d); i++ {
		den := knots[i+p+1] - knots[i+2]
		if den == 0 {
			continue
		}
		bound = max(bound, d[i+1].Sub(d[i]).Mul(float64(p-1)/den).Hypot())
	}
	return bound
}

func (s BSpline) controlPolygon() []Point {
	if !s.Periodic {
		return s.Points
	}
	return append(s.Points[:len(s.Points):len(s.Points)], s.Points[0], s.Points[1])
}

// evalPeriodic evaluates a periodic spline. Parameter t covers all len(Points)
// pieces once; t = 1 evaluates to the same point as t = 0.
func (s BSpline) evalPeriodic(t float64) Point {
	m := len(s.Points)
	t = clamp01(t)
	if t == 1 {
		t = 0
	}
	u := t * float64(m)
	i := min(int(math.Floor(u)), m-1)
	v := u - float64(i)

	v2 := v * v
	v3 := v2 * v
	mv := 1 - v
	w := [4]float64{
		mv * mv * mv / 6,
		(3*v3 - 6*v2 + 4) / 6,
		(-3*v3 + 3*v2 + 3*v + 1) / 6,
		v3 / 6,
	}
	var x, y float64
	for j, wj := range w {
		pt := s.Points[(i+j)%m]
		x += wj * pt.X
		y += wj * pt.Y
	}
	return Point{X: x, Y: y}
}

// deBoor evaluates open, clamped splines. It holds scratch space, so a single
// value must not be used concurrently.
type deBoor struct {
	pts   []Point
	knots []float64
	p     int
	d     []Point
}

func newDeBoor(s BSpline) *deBoor {
	p := s.Degree()
	return &deBoor{
		pts:   s.Points,
		knots: s.Knots(),
		p:     p,
		d:     make([]Point, p+1),
	}
}

// span returns k such that knots[k] <= u < knots[k+1], restricted to the
// valid range [p, m-1].
func (db *deBoor) span(u float64) int {
	m := len(db.pts)
	k := db.p + int(u*float64(m-db.p))
	k = min(max(k, db.p), m-1)
	for k > db.p && u < db.knots[k] {
		k--
	}
	for k < m-1 && u >= db.knots[k+1] {
		k++
	}
	return k
}

func (db *deBoor) eval(u float64) Point {
	switch {
	case u <= 0:
		return db.pts[0]
	case u >= 1:
		return db.pts[len(db.pts)-1]
	}
	p := db.p
	k := db.span(u)
	for j := 0; j <= p; j++ {
		db.d[j] = db.pts[j+k-p]
	}
	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			left := db.knots[j+k-p]
			right := db.knots[j+1+k-r]
			alpha := (u - left) / (right - left)
			db.d[j] = db.d[j-1].Lerp(db.d[j], alpha)
		}
	}
	return db.d[p]
}
