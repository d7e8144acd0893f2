package ggforce

// Bezier is a Bézier curve of arbitrary degree. Points[0] is the start,
// the last point is the end, and the points in between are control handles:
// one for a quadratic, two for a cubic.
type Bezier struct {
	Points []Point
}

// Quad returns the quadratic Bézier from p0 to p2 with control point p1.
func Quad(p0, p1, p2 Point) Bezier {
	return Bezier{Points: []Point{p0, p1, p2}}
}

// Cubic returns the cubic Bézier from p0 to p3 with control points p1 and p2.
func Cubic(p0, p1, p2, p3 Point) Bezier {
	return Bezier{Points: []Point{p0, p1, p2, p3}}
}

func (b Bezier) Kind() Kind   { return BezierKind }
func (b Bezier) Closed() bool { return false }

func (b Bezier) Validate() error {
	if len(b.Points) < 2 {
		return invalid(BezierKind, "need at least 2 points, got %d", len(b.Points))
	}
	if i, ok := finitePoints(b.Points); !ok {
		return invalid(BezierKind, "point %d %s is not finite", i, b.Points[i])
	}
	return nil
}

// Degree returns the polynomial degree of the curve, one less than the number
// of points.
func (b Bezier) Degree() int {
	return len(b.Points) - 1
}

// Eval evaluates the curve at t.
func (b Bezier) Eval(t float64) Point {
	return newCasteljau(b.Points).eval(t)
}

func (b Bezier) Start() Point { return b.Points[0] }
func (b Bezier) End() Point   { return b.Points[len(b.Points)-1] }

// Tangents returns the curve's direction at its ends. Control points that
// coincide with an endpoint are skipped, as the curve's direction is then
// determined by the next distinct point.
func (b Bezier) Tangents() (Vec2, Vec2) {
	n := len(b.Points)
	rev := make([]Point, n-1)
	for i := range rev {
		rev[i] = b.Points[n-2-i]
	}
	return firstDirection(b.Start(), b.Points[1:]...), firstDirection(b.End(), rev...).Negate()
}

func (b Bezier) sampleCount(n int) int { return n }

func (b Bezier) sampleInto(dst []Sample, n int) {
	c := newCasteljau(b.Points)
	for i := range n {
		t := param(i, n)
		dst[i] = Sample{Point: c.eval(t), T: t}
	}
}

func (b Bezier) pointsFor(tolerance float64) int {
	d := float64(b.Degree())
	return stepsFor(d*(d-1)*maxSecondDifference(b.Points), tolerance) + 1
}

// casteljau evaluates Bézier curves by repeated linear interpolation of the
// control points. It is exact at t = 0 and t = 1 for any degree. It holds
// scratch space, so a single value must not be used concurrently.
type casteljau struct {
	pts     []Point
	scratch []Point
}

func newCasteljau(pts []Point) *casteljau {
	return &casteljau{pts: pts, scratch: make([]Point, len(pts))}
}

func (c *casteljau) eval(t float64) Point {
	d := c.scratch
	copy(d, c.pts)
	for n := len(d) - 1; n > 0; n-- {
		for i := range n {
			d[i] = d[i].Lerp(d[i+1], t)
		}
	}
	return d[0]
}

// Diagonal is a cubic Bézier connecting two points with an S-shaped curve, as
// used for tree and flow diagrams. Both control points sit halfway between the
// endpoints along x, level with their respective endpoint. Flipped puts them
// halfway along y instead.
type Diagonal struct {
	P0, P1  Point
	Flipped bool
}

func (d Diagonal) Kind() Kind   { return DiagonalKind }
func (d Diagonal) Closed() bool { return false }

func (d Diagonal) Validate() error {
	if !d.P0.IsFinite() || !d.P1.IsFinite() {
		return invalid(DiagonalKind, "endpoints %s and %s must be finite", d.P0, d.P1)
	}
	return nil
}

// Bezier returns the cubic Bézier the diagonal is drawn as.
func (d Diagonal) Bezier() Bezier {
	mid := d.P0.Midpoint(d.P1)
	if d.Flipped {
		return Cubic(d.P0, Pt(d.P0.X, mid.Y), Pt(d.P1.X, mid.Y), d.P1)
	}
	return Cubic(d.P0, Pt(mid.X, d.P0.Y), Pt(mid.X, d.P1.Y), d.P1)
}

func (d Diagonal) Eval(t float64) Point { return d.Bezier().Eval(t) }
func (d Diagonal) Start() Point         { return d.P0 }
func (d Diagonal) End() Point           { return d.P1 }

func (d Diagonal) Tangents() (Vec2, Vec2) {
	return d.Bezier().Tangents()
}

func (d Diagonal) sampleCount(n int) int { return n }

func (d Diagonal) sampleInto(dst []Sample, n int) {
	d.Bezier().sampleInto(dst, n)
}

func (d Diagonal) pointsFor(tolerance float64) int {
	return d.Bezier().pointsFor(tolerance)
}
