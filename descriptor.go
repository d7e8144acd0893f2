package ggforce

import "math"

// Kind identifies the family of a [Descriptor].
type Kind int

const (
	// A circular arc, see [Arc].
	ArcKind Kind = iota + 1
	// A wedge or annulus sector, see [ArcBar].
	ArcBarKind
	// A full circle, see [Circle].
	CircleKind
	// A Bézier curve of any degree, see [Bezier].
	BezierKind
	// An S-shaped cubic Bézier between two points, see [Diagonal].
	DiagonalKind
	// A uniform B-spline, see [BSpline].
	BSplineKind
	// A straight segment, see [Link].
	LinkKind
)

var kindNames = [...]string{
	ArcKind:      "arc",
	ArcBarKind:   "arc_bar",
	CircleKind:   "circle",
	BezierKind:   "bezier",
	DiagonalKind: "diagonal",
	BSplineKind:  "bspline",
	LinkKind:     "link",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Kinds returns all valid kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := ArcKind; int(k) < len(kindNames); k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind returns the kind with the given name, as printed by [Kind.String].
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Descriptor is the set of typed parameters that fully define one curve. The
// set of descriptors is closed; it consists of [Arc], [ArcBar], [Circle],
// [Bezier], [Diagonal], [BSpline] and [Link].
//
// Descriptors are values. Tessellation never modifies them.
type Descriptor interface {
	Kind() Kind
	// Validate returns a [*DescriptorError] if the parameters don't describe
	// a finite, continuous path.
	Validate() error
	// Closed reports whether the samples describe the boundary of a closed
	// polygon rather than an open path. The closing edge from the last to the
	// first sample is implied, not emitted.
	Closed() bool

	// sampleCount returns the number of samples emitted for a resolution of n
	// points per curve.
	sampleCount(n int) int
	// sampleInto writes sampleCount(n) samples to dst.
	sampleInto(dst []Sample, n int)
	// pointsFor returns the n needed to keep the sampled polyline within
	// tolerance of the curve.
	pointsFor(tolerance float64) int
}

// ParametricCurve describes an open curve parametrized by t ∈ [0, 1].
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
	Start() Point
	End() Point
	// Tangents returns the unit direction of the curve at t = 0 and t = 1.
	// Degenerate curves without a direction produce zero vectors.
	Tangents() (Vec2, Vec2)
}

var (
	_ ParametricCurve = Arc{}
	_ ParametricCurve = Bezier{}
	_ ParametricCurve = Diagonal{}
	_ ParametricCurve = BSpline{}
	_ ParametricCurve = Link{}
)

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

func finitePoints(pts []Point) (int, bool) {
	for i, pt := range pts {
		if !pt.IsFinite() {
			return i, false
		}
	}
	return 0, true
}

// sampleCurve evaluates c at n uniformly spaced parameter values.
func sampleCurve(dst []Sample, c ParametricCurve, n int) {
	for i := range n {
		t := param(i, n)
		dst[i] = Sample{Point: c.Eval(t), T: t}
	}
}

// param returns the i-th of n uniformly spaced values in [0, 1], with exact
// endpoints.
func param(i, n int) float64 {
	if i == n-1 {
		return 1
	}
	return float64(i) / float64(n-1)
}

// stepsFor returns how many uniform steps a curve with second derivative
// bounded by dd needs so that no chord deviates more than tolerance from it.
func stepsFor(dd, tolerance float64) int {
	if dd <= 0 {
		return 1
	}
	steps := math.Ceil(math.Sqrt(dd / (8 * tolerance)))
	if steps > MaxPoints || math.IsNaN(steps) {
		return MaxPoints
	}
	return max(int(steps), 1)
}

// maxSecondDifference returns the largest magnitude of P[i] − 2 P[i+1] + P[i+2].
func maxSecondDifference(pts []Point) float64 {
	var dd float64
	for i := 0; i+2 < len(pts); i++ {
		d := pts[i].Sub(pts[i+1]).Add(pts[i+2].Sub(pts[i+1]))
		dd = max(dd, d.Hypot())
	}
	return dd
}

// firstDirection returns the normalized direction from origin to the first
// point of pts that differs from it.
func firstDirection(origin Point, pts ...Point) Vec2 {
	for _, pt := range pts {
		if d := pt.Sub(origin); !d.IsZero() {
			return d.Normalize()
		}
	}
	return Vec2{}
}
