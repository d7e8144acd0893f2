package ggforce

import "math"

// Arc is an open circular arc.
//
// The arc runs from StartAngle to EndAngle, in radians. EndAngle may be less
// than StartAngle, in which case the arc winds in the negative direction.
// Angles are never normalized, so a sweep larger than 2π winds more than once.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func (a Arc) Kind() Kind   { return ArcKind }
func (a Arc) Closed() bool { return false }

func (a Arc) Validate() error {
	switch {
	case !a.Center.IsFinite():
		return invalid(ArcKind, "center %s is not finite", a.Center)
	case !finite(a.Radius, a.StartAngle, a.EndAngle):
		return invalid(ArcKind, "radius and angles must be finite")
	case a.Radius < 0:
		return invalid(ArcKind, "negative radius %g", a.Radius)
	}
	return nil
}

// Sweep returns the signed angle covered by the arc.
func (a Arc) Sweep() float64 {
	return a.EndAngle - a.StartAngle
}

// angle returns the angle at parameter t. It is exact at t = 0 and t = 1.
func (a Arc) angle(t float64) float64 {
	return lerp(a.StartAngle, a.EndAngle, t)
}

func (a Arc) Eval(t float64) Point {
	return a.Center.Polar(a.Radius, a.angle(t))
}

func (a Arc) Start() Point { return a.Eval(0) }
func (a Arc) End() Point   { return a.Eval(1) }

func (a Arc) Tangents() (Vec2, Vec2) {
	if a.Radius == 0 || a.StartAngle == a.EndAngle {
		return Vec2{}, Vec2{}
	}
	turn := math.Copysign(math.Pi/2, a.Sweep())
	return VecFromAngle(a.StartAngle + turn), VecFromAngle(a.EndAngle + turn)
}

func (a Arc) sampleCount(n int) int { return n }

func (a Arc) sampleInto(dst []Sample, n int) {
	sampleCurve(dst, a, n)
}

func (a Arc) pointsFor(tolerance float64) int {
	return arcSteps(a.Radius, a.Sweep(), tolerance) + 1
}

// arcSteps returns the number of chords needed to approximate an arc of the
// given radius and sweep, such that the sagitta of every chord is at most
// tolerance.
func arcSteps(radius, sweep, tolerance float64) int {
	if radius == 0 || sweep == 0 {
		return 1
	}
	var step float64
	if tolerance >= 2*radius {
		step = math.Pi
	} else {
		step = 2 * math.Acos(1-tolerance/radius)
	}
	steps := math.Ceil(math.Abs(sweep) / step)
	if steps >= MaxPoints || math.IsNaN(steps) {
		return MaxPoints - 1
	}
	return max(int(steps), 1)
}

// ArcBar is a closed wedge (InnerRadius = 0) or annulus sector. It is the
// shape of a pie or donut chart slice.
type ArcBar struct {
	Center      Point
	Radius      float64
	InnerRadius float64
	StartAngle  float64
	EndAngle    float64
	// Explode moves the shape this far away from Center, along the bisector
	// of the two angles.
	Explode float64
}

func (ab ArcBar) Kind() Kind   { return ArcBarKind }
func (ab ArcBar) Closed() bool { return true }

func (ab ArcBar) Validate() error {
	switch {
	case !ab.Center.IsFinite():
		return invalid(ArcBarKind, "center %s is not finite", ab.Center)
	case !finite(ab.Radius, ab.InnerRadius, ab.StartAngle, ab.EndAngle, ab.Explode):
		return invalid(ArcBarKind, "radii, angles and explode offset must be finite")
	case ab.Radius < 0:
		return invalid(ArcBarKind, "negative radius %g", ab.Radius)
	case ab.InnerRadius < 0:
		return invalid(ArcBarKind, "negative inner radius %g", ab.InnerRadius)
	case ab.InnerRadius > ab.Radius:
		return invalid(ArcBarKind, "inner radius %g exceeds radius %g", ab.InnerRadius, ab.Radius)
	}
	return nil
}

// Outer returns the outer boundary arc.
func (ab ArcBar) Outer() Arc {
	return Arc{
		Center:     ab.center(),
		Radius:     ab.Radius,
		StartAngle: ab.StartAngle,
		EndAngle:   ab.EndAngle,
	}
}

// Inner returns the inner boundary arc, running in the same direction as
// [ArcBar.Outer].
func (ab ArcBar) Inner() Arc {
	a := ab.Outer()
	a.Radius = ab.InnerRadius
	return a
}

func (ab ArcBar) center() Point {
	if ab.Explode == 0 {
		return ab.Center
	}
	return ab.Center.Polar(ab.Explode, 0.5*(ab.StartAngle+ab.EndAngle))
}

func (ab ArcBar) sampleCount(n int) int {
	if ab.InnerRadius == 0 {
		return n + 1
	}
	return 2 * n
}

func (ab ArcBar) sampleInto(dst []Sample, n int) {
	outer := ab.Outer()
	for i := range n {
		dst[i].Point = outer.Eval(param(i, n))
	}
	if ab.InnerRadius == 0 {
		dst[n].Point = outer.Center
	} else {
		inner := ab.Inner()
		for i := range n {
			dst[2*n-1-i].Point = inner.Eval(param(i, n))
		}
	}
	m := ab.sampleCount(n)
	for i := range m {
		dst[i].T = param(i, m)
	}
}

func (ab ArcBar) pointsFor(tolerance float64) int {
	return arcSteps(ab.Radius, ab.EndAngle-ab.StartAngle, tolerance) + 1
}

// Circle is a closed full circle.
type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) Kind() Kind   { return CircleKind }
func (c Circle) Closed() bool { return true }

func (c Circle) Validate() error {
	switch {
	case !c.Center.IsFinite():
		return invalid(CircleKind, "center %s is not finite", c.Center)
	case !finite(c.Radius):
		return invalid(CircleKind, "radius must be finite")
	case c.Radius < 0:
		return invalid(CircleKind, "negative radius %g", c.Radius)
	}
	return nil
}

func (c Circle) sampleCount(n int) int { return n }

// sampleInto places n points evenly around the circle, starting at angle 0.
// The first point is not repeated at the end.
func (c Circle) sampleInto(dst []Sample, n int) {
	for i := range n {
		th := 2 * math.Pi * float64(i) / float64(n)
		dst[i] = Sample{Point: c.Center.Polar(c.Radius, th), T: param(i, n)}
	}
}

func (c Circle) pointsFor(tolerance float64) int {
	return max(arcSteps(c.Radius, 2*math.Pi, tolerance), 3)
}
