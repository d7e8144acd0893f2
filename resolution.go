package ggforce

import (
	"fmt"
	"math"
)

// MaxPoints is the largest number of points per curve that an adaptive
// [Resolution] will request, no matter how small its tolerance.
const MaxPoints = 1 << 16

// Resolution controls how densely curves are sampled. It is either a fixed
// number of points per curve, N, or a Tolerance from which the number of
// points is derived per curve. Exactly one of the two must be set.
//
// The zero value is not a valid resolution.
type Resolution struct {
	// N is the number of points per curve. It must be at least 2.
	N int
	// Tolerance is the largest distance, in data units, that a chord of the
	// sampled polyline may deviate from the true curve.
	Tolerance float64
}

// Points returns a resolution of n points per curve.
func Points(n int) Resolution {
	return Resolution{N: n}
}

// Tolerance returns an adaptive resolution.
func Tolerance(tol float64) Resolution {
	return Resolution{Tolerance: tol}
}

// IsAdaptive reports whether the number of points depends on the curve.
func (r Resolution) IsAdaptive() bool {
	return r.N == 0 && r.Tolerance != 0
}

func (r Resolution) String() string {
	if r.IsAdaptive() {
		return fmt.Sprintf("Tolerance(%g)", r.Tolerance)
	}
	return fmt.Sprintf("Points(%d)", r.N)
}

// Validate returns a [*ResolutionError] if r can't be used to sample curves.
func (r Resolution) Validate() error {
	fail := func(reason string) error {
		return &ResolutionError{Resolution: r, Reason: reason}
	}
	switch {
	case r.N != 0 && r.Tolerance != 0:
		return fail("both a point count and a tolerance are set")
	case r.N == 0 && r.Tolerance == 0:
		return fail("neither a point count nor a tolerance is set")
	case r.IsAdaptive() && (r.Tolerance < 0 || math.IsNaN(r.Tolerance) || math.IsInf(r.Tolerance, 0)):
		return fail("tolerance must be positive and finite")
	case !r.IsAdaptive() && r.N < 2:
		return fail("a curve needs at least 2 points")
	}
	return nil
}

// pointsFor returns the number of points per curve for d. r must be valid.
func (r Resolution) pointsFor(d Descriptor) int {
	if !r.IsAdaptive() {
		return r.N
	}
	return min(max(d.pointsFor(r.Tolerance), 2), MaxPoints)
}
