package ggforce

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// approx compares floats within an absolute margin.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

func params(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.T
	}
	return out
}

func points(samples []Sample) []Point {
	out := make([]Point, len(samples))
	for i, s := range samples {
		out[i] = s.Point
	}
	return out
}

func mustTessellate(t *testing.T, d Descriptor, res Resolution) []Sample {
	t.Helper()
	out, err := Tessellate(d, res)
	if err != nil {
		t.Fatalf("Tessellate(%v, %v): %s", d, res, err)
	}
	return out
}

// segmentDistance returns the distance of pt from the segment a–b.
func segmentDistance(pt, a, b Point) float64 {
	d := b.Sub(a)
	l2 := d.Hypot2()
	if l2 == 0 {
		return pt.Distance(a)
	}
	u := clamp01(pt.Sub(a).Dot(d) / l2)
	return pt.Distance(a.Lerp(b, u))
}
