package ggforce

import (
	"errors"
	"math"
	"testing"
)

func TestArcQuarter(t *testing.T) {
	a := Arc{Center: Pt(0, 0), Radius: 1, StartAngle: 0, EndAngle: math.Pi / 2}
	got := mustTessellate(t, a, Points(3))
	want := []Sample{
		{Pt(1, 0), 0},
		{Pt(math.Sqrt2/2, math.Sqrt2/2), 0.5},
		{Pt(0, 1), 1},
	}
	diff(t, want, got, approx(1e-9))
}

func TestArcReverse(t *testing.T) {
	fwd := Arc{Center: Pt(2, -1), Radius: 3, StartAngle: 0.25, EndAngle: 2}
	rev := Arc{Center: Pt(2, -1), Radius: 3, StartAngle: 2, EndAngle: 0.25}
	const n = 17
	a := mustTessellate(t, fwd, Points(n))
	b := mustTessellate(t, rev, Points(n))
	for i := range n {
		assertNear(t, a[i].Point, b[n-1-i].Point, 1e-12)
	}

	// A reverse arc must not be turned into the complementary forward arc.
	mid := b[n/2].Point
	assertNear(t, mid, fwd.Center.Polar(3, 1.125), 1e-12)
}

func TestArcFullTurns(t *testing.T) {
	a := Arc{Radius: 1, StartAngle: 0, EndAngle: 4 * math.Pi}
	got := mustTessellate(t, a, Points(9))
	for i, s := range got {
		assertNear(t, s.Point, Pt(math.Cos(float64(i)*math.Pi/2), math.Sin(float64(i)*math.Pi/2)), 1e-12)
	}
}

func TestArcTolerance(t *testing.T) {
	for _, tol := range []float64{1, 0.1, 1e-3, 1e-6} {
		a := Arc{Center: Pt(1, 1), Radius: 10, StartAngle: -1, EndAngle: 3}
		got := mustTessellate(t, a, Tolerance(tol))
		if len(got) < 2 {
			t.Fatalf("tolerance %g: got %d points", tol, len(got))
		}
		for i := range len(got) - 1 {
			mid := a.Eval((got[i].T + got[i+1].T) / 2)
			if d := segmentDistance(mid, got[i].Point, got[i+1].Point); d > tol*(1+1e-9) {
				t.Errorf("tolerance %g: chord %d deviates by %g", tol, i, d)
			}
		}
	}
}

func TestArcZeroRadius(t *testing.T) {
	a := Arc{Center: Pt(3, 4), Radius: 0, StartAngle: 0, EndAngle: 1}
	for _, s := range mustTessellate(t, a, Points(5)) {
		if s.Point != a.Center {
			t.Errorf("got %s, want center %s", s.Point, a.Center)
		}
	}
	if n, err := PointCount(a, Tolerance(0.01)); err != nil || n != 2 {
		t.Errorf("got %d, %v, want 2 points", n, err)
	}
}

func TestArcTangents(t *testing.T) {
	const epsilon = 1e-12
	a := Arc{Radius: 1, StartAngle: 0, EndAngle: math.Pi / 2}
	s, e := a.Tangents()
	assertNear(t, Point(s), Pt(0, 1), epsilon)
	assertNear(t, Point(e), Pt(-1, 0), epsilon)

	a.StartAngle, a.EndAngle = a.EndAngle, a.StartAngle
	s, e = a.Tangents()
	assertNear(t, Point(s), Pt(1, 0), epsilon)
	assertNear(t, Point(e), Pt(0, -1), epsilon)

	s, e = Arc{Radius: 0, EndAngle: 1}.Tangents()
	if !s.IsZero() || !e.IsZero() {
		t.Errorf("got %s, %s for zero radius arc", s, e)
	}
}

func TestArcBarWedge(t *testing.T) {
	ab := ArcBar{Center: Pt(0, 0), Radius: 2, StartAngle: 0, EndAngle: math.Pi / 2}
	got := mustTessellate(t, ab, Points(3))
	want := []Sample{
		{Pt(2, 0), 0},
		{Pt(math.Sqrt2, math.Sqrt2), 1.0 / 3.0},
		{Pt(0, 2), 2.0 / 3.0},
		{Pt(0, 0), 1},
	}
	diff(t, want, got, approx(1e-9))
	if !ab.Closed() {
		t.Error("arc bar should be closed")
	}
}

func TestArcBarAnnulus(t *testing.T) {
	ab := ArcBar{Center: Pt(1, 1), Radius: 2, InnerRadius: 1, StartAngle: 0, EndAngle: math.Pi}
	const n = 5
	got := mustTessellate(t, ab, Points(n))
	if len(got) != 2*n {
		t.Fatalf("got %d points, want %d", len(got), 2*n)
	}
	// Outer arc forward, then the inner arc backwards.
	assertNear(t, got[0].Point, Pt(3, 1), 1e-12)
	assertNear(t, got[n-1].Point, Pt(-1, 1), 1e-12)
	assertNear(t, got[n].Point, Pt(0, 1), 1e-12)
	assertNear(t, got[2*n-1].Point, Pt(2, 1), 1e-12)
	for i, s := range got {
		r := s.Point.Distance(ab.Center)
		want := 2.0
		if i >= n {
			want = 1
		}
		if math.Abs(r-want) > 1e-12 {
			t.Errorf("point %d at distance %g, want %g", i, r, want)
		}
	}
	if got[0].T != 0 || got[len(got)-1].T != 1 {
		t.Errorf("got parameter range [%g, %g]", got[0].T, got[len(got)-1].T)
	}
}

func TestArcBarExplode(t *testing.T) {
	ab := ArcBar{Radius: 1, StartAngle: 0, EndAngle: math.Pi / 2, Explode: math.Sqrt2}
	got := mustTessellate(t, ab, Points(2))
	// The wedge is moved by ⟨1, 1⟩, along its bisector.
	want := []Point{Pt(2, 1), Pt(1, 2), Pt(1, 1)}
	diff(t, want, points(got), approx(1e-12))
}

func TestArcBarInvalid(t *testing.T) {
	for _, ab := range []ArcBar{
		{Radius: 1, InnerRadius: 2},
		{Radius: -1},
		{Radius: 1, InnerRadius: -0.5},
		{Radius: 1, EndAngle: math.NaN()},
		{Radius: 1, Explode: math.Inf(1)},
	} {
		_, err := Tessellate(ab, Points(10))
		if !errors.Is(err, ErrInvalidDescriptor) {
			t.Errorf("%+v: got error %v, want ErrInvalidDescriptor", ab, err)
		}
	}
}

func TestCircle(t *testing.T) {
	c := Circle{Center: Pt(1, 2), Radius: 3}
	got := mustTessellate(t, c, Points(4))
	want := []Point{Pt(4, 2), Pt(1, 5), Pt(-2, 2), Pt(1, -1)}
	diff(t, want, points(got), approx(1e-12))
	diff(t, []float64{0, 1.0 / 3.0, 2.0 / 3.0, 1}, params(got), approx(1e-15))

	n, err := PointCount(c, Tolerance(100))
	if err != nil || n < 3 {
		t.Errorf("got %d, %v, want at least 3 points", n, err)
	}
}
