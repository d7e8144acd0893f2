package ggforce

import "fmt"

// Sample is one tessellated point. T is its normalized position along the
// curve's parameter: 0 for the first sample of a curve, 1 for the last, and
// non-decreasing in between. T is not proportional to arc length.
type Sample struct {
	Point
	T float64
}

func (s Sample) String() string {
	return fmt.Sprintf("%s@%g", s.Point, s.T)
}

// Transform returns the sample with its point transformed by aff. T is
// unaffected.
func (s Sample) Transform(aff Affine) Sample {
	return Sample{Point: s.Point.Transform(aff), T: s.T}
}

// Tessellate converts a curve into an ordered sequence of samples.
//
// For open curves with a fixed resolution of N points, exactly N samples are
// produced, the first at the curve's start and the last at its end. [ArcBar]
// emits both of its boundary arcs, see [PointCount].
//
// Tessellate is deterministic and keeps no state between calls. It returns
// an error matching [ErrInvalidResolution] or [ErrInvalidDescriptor] for
// invalid input.
func Tessellate(d Descriptor, res Resolution) ([]Sample, error) {
	m, err := PointCount(d, res)
	if err != nil {
		return nil, err
	}
	out := make([]Sample, m)
	d.sampleInto(out, res.pointsFor(d))
	return out, nil
}

// PointCount returns the number of samples [Tessellate] produces for d.
//
// This equals the points per curve requested by res, except for [ArcBar],
// which emits the outer arc followed by the reversed inner arc, or by the
// center point alone if the inner radius is zero.
func PointCount(d Descriptor, res Resolution) (int, error) {
	if err := res.Validate(); err != nil {
		return 0, err
	}
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return d.sampleCount(res.pointsFor(d)), nil
}

// Tangents returns the unit direction at the start and end of an open curve,
// for placing arrow heads. Closed shapes and zero-length curves have no
// direction, and return zero vectors, as do invalid and nil descriptors.
func Tangents(d Descriptor) (start, end Vec2) {
	if d == nil || d.Validate() != nil {
		return Vec2{}, Vec2{}
	}
	if c, ok := d.(ParametricCurve); ok && !d.Closed() {
		return c.Tangents()
	}
	return Vec2{}, Vec2{}
}
