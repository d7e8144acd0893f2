// Package ggforce tessellates the curves drawn by plot layers into point
// sequences. Arcs, arc bars, circles, Béziers, diagonals, B-splines and
// links are described by small value types and sampled into dense
// polylines, ready for a path renderer.
//
// # Descriptors
//
// Every curve family has its own [Descriptor] type, carrying only the fields
// valid for that family: [Arc], [ArcBar], [Circle], [Bezier], [Diagonal],
// [BSpline] and [Link]. Descriptors are validated before any sampling
// happens; invalid ones produce errors matching [ErrInvalidDescriptor].
//
// # Sampling
//
// [Tessellate] samples a single curve at a given [Resolution], which is
// either a fixed number of points per curve (see [Points]) or a maximum
// deviation from the true curve (see [Tolerance]). Every [Sample] carries,
// next to its coordinates, its normalized parameter T, running from 0 at the
// first sample to 1 at the last.
//
// The parameter is what drives attribute interpolation. [Interpolate] blends
// numbers and colors given for both ends of a curve, so that a curve can fade
// from one color or width to another. Interpolation follows T rather than arc
// length: it is cheap and deterministic, but on strongly bent curves the
// gradient is not spread evenly along the drawn line.
//
// # Batches
//
// Plot layers draw many curves at once. [Run] samples a list of [Instance]
// values and concatenates the results, keeping the points of every instance
// contiguous and tagged with the instance's group. A batch either succeeds
// as a whole or fails with a [*BatchError] naming the first invalid
// instance. [RunParallel] does the same work concurrently.
//
// # Rendering
//
// The package doesn't render, but [WriteSVG] and [WriteSVGDocument] turn a
// batch's output into SVG elements, which is useful for inspecting the
// output.
package ggforce
