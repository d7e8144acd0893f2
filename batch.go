package ggforce

import (
	"context"
	"fmt"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Instance is one curve of a batch.
type Instance struct {
	// Group identifies the instance's samples in the output. It must be
	// unique within a batch.
	Group string
	Curve Descriptor
	// Ends holds the attributes that vary along the curve. If nil, every
	// sample gets Shared.
	Ends *Endpoints
	// Shared holds the attributes that are constant along the curve,
	// including all categorical attributes.
	Shared AttributeSet
}

// BatchPoint is one sample of a batch's output, tagged with its group.
type BatchPoint struct {
	Group string
	Sample
	Attrs AttributeSet
}

// Span describes the contiguous run of output points of one instance.
type Span struct {
	Group  string
	Kind   Kind
	Offset int
	Len    int
	// Closed reports whether the points form a polygon boundary.
	Closed bool
}

// Result is the output of a batch.
type Result struct {
	// Points holds the samples of all instances, in input order. The samples
	// of one instance are contiguous.
	Points []BatchPoint
	// Spans holds one entry per instance, in input order.
	Spans []Span
}

// Groups returns an iterator over the spans of the result and the points
// belonging to each.
func (r Result) Groups() iter.Seq2[Span, []BatchPoint] {
	return func(yield func(Span, []BatchPoint) bool) {
		for _, sp := range r.Spans {
			if !yield(sp, r.Points[sp.Offset:sp.Offset+sp.Len]) {
				return
			}
		}
	}
}

// Bounds returns the smallest rectangle enclosing all points.
func (r Result) Bounds() Rect {
	b := emptyRect
	for _, pt := range r.Points {
		b = b.UnionPoint(pt.Point)
	}
	return b
}

// Run tessellates every instance and concatenates the samples.
//
// All instances are validated before any of them is sampled. If the
// resolution or any instance is invalid, Run returns a [*BatchError] for the
// first offending instance and no output.
func Run(instances []Instance, res Resolution) (Result, error) {
	plan, err := planBatch(instances, res)
	if err != nil {
		return Result{}, err
	}
	out := plan.result()
	for i := range instances {
		plan.fill(out.Points, i)
	}
	return out, nil
}

// RunParallel is like [Run], but samples instances concurrently, using at
// most workers goroutines. If workers <= 0, GOMAXPROCS goroutines are used.
// The output is identical to that of Run.
//
// Cancelling ctx stops sampling and returns ctx's error.
func RunParallel(ctx context.Context, instances []Instance, res Resolution, workers int) (Result, error) {
	plan, err := planBatch(instances, res)
	if err != nil {
		return Result{}, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := plan.result()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range instances {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Every instance writes to its own range of out.Points.
			plan.fill(out.Points, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return out, nil
}

type batchPlan struct {
	instances []Instance
	// points per curve
	n     []int
	spans []Span
	total int
}

func planBatch(instances []Instance, res Resolution) (*batchPlan, error) {
	if err := res.Validate(); err != nil {
		return nil, &BatchError{Index: -1, Err: err}
	}
	plan := &batchPlan{
		instances: instances,
		n:         make([]int, len(instances)),
		spans:     make([]Span, len(instances)),
	}
	seen := make(map[string]int, len(instances))
	for i, inst := range instances {
		fail := func(err error) error {
			return &BatchError{Index: i, Group: inst.Group, Err: err}
		}
		if inst.Curve == nil {
			return nil, fail(&DescriptorError{Reason: "no curve"})
		}
		if err := inst.Curve.Validate(); err != nil {
			return nil, fail(err)
		}
		if j, ok := seen[inst.Group]; ok {
			return nil, fail(fmt.Errorf("%w: also used by instance %d", ErrDuplicateGroup, j))
		}
		seen[inst.Group] = i

		n := res.pointsFor(inst.Curve)
		m := inst.Curve.sampleCount(n)
		plan.n[i] = n
		plan.spans[i] = Span{
			Group:  inst.Group,
			Kind:   inst.Curve.Kind(),
			Offset: plan.total,
			Len:    m,
			Closed: inst.Curve.Closed(),
		}
		plan.total += m
	}
	return plan, nil
}

func (p *batchPlan) result() Result {
	return Result{
		Points: make([]BatchPoint, p.total),
		Spans:  p.spans,
	}
}

// fill samples instance i into its span of points.
func (p *batchPlan) fill(points []BatchPoint, i int) {
	inst := p.instances[i]
	sp := p.spans[i]
	samples := make([]Sample, sp.Len)
	inst.Curve.sampleInto(samples, p.n[i])
	dst := points[sp.Offset : sp.Offset+sp.Len]
	for j, s := range samples {
		dst[j] = BatchPoint{
			Group:  inst.Group,
			Sample: s,
			Attrs:  Interpolate(inst.Ends, inst.Shared, s.T),
		}
	}
}
