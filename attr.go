package ggforce

import (
	"maps"

	"github.com/lucasb-eyer/go-colorful"
)

// Values holds attributes that can be blended along a curve.
type Values struct {
	Numbers map[string]float64
	Colors  map[string]colorful.Color
}

// Endpoints holds the values of interpolated attributes at the start (t = 0)
// and end (t = 1) of a curve. Attributes ramp linearly in the curve parameter,
// regardless of how the curve bends between its ends.
type Endpoints struct {
	From, To Values
	// Space selects the color space colors are blended in.
	Space ColorSpace
}

// AttributeSet is the complete set of attributes of one sample.
//
// Categories, such as a line type, are never interpolated. They always come
// from the curve instance as a whole.
type AttributeSet struct {
	Numbers    map[string]float64
	Colors     map[string]colorful.Color
	Categories map[string]string
}

// Number returns the numeric attribute with the given key, or def if it isn't
// set.
func (as AttributeSet) Number(key string, def float64) float64 {
	if v, ok := as.Numbers[key]; ok {
		return v
	}
	return def
}

// Color returns the color attribute with the given key.
func (as AttributeSet) Color(key string) (colorful.Color, bool) {
	c, ok := as.Colors[key]
	return c, ok
}

// Category returns the categorical attribute with the given key.
func (as AttributeSet) Category(key string) (string, bool) {
	c, ok := as.Categories[key]
	return c, ok
}

// Interpolate computes the attributes at parameter t, which is clamped to
// [0, 1].
//
// Numbers are interpolated linearly between ends.From and ends.To and are
// exact at t = 0 and t = 1. Colors are blended in ends.Space. An attribute
// set at only one of the two ends is held constant. Numbers and colors of
// shared that don't occur in ends are carried over unchanged, and the
// categories of shared are used as is.
//
// If ends is nil, the result is shared itself. The maps of the result may
// alias those of shared and must not be modified.
func Interpolate(ends *Endpoints, shared AttributeSet, t float64) AttributeSet {
	if ends == nil {
		return shared
	}
	t = clamp01(t)
	out := AttributeSet{Categories: shared.Categories}

	if n := len(shared.Numbers) + len(ends.From.Numbers) + len(ends.To.Numbers); n > 0 {
		out.Numbers = make(map[string]float64, n)
		maps.Copy(out.Numbers, shared.Numbers)
		blendInto(out.Numbers, ends.From.Numbers, ends.To.Numbers, func(a, b float64) float64 {
			return lerp(a, b, t)
		})
	}
	if n := len(shared.Colors) + len(ends.From.Colors) + len(ends.To.Colors); n > 0 {
		out.Colors = make(map[string]colorful.Color, n)
		maps.Copy(out.Colors, shared.Colors)
		blendInto(out.Colors, ends.From.Colors, ends.To.Colors, func(a, b colorful.Color) colorful.Color {
			return ends.Space.Blend(a, b, t)
		})
	}
	return out
}

// blendInto stores blend(from[k], to[k]) in dst for every key of from and to.
// Keys present in only one of the two maps keep their value.
func blendInto[V any](dst, from, to map[string]V, blend func(a, b V) V) {
	for k, a := range from {
		if b, ok := to[k]; ok {
			dst[k] = blend(a, b)
		} else {
			dst[k] = a
		}
	}
	for k, b := range to {
		if _, ok := from[k]; !ok {
			dst[k] = b
		}
	}
}
