package ggforce

import "golang.org/x/exp/constraints"

// lerp interpolates linearly between a and b. Unlike a + t(b − a), the result
// is exactly a for t = 0 and exactly b for t = 1.
func lerp[F constraints.Float](a, b, t F) F {
	return (1-t)*a + t*b
}

// clamp01 limits t to the unit interval.
func clamp01[F constraints.Float](t F) F {
	return min(max(t, 0), 1)
}
