package engine

import "golang.org/x/exp/constraints"

// absValue returns the absolute value of x.
func absValue[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts v to the inclusive range [low, high].
func clamp[T constraints.Ordered](v, low, high T) T {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
