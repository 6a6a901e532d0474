package bspline

import (
	"fmt"
	"math"

	"github.com/npillmayer/curves"
)

// KnotVector is a non-decreasing sequence of parameter values, partitioning
// the domain of a B-spline into knot spans.
type KnotVector []float64

// ClampedUniform creates the knot vector for a B-spline with n control
// points and basis functions of degree p. It consists of
//
//   - p zeros,
//   - n−p+1 values spaced uniformly from 0 to 1, inclusive,
//   - p ones,
//
// for a total length of n+p+1. The first p+1 knots are 0, forcing the curve
// to start at its first control point. For n > p the last p+1 knots are 1
// and the curve approaches its last control point at the right end.
// If n−p+1 is 1 (n = p), the single uniform value is 0 and the vector ends
// with only p ones; the curve then falls back towards the zero vector as
// x approaches 1.
//
// ClampedUniform fails for n < p, as the uniform part would then cover an
// empty span.
func ClampedUniform(n, p int) (KnotVector, error) {
	if p < 0 {
		return nil, fmt.Errorf("%w: got %d", curves.ErrInvalidOrder, p)
	}
	if n < p {
		return nil, fmt.Errorf("%w: %d control points for order %d", curves.ErrTooFewControlPoints, n, p)
	}
	knots := make(KnotVector, 0, n+p+1)
	for i := 0; i < p; i++ {
		knots = append(knots, 0)
	}
	m := n - p + 1 // number of uniformly spaced values
	for i := 0; i < m; i++ {
		switch {
		case i == 0:
			knots = append(knots, 0)
		case i == m-1:
			knots = append(knots, 1)
		default:
			knots = append(knots, float64(i)/float64(m-1))
		}
	}
	for i := 0; i < p; i++ {
		knots = append(knots, 1)
	}
	tracer().Debugf("knot vector for n=%d, p=%d: %v", n, p, knots)
	return knots, nil
}

// Clone returns a copy of a knot vector.
func (kv KnotVector) Clone() KnotVector {
	return append(KnotVector(nil), kv...)
}

// Len is the number of knots.
func (kv KnotVector) Len() int {
	return len(kv)
}

// Span returns the index k of the knot span containing x, i.e. the largest
// k with kv[k] ≤ x < kv[k+1]. Span returns −1 if x lies outside every
// non-empty knot span; in particular for x at or beyond the last knot.
//
// Spans of length 0 (repeated knots) never contain a parameter.
func (kv KnotVector) Span(x float64) int {
	n := len(kv) - 1 // index of the last span start candidate + 1
	if n < 1 || x < kv[0] || x >= kv[n] {
		return -1
	}
	// binary search, as in Piegl & Tiller, The NURBS Book, algorithm A2.1
	low, high := 0, n
	for high-low > 1 {
		mid := (low + high) / 2
		if x < kv[mid] {
			high = mid
		} else {
			low = mid
		}
	}
	return low
}

// KnotMultiplicity is a knot value together with the number of its
// repetitions.
type KnotMultiplicity struct {
	Knot float64
	Mult int
}

// Multiplicities determines the multiplicities of the values in a knot
// vector, in ascending order of knots.
func (kv KnotVector) Multiplicities() []KnotMultiplicity {
	if len(kv) == 0 {
		return nil
	}
	mults := []KnotMultiplicity{{kv[0], 0}}
	cur := 0
	for _, knot := range kv {
		if math.Abs(knot-mults[cur].Knot) > curves.Epsilon {
			mults = append(mults, KnotMultiplicity{knot, 0})
			cur++
		}
		mults[cur].Mult++
	}
	return mults
}

// IsNonDecreasing is a predicate: does the vector satisfy kv[i] ≤ kv[i+1]?
func (kv KnotVector) IsNonDecreasing() bool {
	for i := 1; i < len(kv); i++ {
		if kv[i] < kv[i-1] {
			return false
		}
	}
	return true
}

// IsClamped is a predicate: are the first and last p+1 knots 0 and 1,
// respectively, with the vector non-decreasing in between?
func (kv KnotVector) IsClamped(p int) bool {
	if len(kv) < 2*(p+1) {
		return false
	}
	for i := 0; i <= p; i++ {
		if kv[i] != 0 || kv[len(kv)-1-i] != 1 {
			return false
		}
	}
	return kv.IsNonDecreasing()
}
