package bspline

import (
	"fmt"
	"strings"
)

// Strategy selects the way basis functions are evaluated. All strategies
// yield the same values (up to floating point rounding for Localized).
type Strategy int

const (
	// Localized locates the knot span containing the parameter and evaluates
	// the p+1 basis functions with support there, in O(p²).
	Localized Strategy = iota
	// Memoized evaluates the Cox–de Boor recursion bottom-up, computing
	// every B(i,k) once per parameter value.
	Memoized
	// Recursive evaluates the Cox–de Boor recursion literally. Its cost
	// grows as O(2^p) per basis function; it serves as a reference.
	Recursive
)

var strategyNames = [...]string{"localized", "memoized", "recursive"}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy finds a strategy by name. The empty name selects Localized.
// Comparison is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	if name == "" {
		return Localized, nil
	}
	for i, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return Strategy(i), nil
		}
	}
	return Localized, fmt.Errorf("unknown B-spline evaluation strategy %q", name)
}

// Weight is the blending weight
//
//	w(i,p,x) = (x − t.i) / (t.[i+p] − t.i)
//
// of the Cox–de Boor recursion. For coincident knots t.i = t.[i+p] the weight
// is defined to be 0; the zero-length span then contributes nothing.
func (kv KnotVector) Weight(i, p int, x float64) float64 {
	d := kv[i+p] - kv[i]
	if d == 0 {
		return 0
	}
	return (x - kv[i]) / d
}

// Basis evaluates the basis function B(i,p) at x by the literal Cox–de Boor
// recursion:
//
//	B(i,0)(x) = 1 if t.i ≤ x < t.[i+1], 0 otherwise
//	B(i,p)(x) = w(i,p,x)⋅B(i,p−1)(x) + (1 − w(i+1,p,x))⋅B(i+1,p−1)(x)
//
// Note the half-open interval of the base case: at the very end of the
// domain every basis function evaluates to 0.
//
// Indices must satisfy 0 ≤ i and i+p+1 < len(kv).
func (kv KnotVector) Basis(i, p int, x float64) float64 {
	if p == 0 {
		if kv[i] <= x && x < kv[i+1] {
			return 1
		}
		return 0
	}
	return kv.Weight(i, p, x)*kv.Basis(i, p-1, x) +
		(1-kv.Weight(i+1, p, x))*kv.Basis(i+1, p-1, x)
}

// BasisTable evaluates the recursion bottom-up. The result holds the n basis
// functions of degree p, B(0,p) … B(n−1,p), at x, where n = len(kv)−p−1.
// Every intermediate B(i,k) is computed exactly once, with the same
// arithmetic as Basis, so results are identical to those of Basis.
func (kv KnotVector) BasisTable(p int, x float64) []float64 {
	m := len(kv) - 1 // number of degree-0 basis functions
	row := make([]float64, m)
	for i := 0; i < m; i++ {
		if kv[i] <= x && x < kv[i+1] {
			row[i] = 1
		}
	}
	for k := 1; k <= p; k++ {
		// row[i] holds B(i,k−1) for i < m−k+1; overwrite in ascending order,
		// B(i,k) needs B(i,k−1) and B(i+1,k−1) only
		for i := 0; i < m-k; i++ {
			row[i] = kv.Weight(i, k, x)*row[i] + (1-kv.Weight(i+1, k, x))*row[i+1]
		}
	}
	return row[:m-p]
}

// NonZeroBasis evaluates the p+1 basis functions of degree p which do not
// vanish at x, B(k−p,p) … B(k,p), where k is the knot span containing x.
// It returns k and the values. If x lies in no knot span, k is −1 and the
// values are nil.
//
// This is algorithm A2.2 of Piegl & Tiller, The NURBS Book. Callers must
// ensure that k−p ≥ 0, which holds for clamped knot vectors.
func (kv KnotVector) NonZeroBasis(p int, x float64) (int, []float64) {
	k := kv.Span(x)
	if k < 0 {
		return -1, nil
	}
	N := make([]float64, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	N[0] = 1
	for j := 1; j <= p; j++ {
		left[j] = x - kv[k+1-j]
		right[j] = kv[k+j] - x
		saved := 0.0
		for r := 0; r < j; r++ {
			// denominator is t.[k+r+1] − t.[k+r+1−j] ≥ t.[k+1] − t.k > 0
			temp := N[r] / (right[r+1] + left[j-r])
			N[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		N[j] = saved
	}
	return k, N
}
