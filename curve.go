package curves

import "fmt"

// Curve is the capability shared by all curve variants: evaluation at a
// parameter value within a known domain. Curves are immutable values, so a
// Curve may be evaluated from several goroutines at once.
type Curve interface {
	Dim() int           // dimension of the curve's points
	Domain() Domain     // parameter domain
	At(t float64) Point // curve point at parameter t
}

// Domain is a parameter interval [Lo,Hi] or, if OpenHi is set, [Lo,Hi).
type Domain struct {
	Lo, Hi float64
	OpenHi bool
}

// Closed01 is the parameter domain of Bézier curves.
var Closed01 = Domain{Lo: 0, Hi: 1}

// HalfOpen01 is the parameter domain of B-spline curves. The right end is
// excluded, as the degree-0 basis functions are defined on half-open knot
// spans.
var HalfOpen01 = Domain{Lo: 0, Hi: 1, OpenHi: true}

// Contains is a predicate: is t a valid parameter?
func (d Domain) Contains(t float64) bool {
	if t < d.Lo {
		return false
	}
	if d.OpenHi {
		return t < d.Hi
	}
	return t <= d.Hi
}

// Param returns the i-th of n equidistant parameter values.
// For closed domains both ends are included, value n−1 being exactly Hi.
// For half-open domains the values are Lo + i⋅(Hi−Lo)/n, never reaching Hi.
// For n = 1, Param returns Lo.
func (d Domain) Param(i, n int) float64 {
	if i == 0 || n <= 1 {
		return d.Lo
	}
	span := d.Hi - d.Lo
	if d.OpenHi {
		return d.Lo + float64(i)*span/float64(n)
	}
	if i == n-1 {
		return d.Hi
	}
	return d.Lo + float64(i)*span/float64(n-1)
}

// Params returns n equidistant parameter values, see Param.
func (d Domain) Params(n int) []float64 {
	if n < 1 {
		return nil
	}
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = d.Param(i, n)
	}
	return ts
}

func (d Domain) String() string {
	if d.OpenHi {
		return fmt.Sprintf("[%g,%g)", d.Lo, d.Hi)
	}
	return fmt.Sprintf("[%g,%g]", d.Lo, d.Hi)
}
