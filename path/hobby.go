package path

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/curves/bezier"
)

// Hobby interpolation, as explained in
//
//	Smooth, Easy to Compute Interpolating Splines -- John D. Hobby
//	Computer Science Dept. Stanford University
//	Report No. STAN-CS-85-1047, Jan 1985
//
// and implemented in MetaFont (Computers & Typesetting, Vol. B, §§255ff).
// We support smooth knots with neutral tension and curl only, i.e. MetaFont's
// `z0 .. z1 .. z2` and `z0 .. z1 .. z2 .. cycle`.

var (
	// ErrTooFewKnots indicates that interpolation needs more knots.
	ErrTooFewKnots = errors.New("path has too few knots")
	// ErrDegenerateSegment indicates two consecutive knots collapse to one point.
	ErrDegenerateSegment = errors.New("path has degenerate segment")
	// ErrCycleHasDuplicateTerminalKnot indicates a cycle which repeats its first knot as last knot.
	ErrCycleHasDuplicateTerminalKnot = errors.New("cycle must not repeat first knot as terminal knot")
)

// Hobby appends cubic Bézier segments through knots, placing the control
// points by Hobby's algorithm. Both ends of the interpolated piece are
// curly (curl 1).
// Part of builder functionality.
func (path *Path) Hobby(knots ...curves.Point) *Path {
	segs, err := hobbySegments(knots, false)
	if err != nil {
		path.fail(err)
		return path
	}
	for _, s := range segs {
		path.Append(s)
	}
	return path
}

// HobbyCycle appends a closed smooth curve through knots and closes the
// path. The first knot must not be repeated at the end.
// Part of builder functionality.
func (path *Path) HobbyCycle(knots ...curves.Point) *Path {
	segs, err := hobbySegments(knots, true)
	if err != nil {
		path.fail(err)
		return path
	}
	for _, s := range segs {
		path.Append(s)
	}
	return path.Cycle()
}

// skeleton holds the knots as complex numbers, together with the chords
// between them.
type skeleton struct {
	z     []complex128
	cycle bool
}

func (sk skeleton) n() int {
	return len(sk.z)
}

func (sk skeleton) at(i int) complex128 {
	n := sk.n()
	return sk.z[((i%n)+n)%n]
}

func (sk skeleton) delta(i int) complex128 {
	return sk.at(i+1) - sk.at(i)
}

func (sk skeleton) d(i int) float64 {
	return cmplx.Abs(sk.delta(i))
}

// Turning angle at z.i.
func (sk skeleton) psi(i int) float64 {
	if !sk.cycle && (i <= 0 || i >= sk.n()-1) {
		return 0
	}
	return reduceAngle(cmplx.Phase(sk.delta(i)) - cmplx.Phase(sk.delta(i-1)))
}

func newSkeleton(knots []curves.Point, cycle bool) (skeleton, error) {
	n := len(knots)
	if cycle && n < 3 {
		return skeleton{}, fmt.Errorf("%w: cycle needs at least 3 knots, got %d", ErrTooFewKnots, n)
	} else if n < 2 {
		return skeleton{}, fmt.Errorf("%w: open path needs at least 2 knots, got %d", ErrTooFewKnots, n)
	}
	if err := curves.ValidatePolygon(knots); err != nil {
		return skeleton{}, err
	}
	if knots[0].Dim() != 2 {
		return skeleton{}, fmt.Errorf("%w: interpolation needs 2-dimensional knots", curves.ErrDimensionMismatch)
	}
	sk := skeleton{z: make([]complex128, n), cycle: cycle}
	for i, k := range knots {
		sk.z[i] = complex(k.X(), k.Y())
	}
	if cycle && cmplx.Abs(sk.z[0]-sk.z[n-1]) <= curves.Epsilon {
		return skeleton{}, ErrCycleHasDuplicateTerminalKnot
	}
	chords := n - 1
	if cycle {
		chords = n
	}
	for i := 0; i < chords; i++ {
		if sk.d(i) <= curves.Epsilon {
			return skeleton{}, fmt.Errorf("%w between knots %d and %d", ErrDegenerateSegment, i, (i+1)%n)
		}
	}
	return sk, nil
}

func hobbySegments(knots []curves.Point, cycle bool) ([]*bezier.Curve, error) {
	sk, err := newSkeleton(knots, cycle)
	if err != nil {
		return nil, err
	}
	var theta []float64
	if cycle {
		theta = sk.solveCycle()
	} else {
		theta = sk.solveOpen()
	}
	segcnt := sk.n() - 1
	if cycle {
		segcnt = sk.n()
	}
	segs := make([]*bezier.Curve, segcnt)
	for i := 0; i < segcnt; i++ {
		phi := -sk.psi(i+1) - theta[i+1]
		p2, p3 := controlOffsets(theta[i], phi, sk.delta(i))
		z0, z1 := sk.at(i), sk.at(i+1)
		segs[i] = bezier.Must(pt(z0), pt(z0+p2), pt(z1-p3), pt(z1))
	}
	tracer().Debugf("Hobby interpolation of %d knots: %d segments", sk.n(), segcnt)
	return segs, nil
}

// Coefficients of the mock curvature equation at knot i, for tension 1:
//
//	A⋅θ.(i-1) + (B+C)⋅θ.i + D⋅θ.(i+1) = −B⋅ψ.i − D⋅ψ.(i+1)
func (sk skeleton) coefficients(i int) (A, B, C, D float64) {
	A = 1 / sk.d(i-1)
	B = 2 / sk.d(i-1)
	C = 2 / sk.d(i)
	D = 1 / sk.d(i)
	return
}

// solveOpen returns θ.0 … θ.(n-1) for an open path with curly ends.
// Elimination yields θ.i = v.i − u.i⋅θ.(i+1).
func (sk skeleton) solveOpen() []float64 {
	n := sk.n()
	last := n - 1
	u := make([]float64, n)
	v := make([]float64, n)
	theta := make([]float64, n+1)
	u[0] = 1 // curl 1
	v[0] = -u[0] * sk.psi(1)
	for i := 1; i < last; i++ {
		A, B, C, D := sk.coefficients(i)
		t := B - u[i-1]*A + C
		u[i] = D / t
		v[i] = (-B*sk.psi(i) - D*sk.psi(i+1) - A*v[i-1]) / t
	}
	if denom := 1 - u[last-1]; math.Abs(denom) > curves.Epsilon {
		theta[last] = -v[last-1] / denom
	}
	for i := last - 1; i >= 0; i-- {
		theta[i] = v[i] - u[i]*theta[i+1]
	}
	return theta
}

// solveCycle returns θ.0 … θ.n for a cyclic path, where θ.n = θ.0.
// Elimination yields θ.i = v.i − u.i⋅θ.(i+1) + w.i⋅θ.0.
func (sk skeleton) solveCycle() []float64 {
	n := sk.n()
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	w := make([]float64, n+1)
	theta := make([]float64, n+1)
	u[0], v[0], w[0] = 0, 0, 1
	for i := 1; i <= n; i++ {
		A, B, C, D := sk.coefficients(i)
		t := B - u[i-1]*A + C
		u[i] = D / t
		v[i] = (-B*sk.psi(i) - D*sk.psi(i+1) - A*v[i-1]) / t
		w[i] = -A * w[i-1] / t
	}
	// express θ.1 as a + b⋅θ.0, then close the cycle at knot n
	a, b := 0.0, 1.0
	for i := n - 1; i >= 1; i-- {
		a = v[i] - u[i]*a
		b = w[i] - u[i]*b
	}
	t0 := (v[n] - u[n]*a) / (1 - (w[n] - u[n]*b))
	theta[0], theta[n] = t0, t0
	for i := n - 1; i >= 1; i-- {
		theta[i] = v[i] + w[i]*t0 - u[i]*theta[i+1]
	}
	return theta
}

// controlOffsets returns the offsets of the two inner control points of a
// segment with chord dvec, relative to its start and end knot.
func controlOffsets(theta, phi float64, dvec complex128) (complex128, complex128) {
	rho := velocity(theta, phi)
	sigma := velocity(phi, theta)
	p2 := complex(rho/3, 0) * dvec * cmplx.Rect(1, theta)
	p3 := complex(sigma/3, 0) * dvec * cmplx.Rect(1, -phi)
	return p2, p3
}

// velocity is Hobby's f(θ,φ) for tension 1.
func velocity(theta, phi float64) float64 {
	const (
		a  = math.Sqrt2
		b  = 1.0 / 16
		c  = 0.38196601125 // (3 - sqrt(5)) / 2
		cc = 1 - c
	)
	st, ct := math.Sincos(theta)
	sf, cf := math.Sincos(phi)
	alpha := a * (st - b*sf) * (sf - b*st) * (ct - cf)
	return (2 + alpha) / (1 + cc*ct + c*cf)
}

// Reduce an angle to fit into -π … π.
func reduceAngle(a float64) float64 {
	if math.Abs(a) > math.Pi {
		if a > 0 {
			a -= 2 * math.Pi
		} else {
			a += 2 * math.Pi
		}
	}
	return a
}

func pt(z complex128) curves.Point {
	return curves.P(real(z), imag(z))
}
