/*
Package curves implements points, affine transformations and the common
ground for evaluating parametric curves. Concrete curve types live in
sub-packages: bezier (de Casteljau's algorithm) and bspline (Cox–de Boor
basis functions). Package sample drives any curve across its parameter
domain.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curves

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curves'
func tracer() tracing.Trace {
	return tracing.Select("curves")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}


// === Point Data Type =======================================================

// Point is a vector of fixed dimension. All points taking part in one curve
// share the same dimension. Points are treated as values: operations never
// modify their receiver or arguments, but return fresh points.
type Point []float64

// P is a quick notation for constructing a 2D point from floats.
func P(x, y float64) Point {
	return Point{x, y}
}

// Pt constructs a point of arbitrary dimension.
func Pt(coords ...float64) Point {
	p := make(Point, len(coords))
	copy(p, coords)
	return p
}

// Zero returns the zero vector of dimension dim.
func Zero(dim int) Point {
	return make(Point, dim)
}

// Dim is the dimension of a point.
func (p Point) Dim() int {
	return len(p)
}

// X is the first coordinate of a point.
func (p Point) X() float64 {
	return p[0]
}

// Y is the second coordinate of a point.
func (p Point) Y() float64 {
	return p[1]
}

// Clone returns a copy of p which does not share storage with p.
func (p Point) Clone() Point {
	if p == nil {
		return nil
	}
	return Pt(p...)
}

// Pretty Stringer for points.
func (p Point) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%g", c)
	}
	b.WriteByte(')')
	return b.String()
}

func mustMatch(p, q Point) {
	if len(p) != len(q) {
		panic(fmt.Sprintf("dimension mismatch: %d ≠ %d", len(p), len(q)))
	}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	mustMatch(p, q)
	r := make(Point, len(p))
	for i := range p {
		r[i] = p[i] + q[i]
	}
	return r
}

// Sub returns p − q.
func (p Point) Sub(q Point) Point {
	mustMatch(p, q)
	r := make(Point, len(p))
	for i := range p {
		r[i] = p[i] - q[i]
	}
	return r
}

// Scaled returns a new point scaled by factor a.
func (p Point) Scaled(a float64) Point {
	r := make(Point, len(p))
	for i := range p {
		r[i] = p[i] * a
	}
	return r
}

// Zap sets coordinates which are zero within ε to 0.
func (p Point) Zap() Point {
	r := make(Point, len(p))
	for i := range p {
		r[i] = Zap(p[i])
	}
	return r
}

// IsZero is a predicate: is p the zero vector (within ε)?
func (p Point) IsZero() bool {
	for _, c := range p {
		if !Is0(c) {
			return false
		}
	}
	return true
}

// IsFinite is false if any coordinate is NaN or ±Inf.
func (p Point) IsFinite() bool {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Equal compares two points, coordinate-wise within ε.
// Points of different dimension are never equal.
func (p Point) Equal(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !Is0(p[i] - q[i]) {
			return false
		}
	}
	return true
}

// Lerp interpolates linearly between x0 and x1, i.e. it returns
//
//	x0 + t⋅(x1 − x0)
//
// t is not restricted to [0,1]; values outside extrapolate along the line
// through x0 and x1. The computation is arranged as (1−t)⋅x0 + t⋅x1, which
// reproduces x0 for t = 0 and x1 for t = 1 without rounding.
func Lerp(t float64, x0, x1 Point) Point {
	mustMatch(x0, x1)
	r := make(Point, len(x0))
	s := 1 - t
	for i := range x0 {
		r[i] = s*x0[i] + t*x1[i]
	}
	return r
}

// === Control Polygons ======================================================

// ClonePolygon returns a deep copy of a sequence of points.
func ClonePolygon(pts []Point) []Point {
	c := make([]Point, len(pts))
	for i, p := range pts {
		c[i] = p.Clone()
	}
	return c
}

// ValidatePolygon checks a sequence of control points: it must be
// non-empty, all points must share a dimension ≥ 1 and carry finite
// coordinates. Errors wrap ErrConfiguration.
func ValidatePolygon(pts []Point) error {
	if len(pts) == 0 {
		return ErrEmptyPolygon
	}
	dim := pts[0].Dim()
	if dim == 0 {
		return fmt.Errorf("%w: control point 0 has no coordinates", ErrDimensionMismatch)
	}
	for i, p := range pts {
		if p.Dim() != dim {
			return fmt.Errorf("%w: control point %d has dimension %d, expected %d",
				ErrDimensionMismatch, i, p.Dim(), dim)
		}
		if !p.IsFinite() {
			return fmt.Errorf("%w at control point %d", ErrInvalidPoint, i)
		}
	}
	tracer().Debugf("validated control polygon of %d points, dim=%d", len(pts), dim)
	return nil
}
