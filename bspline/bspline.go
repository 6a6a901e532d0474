/*
Package bspline evaluates uniform, clamped B-spline curves by Cox–de Boor
basis functions.

A B-spline curve of order p with control points P.0 … P.[n−1] is the
weighted sum

	S(x) = Σ P.i ⋅ B(i,p)(x)

where the basis functions B(i,p) are defined recursively over a knot vector
of length n+p+1 (see KnotVector.Basis). The order p is the polynomial degree
of the basis functions. Knot vectors are built by ClampedUniform: p+1 zeros,
uniformly spaced interior knots and p+1 ones (only p ones if n = p).

Evaluating the recursion literally costs O(2^p) per basis function. Curves
therefore evaluate their basis functions with one of three strategies:
Localized (the default), Memoized or Recursive. All of them produce the
same curve points.

# Domain

The degree-0 basis functions are defined on half-open knot spans
[t.i, t.[i+1]). Consequently every basis function vanishes at x = 1, and the
curve evaluates to the zero vector there. This package keeps that behavior:
Curve.At returns the zero vector for parameters outside [0,1), while
Curve.Evaluate rejects them with curves.ErrDomain. Sampling draws parameters
from [0,1), never reaching 1.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bspline

import (
	"fmt"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curves.bspline'
func tracer() tracing.Trace {
	return tracing.Select("curves.bspline")
}

// Curve is a B-spline curve. It is immutable once created and therefore safe
// for concurrent use.
type Curve struct {
	controls []curves.Point
	order    int
	knots    KnotVector
	strategy Strategy
}

var _ curves.Curve = (*Curve)(nil)

// Option configures a curve at creation time.
type Option func(*Curve) error

// WithStrategy selects the basis function evaluation strategy.
func WithStrategy(s Strategy) Option {
	return func(c *Curve) error {
		if s < Localized || s > Recursive {
			return fmt.Errorf("%w: unknown strategy %v", curves.ErrConfiguration, s)
		}
		c.strategy = s
		return nil
	}
}

// WithSettings selects the evaluation strategy named in settings.
func WithSettings(settings curves.Settings) Option {
	return func(c *Curve) error {
		s, err := ParseStrategy(settings.Strategy)
		if err != nil {
			return fmt.Errorf("%w: %v", curves.ErrConfiguration, err)
		}
		c.strategy = s
		return nil
	}
}

// New creates a B-spline curve of the given order from a sequence of
// control points. The points are copied, and the knot vector is built once.
//
// New checks its arguments eagerly and fails with an error wrapping
// curves.ErrConfiguration, if
//
//   - pts is empty or the points do not share a dimension,
//   - order < 1 (curves.ErrInvalidOrder),
//   - len(pts) < order (curves.ErrTooFewControlPoints).
func New(pts []curves.Point, order int, opts ...Option) (*Curve, error) {
	c, err := newCurve(pts, order, opts)
	if err != nil {
		tracer().Errorf("cannot create B-spline: %v", err)
		return nil, err
	}
	tracer().Debugf("new B-spline of order %d with %d control points, strategy %s",
		order, len(pts), c.strategy)
	return c, nil
}

func newCurve(pts []curves.Point, order int, opts []Option) (*Curve, error) {
	if err := curves.ValidatePolygon(pts); err != nil {
		return nil, err
	}
	if order < 1 {
		return nil, fmt.Errorf("%w: got %d", curves.ErrInvalidOrder, order)
	}
	knots, err := ClampedUniform(len(pts), order)
	if err != nil {
		return nil, err
	}
	c := &Curve{
		controls: curves.ClonePolygon(pts),
		order:    order,
		knots:    knots,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Must is a helper for static control point tables. It panics if New
// returns an error.
func Must(order int, pts ...curves.Point) *Curve {
	c, err := New(pts, order)
	if err != nil {
		panic(err)
	}
	return c
}

// N returns the number of control points.
func (c *Curve) N() int {
	return len(c.controls)
}

// Order returns the order of the curve, which is the degree of its basis
// functions.
func (c *Curve) Order() int {
	return c.order
}

// Dim returns the dimension of the control points.
func (c *Curve) Dim() int {
	return c.controls[0].Dim()
}

// Domain returns the half-open interval [0,1).
func (c *Curve) Domain() curves.Domain {
	return curves.HalfOpen01
}

// Strategy returns the basis function evaluation strategy of the curve.
func (c *Curve) Strategy() Strategy {
	return c.strategy
}

// Knots returns a copy of the knot vector.
func (c *Curve) Knots() KnotVector {
	return c.knots.Clone()
}

// ControlPoints returns a copy of the control points.
func (c *Curve) ControlPoints() []curves.Point {
	return curves.ClonePolygon(c.controls)
}

// WithStrategy returns a curve sharing c's data, evaluating with strategy s.
func (c *Curve) WithStrategy(s Strategy) *Curve {
	cc := *c
	cc.strategy = s
	return &cc
}

// BasisValues evaluates all n basis functions of the curve's order at x,
// using the curve's strategy. For x outside [0,1) all values are 0.
func (c *Curve) BasisValues(x float64) []float64 {
	n := len(c.controls)
	switch c.strategy {
	case Recursive:
		values := make([]float64, n)
		for i := range values {
			values[i] = c.knots.Basis(i, c.order, x)
		}
		return values
	case Memoized:
		return c.knots.BasisTable(c.order, x)
	}
	values := make([]float64, n)
	k, N := c.knots.NonZeroBasis(c.order, x)
	if k < 0 {
		return values
	}
	for r, v := range N {
		// for n = order the span reaches one index past the control points
		if i := k - c.order + r; i >= 0 && i < n {
			values[i] = v
		}
	}
	return values
}

// At returns the curve point at parameter x, i.e. the sum of the control
// points weighted by their basis functions. For x outside [0,1), in
// particular for x = 1, At returns the zero vector.
func (c *Curve) At(x float64) curves.Point {
	sum := curves.Zero(c.Dim())
	for i, b := range c.BasisValues(x) {
		if b == 0 {
			continue
		}
		p := c.controls[i]
		for d := range sum {
			sum[d] += b * p[d]
		}
	}
	return sum
}

// Evaluate returns the curve point at parameter x. Other than At it rejects
// parameters outside [0,1) with an error wrapping curves.ErrDomain.
func (c *Curve) Evaluate(x float64) (curves.Point, error) {
	if !c.Domain().Contains(x) {
		return nil, fmt.Errorf("%w: x = %g not in %v", curves.ErrDomain, x, c.Domain())
	}
	return c.At(x), nil
}

// Transform applies an affine transformation to the control points and
// returns the resulting curve. B-spline curves are affinely invariant within
// their domain, as the basis functions form a partition of unity.
func (c *Curve) Transform(m curves.AT) *Curve {
	cc := *c
	cc.controls = m.TransformAll(c.controls)
	return &cc
}
