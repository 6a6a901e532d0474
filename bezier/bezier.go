/*
Package bezier evaluates Bézier curves of arbitrary degree by de Casteljau's
algorithm.

De Casteljau's algorithm evaluates a curve point by repeated pairwise linear
interpolation of the control points. The intermediate points form a
triangular scheme, the evaluation pyramid:

	level 0:   P0     P1     P2     P3
	level 1:      P01    P12    P23
	level 2:         P012   P123
	level 3:            P0123

The last level holds the curve point. Clients interested in more than the
curve point, e.g. animations of the construction, may inspect all levels.
The pyramid also yields a subdivision of the curve at the evaluation
parameter for free: the left edge and the right edge of the pyramid are the
control polygons of the two halves.

A Bézier curve is defined on the closed parameter interval [0,1]; it passes
through its first control point at t = 0 and through its last control
point at t = 1. Parameters outside [0,1] extrapolate the curve.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezier

import (
	"github.com/npillmayer/curves"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curves.bezier'
func tracer() tracing.Trace {
	return tracing.Select("curves.bezier")
}

// Curve is a Bézier curve of degree n−1, defined by n control points.
// A Curve is immutable once created and therefore safe for concurrent use.
type Curve struct {
	controls []curves.Point
}

var _ curves.Curve = (*Curve)(nil)

// New creates a Bézier curve from a sequence of control points. The points
// are copied. New fails with an error wrapping curves.ErrConfiguration if
// pts is empty or if the points do not share a dimension.
func New(pts []curves.Point) (*Curve, error) {
	if err := curves.ValidatePolygon(pts); err != nil {
		tracer().Errorf("cannot create Bézier curve: %v", err)
		return nil, err
	}
	c := &Curve{controls: curves.ClonePolygon(pts)}
	tracer().Debugf("new Bézier curve of degree %d", c.Degree())
	return c, nil
}

// Must is a helper for static control point tables. It panics if New
// returns an error.
func Must(pts ...curves.Point) *Curve {
	c, err := New(pts)
	if err != nil {
		panic(err)
	}
	return c
}

// N returns the number of control points.
func (c *Curve) N() int {
	return len(c.controls)
}

// Degree returns the polynomial degree of the curve, N()−1.
func (c *Curve) Degree() int {
	return len(c.controls) - 1
}

// Dim returns the dimension of the control points.
func (c *Curve) Dim() int {
	return c.controls[0].Dim()
}

// Domain returns the closed interval [0,1].
func (c *Curve) Domain() curves.Domain {
	return curves.Closed01
}

// ControlPoint returns control point i.
func (c *Curve) ControlPoint(i int) curves.Point {
	return c.controls[i].Clone()
}

// ControlPoints returns a copy of the control points.
func (c *Curve) ControlPoints() []curves.Point {
	return curves.ClonePolygon(c.controls)
}

// Start is the first control point, the curve point at t = 0.
func (c *Curve) Start() curves.Point {
	return c.ControlPoint(0)
}

// End is the last control point, the curve point at t = 1.
func (c *Curve) End() curves.Point {
	return c.ControlPoint(c.N() - 1)
}

// Casteljau runs de Casteljau's algorithm at parameter t and returns the
// complete evaluation pyramid. Level 0 holds the control points, every
// subsequent level is produced by interpolating adjacent pairs of the level
// before, until a level holds a single point. For a single control point
// the pyramid consists of level 0 only.
//
// Time complexity is O(n²) for n control points.
func (c *Curve) Casteljau(t float64) Pyramid {
	n := len(c.controls)
	levels := make([][]curves.Point, 1, n)
	levels[0] = curves.ClonePolygon(c.controls)
	last := levels[0]
	for len(last) > 1 {
		next := make([]curves.Point, len(last)-1)
		for i := range next {
			next[i] = curves.Lerp(t, last[i], last[i+1])
		}
		levels = append(levels, next)
		last = next
	}
	return Pyramid{t: t, levels: levels}
}

// Evaluate is a synonym for Casteljau.
func (c *Curve) Evaluate(t float64) Pyramid {
	return c.Casteljau(t)
}

// At returns the curve point at parameter t.
func (c *Curve) At(t float64) curves.Point {
	// only the shrinking current level is kept, not the whole pyramid
	level := c.controls
	for len(level) > 1 {
		next := make([]curves.Point, len(level)-1)
		for i := range next {
			next[i] = curves.Lerp(t, level[i], level[i+1])
		}
		level = next
	}
	return level[0].Clone()
}

// Split subdivides the curve at parameter t into two curves of the same
// degree. The first one covers [0,t] of c, the second one [t,1].
func (c *Curve) Split(t float64) (*Curve, *Curve) {
	pyr := c.Casteljau(t)
	return &Curve{controls: pyr.LeftEdge()}, &Curve{controls: pyr.RightEdge()}
}

// Frames evaluates the pyramid at n parameter values, spaced equidistantly
// over [0,1] with both ends included. This is the data an animation of de
// Casteljau's construction steps through, one frame per parameter.
func (c *Curve) Frames(n int) ([]Pyramid, error) {
	if n < 1 {
		return nil, curves.ErrSampleCount
	}
	frames := make([]Pyramid, n)
	for i, t := range c.Domain().Params(n) {
		frames[i] = c.Casteljau(t)
	}
	return frames, nil
}

// Transform applies an affine transformation to the control points and
// returns the resulting curve. As Bézier curves are affinely invariant, the
// result is the transformed curve.
func (c *Curve) Transform(m curves.AT) *Curve {
	return &Curve{controls: m.TransformAll(c.controls)}
}

// Reversed returns the curve traversed from end to start.
func (c *Curve) Reversed() *Curve {
	n := len(c.controls)
	r := make([]curves.Point, n)
	for i, p := range c.controls {
		r[n-1-i] = p.Clone()
	}
	return &Curve{controls: r}
}
