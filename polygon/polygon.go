/*
Package polygon deals with closed polygons in the plane, mostly as
approximations of closed paths.

Polygons are built like paths:

	pg := NullPolygon().Knot(curves.P(0, 0)).Knot(curves.P(1, 3)).Knot(curves.P(3, 0)).Cycle()

Filled areas, possibly with holes, are modelled as shapes. Shapes may be
combined by boolean operations, which are delegated to
github.com/akavel/polyclip-go.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/curves"
	"github.com/npillmayer/curves/path"
	"github.com/npillmayer/schuko/tracing"
)

// L returns the tracer for polygons, key 'curves.polygon'.
func L() tracing.Trace {
	return tracing.Select("curves.polygon")
}

var (
	// ErrOpenPolygon indicates a polygon which has not been closed by Cycle().
	ErrOpenPolygon = errors.New("polygon is not closed")
	// ErrTooFewKnots indicates a polygon with less than 3 knots.
	ErrTooFewKnots = errors.New("polygon has too few knots")
	// ErrNotPlanar indicates a knot which is not 2-dimensional.
	ErrNotPlanar = errors.New("polygon knots must be 2-dimensional")
)

// Polygon is a sequence of knots in the plane, connected by straight lines.
type Polygon struct {
	knots []curves.Point
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(pt curves.Point) *Polygon {
	pg.knots = append(pg.knots, pt.Clone())
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// Box creates a rectangular polygon from two opposite corners.
func Box(c1, c2 curves.Point) *Polygon {
	x0, x1 := min(c1.X(), c2.X()), max(c1.X(), c2.X())
	y0, y1 := min(c1.Y(), c2.Y()), max(c1.Y(), c2.Y())
	return NullPolygon().
		Knot(curves.P(x0, y0)).Knot(curves.P(x1, y0)).
		Knot(curves.P(x1, y1)).Knot(curves.P(x0, y1)).Cycle()
}

// FromPath approximates a cyclic path by a polygon, with perSegment sample
// points per path segment.
func FromPath(p *path.Path, perSegment int) (*Polygon, error) {
	if p != nil && !p.IsCycle() {
		return nil, fmt.Errorf("%w: path is open", ErrOpenPolygon)
	}
	pts, err := p.Sample(perSegment)
	if err != nil {
		return nil, err
	}
	pg := &Polygon{knots: pts, cycle: true}
	if err := pg.Validate(); err != nil {
		return nil, err
	}
	L().Debugf("polygon of %d knots from path of %d segments", pg.N(), p.N())
	return pg, nil
}

// Validate checks that a polygon is closed, planar and has at least 3 knots.
func (pg *Polygon) Validate() error {
	if !pg.cycle {
		return ErrOpenPolygon
	}
	if pg.N() < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewKnots, pg.N())
	}
	for i, k := range pg.knots {
		if k.Dim() != 2 {
			return fmt.Errorf("%w: knot %d is %v", ErrNotPlanar, i, k)
		}
	}
	return nil
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Knots returns a copy of the knots.
func (pg *Polygon) Knots() []curves.Point {
	return curves.ClonePolygon(pg.knots)
}

// Contour converts a polygon to a polyclip contour.
func (pg *Polygon) Contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, pg.N())
	for _, k := range pg.knots {
		c.Add(polyclip.Point{X: k.X(), Y: k.Y()})
	}
	return c
}

// Area returns the signed area of a closed polygon, positive for
// counter-clockwise orientation.
func (pg *Polygon) Area() float64 {
	return shoelace(pg.Contour())
}

// Contains is a predicate: does pt lie inside the polygon?
func (pg *Polygon) Contains(pt curves.Point) bool {
	return pg.Contour().Contains(polyclip.Point{X: pt.X(), Y: pt.Y()})
}

// Transform applies an affine transformation to every knot.
func (pg *Polygon) Transform(m curves.AT) *Polygon {
	return &Polygon{knots: m.TransformAll(pg.knots), cycle: pg.cycle}
}

// AsString returns a polygon in MetaPost notation.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	if pg == nil {
		return "<nil>"
	}
	var b strings.Builder
	for i, k := range pg.knots {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(k.Zap().String())
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}

func shoelace(c polyclip.Contour) float64 {
	n := len(c)
	a := 0.0
	for i := range c {
		p, q := c[i], c[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
