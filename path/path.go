/*
Package path chains curve segments to outlines, e.g. the strokes of a glyph.

A path is a sequence of Bézier and B-spline segments, where each segment
starts where its predecessor ends. Paths are put together with a builder:

	p := Nullpath().
		Bezier(curves.P(0, 0), curves.P(1, 2), curves.P(2, 0)).
		BSpline(2, curves.P(2, 0), curves.P(3, -1), curves.P(4, 0), curves.P(5, 0)).
		End()

Builder calls never fail. Errors in segment construction are collected and
reported by Validate, which should be called before a path is used.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package path

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/curves/bezier"
	"github.com/npillmayer/curves/bspline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curves.path'
func tracer() tracing.Trace {
	return tracing.Select("curves.path")
}

var (
	// ErrNilPath indicates a nil path pointer.
	ErrNilPath = errors.New("path must not be nil")
	// ErrEmptyPath indicates a path without segments.
	ErrEmptyPath = errors.New("path has no segments")
	// ErrDisconnected indicates a gap between consecutive segments.
	ErrDisconnected = errors.New("path segments are not connected")
)

// segment is a curve together with its end points. For B-splines the end
// point is the limit at the right end of the half-open domain. Clamped
// B-splines with more control points than their order reach their last
// control point there; with as many control points as the order the
// limit has to be evaluated.
type segment struct {
	curve curves.Curve
	first curves.Point
	last  curves.Point
}

// Path is a sequence of connected curve segments.
// To construct a path, start with Nullpath(), which creates an empty
// path, and then extend it.
type Path struct {
	segments []segment
	cycle    bool
	errs     []error
}

// Nullpath creates an empty path, to be extended by subsequent builder
// calls.
func Nullpath() *Path {
	return &Path{}
}

// End an open path. Part of builder functionality.
func (path *Path) End() *Path {
	return path
}

// Cycle closes a cyclic path. Part of builder functionality.
// The last segment has to end at the start of the first one.
func (path *Path) Cycle() *Path {
	path.cycle = true
	return path
}

// Bezier appends a Bézier segment with control points pts.
// Part of builder functionality.
func (path *Path) Bezier(pts ...curves.Point) *Path {
	c, err := bezier.New(pts)
	if err != nil {
		path.fail(err)
		return path
	}
	return path.Append(c)
}

// BSpline appends a clamped B-spline segment of the given order.
// Part of builder functionality.
func (path *Path) BSpline(order int, pts ...curves.Point) *Path {
	c, err := bspline.New(pts, order)
	if err != nil {
		path.fail(err)
		return path
	}
	return path.Append(c)
}

// Line appends a straight line from the current end of the path to pt.
// Part of builder functionality.
func (path *Path) Line(pt curves.Point) *Path {
	if path.N() == 0 {
		path.fail(fmt.Errorf("%w: line needs a start point", ErrEmptyPath))
		return path
	}
	return path.Bezier(path.segments[path.N()-1].last, pt)
}

// Append adds a segment which has been constructed elsewhere.
// Bézier curves and B-splines are supported.
// Part of builder functionality.
func (path *Path) Append(c curves.Curve) *Path {
	var s segment
	switch cv := c.(type) {
	case *bezier.Curve:
		s = segment{curve: cv, first: cv.Start(), last: cv.End()}
	case *bspline.Curve:
		ctrls := cv.ControlPoints()
		last := ctrls[len(ctrls)-1]
		if cv.N() == cv.Order() {
			last = cv.At(math.Nextafter(1, 0)).Zap()
		}
		s = segment{curve: cv, first: ctrls[0], last: last}
	default:
		path.fail(fmt.Errorf("%w: unsupported segment type %T", curves.ErrConfiguration, c))
		return path
	}
	path.segments = append(path.segments, s)
	return path
}

func (path *Path) fail(err error) {
	err = fmt.Errorf("segment %d: %w", len(path.segments)+len(path.errs), err)
	tracer().Errorf("path builder: %v", err)
	path.errs = append(path.errs, err)
}

// Validate checks a path for construction errors, gaps between segments and
// a proper closing of cycles. All errors found are joined.
func (path *Path) Validate() error {
	if path == nil {
		return ErrNilPath
	}
	errs := append([]error(nil), path.errs...)
	if path.N() == 0 && len(errs) == 0 {
		return ErrEmptyPath
	}
	for i := 1; i < path.N(); i++ {
		if !path.segments[i-1].last.Equal(path.segments[i].first) {
			errs = append(errs, fmt.Errorf("%w: between segments %d and %d", ErrDisconnected, i-1, i))
		}
	}
	if path.cycle && path.N() > 0 {
		if !path.segments[path.N()-1].last.Equal(path.segments[0].first) {
			errs = append(errs, fmt.Errorf("%w: cycle does not close", ErrDisconnected))
		}
	}
	return errors.Join(errs...)
}

// Build is Validate plus a convenient return value.
func (path *Path) Build() (*Path, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	return path, nil
}

// IsCycle is a predicate: is this path cyclic?
func (path *Path) IsCycle() bool {
	return path.cycle
}

// N returns the number of segments.
func (path *Path) N() int {
	if path == nil {
		return 0
	}
	return len(path.segments)
}

// Segment returns segment number (i mod N), or nil for an empty path.
func (path *Path) Segment(i int) curves.Curve {
	if path.N() == 0 {
		return nil
	}
	if i < 0 || i >= path.N() {
		i = ((i % path.N()) + path.N()) % path.N()
	}
	return path.segments[i].curve
}

// Start returns the start point of the path, or nil for an empty path.
func (path *Path) Start() curves.Point {
	if path.N() == 0 {
		return nil
	}
	return path.segments[0].first
}

// EndPoint returns the end point of the path, or nil for an empty path.
func (path *Path) EndPoint() curves.Point {
	if path.N() == 0 {
		return nil
	}
	return path.segments[path.N()-1].last
}

// Transform returns a copy of path with every segment mapped by m.
func (path *Path) Transform(m curves.AT) *Path {
	t := &Path{cycle: path.cycle, errs: append([]error(nil), path.errs...)}
	for _, s := range path.segments {
		switch cv := s.curve.(type) {
		case *bezier.Curve:
			t.Append(cv.Transform(m))
		case *bspline.Curve:
			t.Append(cv.Transform(m))
		}
	}
	return t
}
