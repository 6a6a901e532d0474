package path

import (
	"context"
	"fmt"
	"strings"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/curves/bezier"
	"github.com/npillmayer/curves/bspline"
	"github.com/npillmayer/curves/sample"
)

// Sample approximates a path by a polyline. Every segment is sampled with
// perSegment points; B-spline segments additionally get their end point
// appended, which is not part of their half-open domain. Joints shared by
// consecutive segments appear only once, as does the start point of a cycle.
func (path *Path) Sample(perSegment int) ([]curves.Point, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	chunks := make([][]curves.Point, path.N())
	for i, s := range path.segments {
		pts, err := sample.Sample(s.curve, perSegment)
		if err != nil {
			return nil, err
		}
		chunks[i] = pts
	}
	return path.join(chunks), nil
}

// SampleWith is like Sample, but uses a configured sampler, which may
// distribute evaluation over several goroutines.
func (path *Path) SampleWith(ctx context.Context, s *sample.Sampler) ([]curves.Point, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	segs := make([]curves.Curve, path.N())
	for i := range path.segments {
		segs[i] = path.segments[i].curve
	}
	chunks, err := s.SampleAll(ctx, segs...)
	if err != nil {
		return nil, err
	}
	return path.join(chunks), nil
}

func (path *Path) join(chunks [][]curves.Point) []curves.Point {
	var poly []curves.Point
	push := func(pt curves.Point) {
		if len(poly) > 0 && poly[len(poly)-1].Equal(pt) {
			return
		}
		poly = append(poly, pt)
	}
	for i, chunk := range chunks {
		for _, pt := range chunk {
			push(pt)
		}
		if path.segments[i].curve.Domain().OpenHi {
			push(path.segments[i].last)
		}
	}
	if path.cycle && len(poly) > 1 && poly[0].Equal(poly[len(poly)-1]) {
		poly = poly[:len(poly)-1]
	}
	tracer().Debugf("path of %d segments sampled to %d points", len(chunks), len(poly))
	return poly
}

// AsString returns a path in human-readable form: segments are listed with
// their control points, B-splines with their order.
//
//	bezier(0,0)(1,2)(2,0) & bspline[2](2,0)(3,-1)(4,0)(5,0) & cycle
func AsString(path *Path) string {
	if path == nil {
		return "<nil>"
	}
	var b strings.Builder
	for i, s := range path.segments {
		if i > 0 {
			b.WriteString(" & ")
		}
		var ctrls []curves.Point
		switch cv := s.curve.(type) {
		case *bezier.Curve:
			b.WriteString("bezier")
			ctrls = cv.ControlPoints()
		case *bspline.Curve:
			fmt.Fprintf(&b, "bspline[%d]", cv.Order())
			ctrls = cv.ControlPoints()
		}
		for _, pt := range ctrls {
			b.WriteString(pt.String())
		}
	}
	if path.cycle {
		b.WriteString(" & cycle")
	}
	return b.String()
}
