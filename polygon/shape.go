package polygon

import (
	"math"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/curves"
)

// Shape is a filled area, bounded by one or more contours. Points enclosed by
// an odd number of contours are inside the shape (even-odd rule), so a
// contour inside another one cuts a hole, like the counter of the letter O.
// Contours are expected not to touch each other.
type Shape struct {
	pg polyclip.Polygon
}

// NewShape creates a shape from closed polygons.
func NewShape(pgs ...*Polygon) (*Shape, error) {
	s := &Shape{}
	for _, pg := range pgs {
		if err := pg.Validate(); err != nil {
			return nil, err
		}
		s.pg.Add(pg.Contour())
	}
	return s, nil
}

// N returns the number of contours.
func (s *Shape) N() int {
	return len(s.pg)
}

// Contours returns the contours of a shape as polygons.
func (s *Shape) Contours() []*Polygon {
	pgs := make([]*Polygon, len(s.pg))
	for i, c := range s.pg {
		pg := NullPolygon()
		for _, pt := range c {
			pg.Knot(curves.P(pt.X, pt.Y))
		}
		pgs[i] = pg.Cycle()
	}
	return pgs
}

// Union returns the area covered by s or t.
func (s *Shape) Union(t *Shape) *Shape {
	return s.construct(polyclip.UNION, t)
}

// Intersection returns the area covered by both s and t.
func (s *Shape) Intersection(t *Shape) *Shape {
	return s.construct(polyclip.INTERSECTION, t)
}

// Difference returns the area covered by s but not by t.
func (s *Shape) Difference(t *Shape) *Shape {
	return s.construct(polyclip.DIFFERENCE, t)
}

// Xor returns the area covered by exactly one of s and t.
func (s *Shape) Xor(t *Shape) *Shape {
	return s.construct(polyclip.XOR, t)
}

func (s *Shape) construct(op polyclip.Op, t *Shape) *Shape {
	r := &Shape{pg: s.pg.Construct(op, t.pg)}
	L().Debugf("boolean op %d: %d + %d contours -> %d contours", op, s.N(), t.N(), r.N())
	return r
}

// Contains is a predicate: does pt lie inside the shape?
func (s *Shape) Contains(pt curves.Point) bool {
	p := polyclip.Point{X: pt.X(), Y: pt.Y()}
	inside := false
	for _, c := range s.pg {
		if c.Contains(p) {
			inside = !inside
		}
	}
	return inside
}

// BoundingBox returns the lower left and upper right corners of the smallest
// axis-parallel rectangle enclosing the shape.
func (s *Shape) BoundingBox() (curves.Point, curves.Point) {
	if len(s.pg) == 0 {
		return curves.P(0, 0), curves.P(0, 0)
	}
	r := s.pg.BoundingBox()
	return curves.P(r.Min.X, r.Min.Y), curves.P(r.Max.X, r.Max.Y)
}

// Area returns the area of the shape. Contours nested within an odd number
// of other contours count as holes.
func (s *Shape) Area() float64 {
	a := 0.0
	for i, c := range s.pg {
		depth := 0
		for j, other := range s.pg {
			if i != j && len(c) > 0 && other.Contains(c[0]) {
				depth++
			}
		}
		if depth%2 == 0 {
			a += math.Abs(shoelace(c))
		} else {
			a -= math.Abs(shoelace(c))
		}
	}
	return a
}
