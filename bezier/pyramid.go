package bezier

import (
	"fmt"
	"strings"

	"github.com/npillmayer/curves"
)

// Pyramid is the triangular scheme of intermediate points computed by de
// Casteljau's algorithm for one parameter value. Level 0 holds the n control
// points, level k holds n−k points, and the final level holds exactly one
// point: the curve point.
type Pyramid struct {
	t      float64
	levels [][]curves.Point
}

// T is the parameter the pyramid has been evaluated for.
func (pyr Pyramid) T() float64 {
	return pyr.t
}

// Depth is the number of levels.
func (pyr Pyramid) Depth() int {
	return len(pyr.levels)
}

// Level returns a copy of level k.
func (pyr Pyramid) Level(k int) []curves.Point {
	return curves.ClonePolygon(pyr.levels[k])
}

// Levels returns a copy of all levels, level 0 first.
func (pyr Pyramid) Levels() [][]curves.Point {
	lv := make([][]curves.Point, len(pyr.levels))
	for k := range pyr.levels {
		lv[k] = pyr.Level(k)
	}
	return lv
}

// Point is the curve point, i.e. the single point of the last level.
func (pyr Pyramid) Point() curves.Point {
	return pyr.levels[len(pyr.levels)-1][0].Clone()
}

// LeftEdge returns the first point of every level. These are the control
// points of the sub-curve covering [0,t].
func (pyr Pyramid) LeftEdge() []curves.Point {
	edge := make([]curves.Point, len(pyr.levels))
	for k, level := range pyr.levels {
		edge[k] = level[0].Clone()
	}
	return edge
}

// RightEdge returns the last point of every level, in reverse order of
// levels. These are the control points of the sub-curve covering [t,1].
func (pyr Pyramid) RightEdge() []curves.Point {
	n := len(pyr.levels)
	edge := make([]curves.Point, n)
	for k, level := range pyr.levels {
		edge[n-1-k] = level[len(level)-1].Clone()
	}
	return edge
}

// String lists the levels of the pyramid, one per line.
func (pyr Pyramid) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "t = %g", pyr.t)
	for k, level := range pyr.levels {
		fmt.Fprintf(&b, "\n  %d:", k)
		for _, p := range level {
			b.WriteString(" ")
			b.WriteString(p.String())
		}
	}
	return b.String()
}
