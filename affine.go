package curves

import (
	"fmt"
	"math"
)

// === Affine Transformations ================================================

// AT is an affine transform of the plane, a 3x3 matrix in homogeneous
// coordinates, flattened by rows. Curves are affinely invariant: transforming
// the control points transforms every point of the curve.
type AT [9]float64

func (m *AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) get(row, col int) float64 {
	return m[row*3+col]
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	var m AT
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by v = (dx,dy).
func Translation(v Point) AT {
	m := Identity()
	m.set(0, 2, v.X())
	m.set(1, 2, v.Y())
	return m
}

// Scaling transform, scaling x by sx and y by sy.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	m := Identity()
	sin, cos := math.Sincos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	return m
}

// Shearing transform: x' = x + kx⋅y, y' = y + ky⋅x.
func Shearing(kx, ky float64) AT {
	m := Identity()
	m.set(0, 1, kx)
	m.set(1, 0, ky)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// Combine returns the transform which first applies m, then n.
func (m AT) Combine(n AT) AT {
	var o AT
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += n.get(row, k) * m.get(k, col)
			}
			o.set(row, col, sum)
		}
	}
	return o
}

// Transform a 2D point. The argument is unchanged and a new point is
// returned. Transform panics for points which are not 2-dimensional.
func (m AT) Transform(p Point) Point {
	if p.Dim() != 2 {
		panic(fmt.Sprintf("affine transform of %d-dimensional point", p.Dim()))
	}
	x, y := p[0], p[1]
	return P(
		m.get(0, 0)*x+m.get(0, 1)*y+m.get(0, 2),
		m.get(1, 0)*x+m.get(1, 1)*y+m.get(1, 2),
	)
}

// TransformAll applies m to every point of pts, returning new points.
func (m AT) TransformAll(pts []Point) []Point {
	r := make([]Point, len(pts))
	for i, p := range pts {
		r[i] = m.Transform(p)
	}
	return r
}
