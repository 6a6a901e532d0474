package path

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/curves/bezier"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func controls(t *testing.T, path *Path, i int) []curves.Point {
	t.Helper()
	c, ok := path.Segment(i).(*bezier.Curve)
	require.True(t, ok, "segment %d is not a Bézier curve", i)
	require.Equal(t, 4, c.N())
	return c.ControlPoints()
}

func TestHobbyTwoKnotsIsStraight(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path, err := Nullpath().Hobby(curves.P(0, 0), curves.P(3, 0)).End().Build()
	require.NoError(t, err)
	require.Equal(t, 1, path.N())
	c := controls(t, path, 0)
	assert.True(t, curves.P(1, 0).Equal(c[1]), "%v", c[1])
	assert.True(t, curves.P(2, 0).Equal(c[2]), "%v", c[2])
}

func TestHobbyCollinearKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path, err := Nullpath().Hobby(curves.P(0, 0), curves.P(1, 0), curves.P(3, 0)).End().Build()
	require.NoError(t, err)
	require.Equal(t, 2, path.N())
	for i := 0; i < 2; i++ {
		for _, c := range controls(t, path, i) {
			assert.True(t, curves.Is0(c.Y()), "segment %d: %v", i, c)
		}
	}
	assert.True(t, curves.P(3, 0).Equal(path.EndPoint()))
}

func TestHobbyCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path, err := Nullpath().HobbyCycle(
		curves.P(1, 0), curves.P(0, 1), curves.P(-1, 0), curves.P(0, -1),
	).Build()
	require.NoError(t, err)
	assert.True(t, path.IsCycle())
	require.Equal(t, 4, path.N())
	c := controls(t, path, 0)
	const k = 0.5522847498
	assert.InDelta(t, 1.0, c[1].X(), 1e-6)
	assert.InDelta(t, k, c[1].Y(), 1e-3)
	assert.InDelta(t, k, c[2].X(), 1e-3)
	assert.InDelta(t, 1.0, c[2].Y(), 1e-6)
	// the curve stays close to the unit circle
	pts, err := path.Sample(20)
	require.NoError(t, err)
	for _, p := range pts {
		assert.InDelta(t, 1.0, math.Hypot(p.X(), p.Y()), 1e-3, "%v", p)
	}
}

func TestHobbySmoothJoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path, err := Nullpath().Hobby(
		curves.P(0, 0), curves.P(1, 1), curves.P(2, 0), curves.P(4, 2),
	).End().Build()
	require.NoError(t, err)
	for i := 1; i < path.N(); i++ {
		in := controls(t, path, i-1)
		out := controls(t, path, i)
		d1 := in[3].Sub(in[2])
		d2 := out[1].Sub(out[0])
		cross := d1.X()*d2.Y() - d1.Y()*d2.X()
		dot := d1.X()*d2.X() + d1.Y()*d2.Y()
		assert.InDelta(t, 0.0, cross, 1e-9, "joint %d is not smooth", i)
		assert.Greater(t, dot, 0.0)
	}
}

func TestHobbyErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	err := Nullpath().Hobby(curves.P(0, 0)).End().Validate()
	assert.True(t, errors.Is(err, ErrTooFewKnots))
	err = Nullpath().HobbyCycle(curves.P(0, 0), curves.P(1, 1)).Validate()
	assert.True(t, errors.Is(err, ErrTooFewKnots))
	err = Nullpath().Hobby(curves.P(0, 0), curves.P(0, 0), curves.P(1, 1)).End().Validate()
	assert.True(t, errors.Is(err, ErrDegenerateSegment))
	err = Nullpath().HobbyCycle(curves.P(0, 0), curves.P(1, 1), curves.P(2, 0), curves.P(0, 0)).Validate()
	assert.True(t, errors.Is(err, ErrCycleHasDuplicateTerminalKnot))
	err = Nullpath().Hobby(curves.Pt(0, 0, 0), curves.Pt(1, 1, 1)).End().Validate()
	assert.True(t, errors.Is(err, curves.ErrConfiguration))
	err = Nullpath().Hobby(curves.P(0, 0), curves.P(math.NaN(), 1)).End().Validate()
	assert.True(t, errors.Is(err, curves.ErrInvalidPoint))
}
