package sample

import (
	"context"
	"errors"
	"testing"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/curves/bezier"
	"github.com/npillmayer/curves/bspline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testpoints() []curves.Point {
	return []curves.Point{
		curves.P(0.0, 0.0),
		curves.P(0.1, 0.6),
		curves.P(0.5, 0.9),
		curves.P(0.8, 0.2),
		curves.P(1.0, 0.7),
	}
}

func TestSampleBezier(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := bezier.Must(testpoints()...)
	pts, err := Sample(c, 50)
	require.NoError(t, err)
	require.Len(t, pts, 50)
	assert.Equal(t, curves.P(0, 0), pts[0])
	assert.Equal(t, curves.P(1.0, 0.7), pts[49])
	assert.True(t, c.At(1.0/49.0).Equal(pts[1]))
}

func TestSampleBSplineExcludesRightEnd(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := bspline.Must(3, testpoints()...)
	pts, err := Sample(c, 50)
	require.NoError(t, err)
	require.Len(t, pts, 50)
	assert.True(t, pts[0].Equal(curves.P(0, 0)))
	for i, p := range pts {
		if i > 0 {
			assert.False(t, p.IsZero(), "sample %d degenerated to zero vector", i)
		}
	}
	assert.True(t, c.At(49.0/50.0).Equal(pts[49]))
}

func TestSampleRejectsCount(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := bezier.Must(testpoints()...)
	_, err := Sample(c, 0)
	assert.True(t, errors.Is(err, curves.ErrSampleCount))
	_, err = Concurrent(context.Background(), c, -3, 2)
	assert.True(t, errors.Is(err, curves.ErrConfiguration))
}

func TestSingleSample(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := bezier.Must(testpoints()...)
	pts, err := Sample(c, 1)
	require.NoError(t, err)
	assert.Equal(t, []curves.Point{curves.P(0, 0)}, pts)
}

func TestConcurrentEqualsSequential(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cs := []curves.Curve{
		bezier.Must(testpoints()...),
		bspline.Must(3, testpoints()...),
		bspline.Must(2, testpoints()...).WithStrategy(bspline.Recursive),
	}
	for _, c := range cs {
		want, err := Sample(c, 97)
		require.NoError(t, err)
		for _, workers := range []int{0, 1, 2, 3, 8, 200} {
			got, err := Concurrent(context.Background(), c, 97, workers)
			require.NoError(t, err)
			assert.Equal(t, want, got, "workers=%d", workers)
		}
	}
}

func TestConcurrentCancelled(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Concurrent(ctx, bezier.Must(testpoints()...), 100, 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSeqIsRestartable(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := bspline.Must(3, testpoints()...)
	want, _ := Sample(c, 20)
	seq := Seq(c, 20)
	for round := 0; round < 2; round++ {
		var got []curves.Point
		for i, p := range seq {
			assert.Equal(t, len(got), i)
			got = append(got, p)
		}
		assert.Equal(t, want, got, "round %d", round)
	}
	count := 0
	for range seq {
		count++
		if count == 5 {
			break
		}
	}
	assert.Equal(t, 5, count)
}

func TestSampler(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := New(curves.Settings{Samples: 0})
	assert.Error(t, err)
	s, err := New(curves.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, curves.DefaultSamples, s.N())
	bez := bezier.Must(testpoints()...)
	bsp := bspline.Must(3, testpoints()...)
	all, err := s.SampleAll(context.Background(), bez, bsp)
	require.NoError(t, err)
	require.Len(t, all, 2)
	want, _ := Sample(bsp, curves.DefaultSamples)
	assert.Equal(t, want, all[1])
	single, err := New(curves.Settings{Samples: 10, Workers: 1})
	require.NoError(t, err)
	pts, err := single.Sample(context.Background(), bez)
	require.NoError(t, err)
	assert.Len(t, pts, 10)
}
