package bspline

import (
	"errors"
	"testing"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampedUniformScenario(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	kv, err := ClampedUniform(5, 3)
	require.NoError(t, err)
	assert.Equal(t, KnotVector{0, 0, 0, 0, 0.5, 1, 1, 1, 1}, kv)
	assert.Equal(t, 9, kv.Len())
	assert.True(t, kv.IsClamped(3))
}

func TestClampedUniformRejectsTooFewPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := ClampedUniform(2, 3)
	assert.True(t, errors.Is(err, curves.ErrTooFewControlPoints))
	assert.True(t, errors.Is(err, curves.ErrConfiguration))
	_, err = ClampedUniform(2, -1)
	assert.True(t, errors.Is(err, curves.ErrInvalidOrder))
}

func TestClampedUniformInvariants(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for n := 1; n <= 10; n++ {
		for p := 0; p <= n; p++ {
			kv, err := ClampedUniform(n, p)
			require.NoError(t, err, "n=%d, p=%d", n, p)
			require.Equal(t, n+p+1, kv.Len(), "n=%d, p=%d", n, p)
			assert.True(t, kv.IsNonDecreasing(), "n=%d, p=%d", n, p)
			for i := 0; i <= p; i++ {
				assert.Equal(t, 0.0, kv[i], "n=%d, p=%d: leading knot %d", n, p, i)
			}
			if n > p {
				assert.True(t, kv.IsClamped(p), "n=%d, p=%d: %v", n, p, kv)
				// interior knots are uniformly spaced
				step := 1 / float64(n-p)
				for i := p; i < n; i++ {
					assert.InDelta(t, step, kv[i+1]-kv[i], 1e-12, "n=%d, p=%d, i=%d", n, p, i)
				}
			}
			for i := 0; i < p; i++ {
				assert.Equal(t, 1.0, kv[kv.Len()-1-i], "n=%d, p=%d: trailing knot %d", n, p, i)
			}
		}
	}
}

func TestSpan(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	kv, _ := ClampedUniform(5, 3)
	assert.Equal(t, 3, kv.Span(0))
	assert.Equal(t, 3, kv.Span(0.25))
	assert.Equal(t, 4, kv.Span(0.5))
	assert.Equal(t, 4, kv.Span(0.999))
	assert.Equal(t, -1, kv.Span(1))
	assert.Equal(t, -1, kv.Span(-0.1))
	assert.Equal(t, -1, kv.Span(1.5))
}

func TestMultiplicities(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	kv, _ := ClampedUniform(5, 3)
	assert.Equal(t, []KnotMultiplicity{{0, 4}, {0.5, 1}, {1, 4}}, kv.Multiplicities())
	assert.Nil(t, KnotVector(nil).Multiplicities())
}

func TestWeightZeroPolicy(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	kv, _ := ClampedUniform(5, 3)
	assert.Equal(t, 0.0, kv.Weight(0, 3, 0.3)) // t.0 = t.3 = 0
	assert.InDelta(t, 0.6, kv.Weight(3, 1, 0.3), 1e-12)
	assert.InDelta(t, 0.3, kv.Weight(2, 3, 0.3), 1e-12)
}

func TestCloneIsIndependent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	kv, _ := ClampedUniform(4, 2)
	c := kv.Clone()
	c[0] = 7
	assert.Equal(t, 0.0, kv[0])
	assert.False(t, KnotVector{0, 1, 0.5}.IsNonDecreasing())
	assert.False(t, KnotVector{0, 0.5, 1}.IsClamped(1))
}
