package curves

import (
	"errors"
	"runtime"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := SettingsFrom(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	s, err = SettingsFrom(testconfig.Conf{})
	require.NoError(t, err)
	assert.Equal(t, DefaultSamples, s.Samples)
	assert.Equal(t, "localized", s.Strategy)
}

func TestSettingsFrom(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	conf := testconfig.Conf{
		KeySamples:    "120",
		KeyWorkers:    "0",
		KeyStrategy:   "memoized",
		KeyTraceLevel: "Debug",
	}
	s, err := SettingsFrom(conf)
	require.NoError(t, err)
	assert.Equal(t, 120, s.Samples)
	assert.Equal(t, runtime.NumCPU(), s.Workers)
	assert.Equal(t, "memoized", s.Strategy)
	assert.Equal(t, tracing.LevelDebug.String(), s.TraceLevel)
}

// keyedSelector hands out one test tracer per key.
type keyedSelector struct {
	t       *testing.T
	tracers map[string]tracing.Trace
}

func (sel *keyedSelector) Select(key string) tracing.Trace {
	tr, ok := sel.tracers[key]
	if !ok {
		tr = gotestingadapter.New(sel.t)
		sel.tracers[key] = tr
	}
	return tr
}

func TestTraceLevelAppliesToAllTracers(t *testing.T) {
	sel := &keyedSelector{t: t, tracers: map[string]tracing.Trace{}}
	tracing.SetTraceSelector(sel)
	defer tracing.SetTraceSelector(nil)
	_, err := SettingsFrom(testconfig.Conf{KeyTraceLevel: "Debug"})
	require.NoError(t, err)
	for _, key := range TracerKeys {
		assert.Equal(t, tracing.LevelDebug, tracing.Select(key).GetTraceLevel(), "tracer %q", key)
	}
	assert.Equal(t, tracing.LevelError, tracing.Select("other").GetTraceLevel())
	_, err = SettingsFrom(testconfig.Conf{KeyTraceLevel: "Error"})
	require.NoError(t, err)
	assert.Equal(t, tracing.LevelError, tracing.Select("curves.polygon").GetTraceLevel())
}

func TestSettingsFromRejectsInvalidValues(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := SettingsFrom(testconfig.Conf{KeySamples: "0"})
	assert.True(t, errors.Is(err, ErrSampleCount))
	_, err = SettingsFrom(testconfig.Conf{KeySamples: "many"})
	assert.True(t, errors.Is(err, ErrConfiguration))
	_, err = SettingsFrom(testconfig.Conf{KeyWorkers: "some"})
	assert.True(t, errors.Is(err, ErrConfiguration))
}
