package curves

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
)

// Configuration keys recognized by SettingsFrom.
const (
	KeySamples    = "curves.samples"          // number of points per sampled curve
	KeyWorkers    = "curves.workers"          // goroutines for concurrent sampling
	KeyStrategy   = "curves.bspline.strategy" // B-spline basis evaluation strategy
	KeyTraceLevel = "tracing.curves"          // trace level for the curves tracers
)

// TracerKeys are the selector keys of the tracers of this module and its
// sub-packages.
var TracerKeys = []string{
	"curves",
	"curves.bezier",
	"curves.bspline",
	"curves.sample",
	"curves.path",
	"curves.polygon",
}

// DefaultSamples is the number of points a curve is sampled with if not
// configured otherwise.
const DefaultSamples = 50

// Settings collects the tunables of curve evaluation.
type Settings struct {
	Samples    int    // points per sampled curve
	Workers    int    // goroutines for concurrent sampling, ≤ 0 means NumCPU
	Strategy   string // B-spline evaluation strategy: recursive, memoized or localized
	TraceLevel string // Debug, Info or Error
}

// DefaultSettings returns settings suitable for most uses.
func DefaultSettings() Settings {
	return Settings{
		Samples:    DefaultSamples,
		Workers:    runtime.NumCPU(),
		Strategy:   "localized",
		TraceLevel: tracing.LevelError.String(),
	}
}

// SettingsFrom reads settings from an application configuration. Keys not
// set in conf keep their default value. If a trace level is configured, it
// is applied to all tracers listed in TracerKeys.
func SettingsFrom(conf schuko.Configuration) (Settings, error) {
	s := DefaultSettings()
	if conf == nil {
		return s, nil
	}
	if conf.IsSet(KeySamples) {
		n, err := strconv.Atoi(conf.GetString(KeySamples))
		if err != nil || n < 1 {
			return s, fmt.Errorf("%w: %s = %q", ErrSampleCount, KeySamples, conf.GetString(KeySamples))
		}
		s.Samples = n
	}
	if conf.IsSet(KeyWorkers) {
		n, err := strconv.Atoi(conf.GetString(KeyWorkers))
		if err != nil {
			return s, fmt.Errorf("%w: %s = %q is not a number", ErrConfiguration, KeyWorkers,
				conf.GetString(KeyWorkers))
		}
		if n <= 0 {
			n = runtime.NumCPU()
		}
		s.Workers = n
	}
	if conf.IsSet(KeyStrategy) {
		s.Strategy = conf.GetString(KeyStrategy)
	}
	if conf.IsSet(KeyTraceLevel) {
		s.TraceLevel = tracing.TraceLevelFromString(conf.GetString(KeyTraceLevel)).String()
		level := tracing.TraceLevelFromString(s.TraceLevel)
		for _, key := range TracerKeys {
			tracing.Select(key).SetTraceLevel(level)
		}
	}
	tracer().Infof("settings: samples=%d, workers=%d, strategy=%s", s.Samples, s.Workers, s.Strategy)
	return s, nil
}
