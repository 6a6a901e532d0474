package sample

import (
	"context"

	"github.com/npillmayer/curves"
)

// Sampler samples curves with a fixed number of points, using a fixed
// number of goroutines. The zero value is not usable; create samplers with
// New.
type Sampler struct {
	n       int
	workers int
}

// New creates a sampler from settings. It fails if settings.Samples < 1.
func New(settings curves.Settings) (*Sampler, error) {
	if err := checkCount(settings.Samples); err != nil {
		return nil, err
	}
	return &Sampler{n: settings.Samples, workers: settings.Workers}, nil
}

// N is the number of points per curve.
func (s *Sampler) N() int {
	return s.n
}

// Sample evaluates c at the sampler's number of points. With more than one
// worker configured, evaluation is done concurrently.
func (s *Sampler) Sample(ctx context.Context, c curves.Curve) ([]curves.Point, error) {
	if s.workers == 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Sample(c, s.n)
	}
	return Concurrent(ctx, c, s.n, s.workers)
}

// SampleAll samples a sequence of curves, e.g. the strokes of a glyph, and
// returns one point sequence per curve.
func (s *Sampler) SampleAll(ctx context.Context, cs ...curves.Curve) ([][]curves.Point, error) {
	all := make([][]curves.Point, len(cs))
	for i, c := range cs {
		pts, err := s.Sample(ctx, c)
		if err != nil {
			return nil, err
		}
		all[i] = pts
	}
	return all, nil
}
