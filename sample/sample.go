/*
Package sample approximates curves by sequences of points.

A sampler evaluates a curve at N parameter values, spaced equidistantly
over the curve's domain. For closed domains (Bézier curves) both ends of
[0,1] are included; for half-open domains (B-splines) the parameters are
drawn from [0,1), never reaching 1.

Evaluations at different parameters are independent of each other, so
sampling may be spread over several goroutines. The order of the resulting
points always matches the order of the parameters.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package sample

import (
	"context"
	"fmt"
	"iter"
	"runtime"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/sync/errgroup"
)

// tracer writes to trace with key 'curves.sample'
func tracer() tracing.Trace {
	return tracing.Select("curves.sample")
}

func checkCount(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", curves.ErrSampleCount, n)
	}
	return nil
}

// Sample evaluates c at n equidistant parameters over its domain and returns
// the points in parameter order.
func Sample(c curves.Curve, n int) ([]curves.Point, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}
	dom := c.Domain()
	pts := make([]curves.Point, n)
	for i := range pts {
		pts[i] = c.At(dom.Param(i, n))
	}
	tracer().Debugf("sampled %d points over %v", n, dom)
	return pts, nil
}

// Seq returns a lazy sequence of the n sample points of c, paired with their
// index. The sequence is finite and may be iterated more than once.
func Seq(c curves.Curve, n int) iter.Seq2[int, curves.Point] {
	dom := c.Domain()
	return func(yield func(int, curves.Point) bool) {
		for i := 0; i < n; i++ {
			if !yield(i, c.At(dom.Param(i, n))) {
				return
			}
		}
	}
}

// Concurrent evaluates c at n equidistant parameters, like Sample, but
// spreads the evaluations over up to workers goroutines. workers ≤ 0 selects
// runtime.NumCPU(). Every goroutine writes to a distinct part of the result,
// which therefore is in parameter order, identical to the result of Sample.
//
// Cancelling ctx stops the evaluation of chunks not yet started; Concurrent
// then returns ctx.Err().
func Concurrent(ctx context.Context, c curves.Curve, n, workers int) ([]curves.Point, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	dom := c.Domain()
	pts := make([]curves.Point, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				pts[i] = c.At(dom.Param(i, n))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		tracer().Errorf("concurrent sampling aborted: %v", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tracer().Debugf("sampled %d points over %v with %d workers", n, dom, workers)
	return pts, nil
}
