package curves

import "errors"

// ErrConfiguration is the parent of all errors signalling invalid
// construction parameters. Use errors.Is(err, ErrConfiguration) to test for
// any of them.
var ErrConfiguration = errors.New("invalid curve configuration")

var (
	// ErrEmptyPolygon indicates an empty sequence of control points.
	ErrEmptyPolygon = configError("control polygon is empty")
	// ErrDimensionMismatch indicates control points of differing dimension.
	ErrDimensionMismatch = configError("control points differ in dimension")
	// ErrInvalidPoint indicates a control point coordinate containing NaN/Inf.
	ErrInvalidPoint = configError("control point has invalid coordinate")
	// ErrInvalidOrder indicates a B-spline order below 1.
	ErrInvalidOrder = configError("order must be at least 1")
	// ErrTooFewControlPoints indicates fewer control points than the order requires.
	ErrTooFewControlPoints = configError("fewer control points than order")
	// ErrSampleCount indicates a sample count below 1.
	ErrSampleCount = configError("sample count must be at least 1")
)

// ErrDomain indicates an evaluation parameter outside of a curve's domain.
var ErrDomain = errors.New("parameter outside of curve domain")

// configError is a sentinel which is also an ErrConfiguration.
type configError string

func (e configError) Error() string {
	return string(e)
}

func (e configError) Is(target error) bool {
	return target == ErrConfiguration
}
