package polyplot

import "errors"

// Sentinel errors for the polyplot package.
//
// Per-curve defects (bad coefficients, out-of-range output) never surface
// as errors; they become SkipRecord diagnostics. Only structural problems
// that make the whole request meaningless are reported here.
var (
	// ErrInvalidRange is returned when an axis range has min >= max or a
	// non-finite bound.
	ErrInvalidRange = errors.New("polyplot: invalid axis range")

	// ErrNoCurves is returned when a batch contains no curves at all.
	ErrNoCurves = errors.New("polyplot: no curves in batch")

	// ErrTooManyCurves is returned when a batch exceeds the configured
	// curve count limit.
	ErrTooManyCurves = errors.New("polyplot: too many curves in batch")
)
