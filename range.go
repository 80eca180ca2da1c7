package polyplot

import (
	"fmt"
	"math"
)

// Range is a closed interval [Min, Max] on one axis.
// A valid range has finite bounds with Min strictly less than Max.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Width returns Max - Min.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies inside the range, bounds included.
// Contains is false for NaN.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Validate returns ErrInvalidRange (wrapped with the offending bounds)
// unless Min < Max and both bounds are finite.
func (r Range) Validate() error {
	if !isFinite(r.Min) || !isFinite(r.Max) {
		return fmt.Errorf("%w: non-finite bound [%v, %v]", ErrInvalidRange, r.Min, r.Max)
	}
	if r.Min >= r.Max {
		return fmt.Errorf("%w: min %v >= max %v", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// pad widens the range by frac*Width on each side.
func (r Range) pad(frac float64) Range {
	span := r.Width()
	return Range{Min: r.Min - frac*span, Max: r.Max + frac*span}
}

// clampAbs limits both bounds to [-limit, limit]. The second return
// value reports whether anything was clamped.
func (r Range) clampAbs(limit float64) (Range, bool) {
	clamped := false
	if r.Min < -limit {
		r.Min = -limit
		clamped = true
	}
	if r.Max > limit {
		r.Max = limit
		clamped = true
	}
	return r, clamped
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
