package polyplot

import (
	"fmt"
	"log/slog"
)

// Y auto-scaling: sample every curve densely over the X range, collect
// the surviving values, and pad the observed extrema.

const (
	// autoPadFraction widens the observed [min, max] by this fraction of
	// the span on each side.
	autoPadFraction = 0.1

	// DefaultMaxMagnitude is the ceiling applied to resolved Y bounds
	// and to coefficient magnitudes. High-degree polynomials explode
	// near the domain edges; the ceiling keeps one runaway curve from
	// flattening everything else into a hairline.
	DefaultMaxMagnitude = 1e12
)

// fallbackYRange is used when no curve produces any usable sample.
var fallbackYRange = Range{Min: -1, Max: 1}

// autoSampleCount picks the dense sample count for auto-scaling from
// the X range width. Wider ranges get more samples so narrow features
// still register, without unbounded cost.
func autoSampleCount(width float64) int {
	switch {
	case width <= 100:
		return 2000
	case width <= 1000:
		return 4000
	case width <= 10000:
		return 6000
	default:
		return 8000
	}
}

// ResolveYRange computes Y bounds bracketing every finite in-range value
// the curves produce over xr, padded by 10% of the span on each side.
// A constant result (zero span) resolves to [c-1, c+1]. When no curve
// contributes any value, the fixed fallback range [-1, 1] is returned
// with a diagnostic instead of an error.
//
// The returned records also carry normalization notes for curves that
// had to be repaired or dropped before sampling.
func ResolveYRange(curves []Curve, xr Range, stopAtXExit, stopAtYExit bool) (Range, []SkipRecord) {
	var recs []SkipRecord
	sets := make([][]float64, 0, len(curves))
	for _, c := range curves {
		coeffs, notes, ok := normalizeCoeffs(c.Name, c.Coeffs, DefaultMaxMagnitude)
		recs = append(recs, notes...)
		if ok {
			sets = append(sets, coeffs)
		}
	}
	r, more := resolveYRange(sets, xr, stopAtXExit, stopAtYExit, DefaultMaxMagnitude, Logger())
	return r, append(recs, more...)
}

// resolveYRange is the resolver kernel. It assumes normalized
// coefficient vectors and reports only batch-level records (fallback,
// ceiling clamp). Sampling reuses the validity filter with Y
// unconstrained, so the collected values are exactly those a plot with
// no Y limits would draw.
func resolveYRange(sets [][]float64, xr Range, stopAtXExit, stopAtYExit bool, limit float64, log *slog.Logger) (Range, []SkipRecord) {
	n := autoSampleCount(xr.Width())
	xs := Linspace(xr.Min, xr.Max, n)

	lo, hi := 0.0, 0.0
	seen := false
	for _, coeffs := range sets {
		ys := Evaluate(coeffs, xs)
		segs, _, ok := FilterPoints(xs, ys, xr, nil, stopAtXExit, stopAtYExit)
		if !ok {
			continue
		}
		for _, seg := range segs {
			for _, p := range seg {
				if !seen {
					lo, hi = p.Y, p.Y
					seen = true
					continue
				}
				if p.Y < lo {
					lo = p.Y
				}
				if p.Y > hi {
					hi = p.Y
				}
			}
		}
	}

	var recs []SkipRecord
	if !seen {
		log.Debug("auto-scale found no usable samples, using fallback range",
			"fallback_min", fallbackYRange.Min, "fallback_max", fallbackYRange.Max)
		recs = append(recs, SkipRecord{
			Reason: SkipNoFiniteOutput,
			Detail: fmt.Sprintf("no finite in-range samples; using fallback y range [%g, %g]",
				fallbackYRange.Min, fallbackYRange.Max),
		})
		return fallbackYRange, recs
	}

	r := Range{Min: lo, Max: hi}
	if r.Width() == 0 {
		// Constant curve(s): fixed +-1 padding avoids a zero-height range.
		r = Range{Min: lo - 1, Max: hi + 1}
	} else {
		r = r.pad(autoPadFraction)
	}

	r, clamped := r.clampAbs(limit)
	if clamped {
		recs = append(recs, SkipRecord{
			Reason: SkipExtremeMagnitude,
			Detail: fmt.Sprintf("resolved y range clamped to magnitude ceiling %g", limit),
		})
	}
	if r.Min >= r.Max {
		// Every sample sat beyond the ceiling on one side; nothing
		// drawable remains after clamping.
		recs = append(recs, SkipRecord{
			Reason: SkipExtremeMagnitude,
			Detail: fmt.Sprintf("y range degenerate after ceiling clamp; using fallback [%g, %g]",
				fallbackYRange.Min, fallbackYRange.Max),
		})
		return fallbackYRange, recs
	}

	log.Debug("auto-scale resolved y range",
		"y_min", r.Min, "y_max", r.Max, "samples", n, "curves", len(sets))
	return r, recs
}
