package polyplot

import "fmt"

// SkipReason classifies why a curve was dropped from a plot, or carries
// an advisory note about a curve that was still plotted (degree
// truncation, coefficient substitution).
type SkipReason int

const (
	// SkipInvalidCoefficients marks curves with no coefficients, or an
	// advisory note when non-finite coefficients were replaced by zero.
	SkipInvalidCoefficients SkipReason = iota

	// SkipAllZero marks curves whose coefficients are all zero (or below
	// the near-zero threshold).
	SkipAllZero

	// SkipDegreeExceeded is an advisory note: the coefficient vector was
	// truncated to the degree cap. The curve is still plotted.
	SkipDegreeExceeded

	// SkipExtremeMagnitude marks curves with a coefficient beyond the
	// configured magnitude ceiling, and batch notes when a resolved
	// Y range had to be clamped to that ceiling.
	SkipExtremeMagnitude

	// SkipNoFiniteOutput marks curves whose every sampled value is
	// NaN or infinite.
	SkipNoFiniteOutput

	// SkipNeverEnteredBounds marks curves with no sample inside the
	// plot ranges.
	SkipNeverEnteredBounds

	// SkipInsufficientPoints marks curves whose in-range runs are all
	// shorter than two points, too short to draw.
	SkipInsufficientPoints

	// SkipEmptyInput marks a batch that contained no curves.
	SkipEmptyInput
)

// String returns the stable snake_case reason code.
func (r SkipReason) String() string {
	switch r {
	case SkipInvalidCoefficients:
		return "invalid_coefficients"
	case SkipAllZero:
		return "all_zero"
	case SkipDegreeExceeded:
		return "degree_exceeded"
	case SkipExtremeMagnitude:
		return "extreme_magnitude"
	case SkipNoFiniteOutput:
		return "no_finite_output"
	case SkipNeverEnteredBounds:
		return "never_entered_bounds"
	case SkipInsufficientPoints:
		return "insufficient_points"
	case SkipEmptyInput:
		return "empty_input"
	default:
		return fmt.Sprintf("unknown_reason(%d)", int(r))
	}
}

// SkipRecord is one diagnostic produced while rendering a batch.
// Records with reason SkipDegreeExceeded or SkipInvalidCoefficients can
// accompany curves that were recovered and plotted anyway; all other
// reasons mean the named curve produced no output. Curve is empty for
// batch-level notes (range fallback, ceiling clamp).
type SkipRecord struct {
	Curve  string
	Reason SkipReason
	Detail string
}

// String formats the record as "name: reason (detail)".
func (r SkipRecord) String() string {
	name := r.Curve
	if name == "" {
		name = "(batch)"
	}
	if r.Detail == "" {
		return fmt.Sprintf("%s: %s", name, r.Reason)
	}
	return fmt.Sprintf("%s: %s (%s)", name, r.Reason, r.Detail)
}
