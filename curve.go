package polyplot

import (
	"fmt"
	"math"
)

const (
	// MaxDegree is the highest polynomial degree the pipeline accepts.
	// Vectors describing a higher degree are truncated, not rejected.
	MaxDegree = 10

	// coeffEpsilon is the near-zero threshold: leading coefficients
	// smaller than this in magnitude do not count toward the degree.
	coeffEpsilon = 1e-10
)

// Curve is one named polynomial, defined by its coefficients ordered
// highest degree first: Coeffs[0]*x^n + ... + Coeffs[n].
//
// Curves are plain input data and are never mutated by the pipeline.
type Curve struct {
	Name   string
	Coeffs []float64
}

// NewCurve is a convenience constructor.
func NewCurve(name string, coeffs ...float64) Curve {
	return Curve{Name: name, Coeffs: coeffs}
}

// Degree returns the effective degree: the position of the highest
// coefficient with magnitude at or above the near-zero threshold.
// An empty or all-near-zero vector has degree 0.
func (c Curve) Degree() int {
	for i, v := range c.Coeffs {
		if math.Abs(v) >= coeffEpsilon {
			return len(c.Coeffs) - 1 - i
		}
	}
	return 0
}

// Eval evaluates the polynomial at x. See Evaluate for the numeric
// semantics.
func (c Curve) Eval(x float64) float64 {
	return evalAt(c.Coeffs, x)
}

// normalizeCoeffs validates and canonicalizes a coefficient vector:
//
//  1. Non-finite entries are replaced by zero (advisory note, recovered).
//  2. Vectors that are empty or entirely near-zero are rejected.
//  3. Leading near-zero coefficients are stripped so the degree reflects
//     the highest term that actually contributes.
//  4. Any surviving coefficient beyond the magnitude ceiling rejects the
//     curve outright.
//  5. Vectors above the degree cap keep their MaxDegree+1 highest-order
//     terms (advisory note, curve still plotted).
//
// The returned slice is always a copy. ok is false when the curve must
// be skipped; notes then ends with the fatal record.
func normalizeCoeffs(name string, in []float64, maxMagnitude float64) (out []float64, notes []SkipRecord, ok bool) {
	if len(in) == 0 {
		notes = append(notes, SkipRecord{
			Curve:  name,
			Reason: SkipInvalidCoefficients,
			Detail: "no coefficients",
		})
		return nil, notes, false
	}

	out = make([]float64, len(in))
	substituted := 0
	for i, v := range in {
		if !isFinite(v) {
			out[i] = 0
			substituted++
			continue
		}
		out[i] = v
	}
	if substituted > 0 {
		notes = append(notes, SkipRecord{
			Curve:  name,
			Reason: SkipInvalidCoefficients,
			Detail: fmt.Sprintf("%d non-finite coefficient(s) replaced by zero", substituted),
		})
	}

	allZero := true
	for _, v := range out {
		if math.Abs(v) >= coeffEpsilon {
			allZero = false
			break
		}
	}
	if allZero {
		notes = append(notes, SkipRecord{
			Curve:  name,
			Reason: SkipAllZero,
			Detail: fmt.Sprintf("all coefficients below %g in magnitude", coeffEpsilon),
		})
		return nil, notes, false
	}

	for len(out) > 1 && math.Abs(out[0]) < coeffEpsilon {
		out = out[1:]
	}

	for _, v := range out {
		if math.Abs(v) > maxMagnitude {
			notes = append(notes, SkipRecord{
				Curve:  name,
				Reason: SkipExtremeMagnitude,
				Detail: fmt.Sprintf("coefficient %g exceeds magnitude ceiling %g", v, maxMagnitude),
			})
			return nil, notes, false
		}
	}

	if len(out)-1 > MaxDegree {
		notes = append(notes, SkipRecord{
			Curve:  name,
			Reason: SkipDegreeExceeded,
			Detail: fmt.Sprintf("degree %d truncated to %d", len(out)-1, MaxDegree),
		})
		out = out[:MaxDegree+1]
	}

	return out, notes, true
}
