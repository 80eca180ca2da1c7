package polyplot

import (
	"math"
	"testing"
)

const scaleEpsilon = 1e-9

func TestAutoSampleCount(t *testing.T) {
	tests := []struct {
		width float64
		want  int
	}{
		{10, 2000},
		{100, 2000},
		{100.5, 4000},
		{1000, 4000},
		{1001, 6000},
		{10000, 6000},
		{10001, 8000},
		{1e6, 8000},
	}

	for _, tt := range tests {
		if got := autoSampleCount(tt.width); got != tt.want {
			t.Errorf("autoSampleCount(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestResolveYRange_PaddingLaw(t *testing.T) {
	// y = x over [0, 10]: sampled extrema are a=0, b=10. Each side is
	// padded by exactly 0.1*(b-a).
	curves := []Curve{NewCurve("lin", 1, 0)}
	xr := Range{Min: 0, Max: 10}

	r, recs := ResolveYRange(curves, xr, false, false)
	if len(recs) != 0 {
		t.Fatalf("unexpected diagnostics: %v", recs)
	}

	a, b := 0.0, 10.0
	span := b - a
	if r.Min >= a {
		t.Errorf("resolved min %v not below sampled min %v", r.Min, a)
	}
	if r.Max <= b {
		t.Errorf("resolved max %v not above sampled max %v", r.Max, b)
	}
	if math.Abs((r.Max-b)-autoPadFraction*span) > scaleEpsilon {
		t.Errorf("upper padding = %v, want %v", r.Max-b, autoPadFraction*span)
	}
	if math.Abs((a-r.Min)-autoPadFraction*span) > scaleEpsilon {
		t.Errorf("lower padding = %v, want %v", a-r.Min, autoPadFraction*span)
	}
}

func TestResolveYRange_ConstantCurve(t *testing.T) {
	// Zero span: exactly [c-1, c+1].
	curves := []Curve{NewCurve("flat", 5)}
	xr := Range{Min: 0, Max: 100}

	r, _ := ResolveYRange(curves, xr, false, false)
	if r.Min != 4 || r.Max != 6 {
		t.Errorf("resolved = [%v, %v], want exactly [4, 6]", r.Min, r.Max)
	}
}

func TestResolveYRange_ShallowSlope(t *testing.T) {
	// y = 0.001x over [-1000, 1000] covers [-1, 1]; padding adds
	// 0.1*span = 0.2 per side.
	curves := []Curve{NewCurve("C", 0.001, 0)}
	xr := Range{Min: -1000, Max: 1000}

	r, _ := ResolveYRange(curves, xr, false, false)
	if !(r.Min < -1 && r.Max > 1) {
		t.Fatalf("resolved [%v, %v] does not bracket [-1, 1]", r.Min, r.Max)
	}
	if math.Abs(r.Min+1.2) > scaleEpsilon || math.Abs(r.Max-1.2) > scaleEpsilon {
		t.Errorf("resolved = [%v, %v], want [-1.2, 1.2]", r.Min, r.Max)
	}
}

func TestResolveYRange_UnionAcrossCurves(t *testing.T) {
	// The batch range must cover both curves, not just one.
	curves := []Curve{
		NewCurve("low", 1, 0),  // y in [0, 10]
		NewCurve("high", 2, 0), // y in [0, 20]
	}
	xr := Range{Min: 0, Max: 10}

	r, _ := ResolveYRange(curves, xr, false, false)
	want := Range{Min: -2, Max: 22} // span 20, padded by 2
	if math.Abs(r.Min-want.Min) > scaleEpsilon || math.Abs(r.Max-want.Max) > scaleEpsilon {
		t.Errorf("resolved = [%v, %v], want [%v, %v]", r.Min, r.Max, want.Min, want.Max)
	}
}

func TestResolveYRange_EmptyFallback(t *testing.T) {
	// An all-zero curve never contributes samples; the resolver falls
	// back instead of failing.
	curves := []Curve{NewCurve("zero", 0, 0, 0)}
	xr := Range{Min: 0, Max: 10}

	r, recs := ResolveYRange(curves, xr, false, false)
	if r != fallbackYRange {
		t.Errorf("resolved = %+v, want fallback %+v", r, fallbackYRange)
	}
	if findReason(recs, SkipAllZero) == nil {
		t.Error("expected the all_zero normalization note")
	}
	if findReason(recs, SkipNoFiniteOutput) == nil {
		t.Error("expected the batch fallback diagnostic")
	}
}

func TestResolveYRange_NoCurvesAtAll(t *testing.T) {
	r, recs := ResolveYRange(nil, Range{Min: 0, Max: 10}, false, false)
	if r != fallbackYRange {
		t.Errorf("resolved = %+v, want fallback %+v", r, fallbackYRange)
	}
	if findReason(recs, SkipNoFiniteOutput) == nil {
		t.Error("expected the batch fallback diagnostic")
	}
}

func TestResolveYRangeKernel_CeilingClamp(t *testing.T) {
	// y = x over [0, 10] resolves to [-1, 11]; a ceiling of 5 cuts the
	// top off and reports it.
	sets := [][]float64{{1, 0}}
	xr := Range{Min: 0, Max: 10}

	r, recs := resolveYRange(sets, xr, false, false, 5, Logger())
	if r.Max != 5 {
		t.Errorf("max = %v, want clamped 5", r.Max)
	}
	if math.Abs(r.Min+1) > scaleEpsilon {
		t.Errorf("min = %v, want -1 (unclamped)", r.Min)
	}
	if findReason(recs, SkipExtremeMagnitude) == nil {
		t.Error("expected a clamp diagnostic")
	}
}

func TestResolveYRangeKernel_DegenerateAfterClamp(t *testing.T) {
	// Every sample sits far above the ceiling: clamping leaves nothing,
	// so the fallback range applies.
	sets := [][]float64{{1e10}}
	xr := Range{Min: 0, Max: 10}

	r, recs := resolveYRange(sets, xr, false, false, 5, Logger())
	if r != fallbackYRange {
		t.Errorf("resolved = %+v, want fallback %+v", r, fallbackYRange)
	}
	if findReason(recs, SkipExtremeMagnitude) == nil {
		t.Error("expected a degenerate-clamp diagnostic")
	}
}

func TestResolveYRange_DenseScanCatchesNarrowDip(t *testing.T) {
	// The render-time 200 samples could miss a narrow feature; the
	// resolver's dense grid must not. The quartic dips to 0 at x=2 and
	// x=8 and rises to 256 at the edges of [0, 10].
	curves := []Curve{{Name: "dip", Coeffs: quarticCoeffs}}
	xr := Range{Min: 0, Max: 10}

	r, _ := ResolveYRange(curves, xr, false, false)
	if r.Min > 0 {
		t.Errorf("min = %v, dense sampling should reach the dip at 0", r.Min)
	}
	// Both endpoints evaluate to 256, the sampled maximum.
	if r.Max < 256 {
		t.Errorf("max = %v, want at least the endpoint value 256", r.Max)
	}
}

func TestResolveYRange_NormalizationNotesSurface(t *testing.T) {
	curves := []Curve{
		{Name: "broken", Coeffs: []float64{math.NaN(), 1}},
		{Name: "fine", Coeffs: []float64{1, 0}},
	}
	xr := Range{Min: 0, Max: 10}

	_, recs := ResolveYRange(curves, xr, false, false)
	rec := findReason(recs, SkipInvalidCoefficients)
	if rec == nil {
		t.Fatal("expected the substitution note for the broken curve")
	}
	if rec.Curve != "broken" {
		t.Errorf("note names %q, want %q", rec.Curve, "broken")
	}
}
