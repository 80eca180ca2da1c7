package polyplot

import (
	"math"
	"testing"
)

func TestCurveDegree(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		want   int
	}{
		{"constant", []float64{5}, 0},
		{"linear", []float64{1, 0}, 1},
		{"quintic", []float64{1e-10, -1e-7, 1e-4, -0.1, 100, 0}, 5},
		{"tiny leading coefficient ignored", []float64{1e-12, 1, 0}, 1},
		{"all tiny", []float64{1e-12, 1e-14}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCurve("c", tt.coeffs...)
			if got := c.Degree(); got != tt.want {
				t.Errorf("Degree() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurveEval(t *testing.T) {
	c := NewCurve("square", 1, 0, 0)
	if got := c.Eval(5); got != 25.0 {
		t.Errorf("Eval(5) = %v, want 25", got)
	}
}

func findReason(recs []SkipRecord, reason SkipReason) *SkipRecord {
	for i := range recs {
		if recs[i].Reason == reason {
			return &recs[i]
		}
	}
	return nil
}

func TestNormalizeCoeffs(t *testing.T) {
	tests := []struct {
		name       string
		coeffs     []float64
		wantOK     bool
		wantCoeffs []float64
		wantReason SkipReason
	}{
		{
			name:       "plain vector unchanged",
			coeffs:     []float64{1, 2, 3},
			wantOK:     true,
			wantCoeffs: []float64{1, 2, 3},
		},
		{
			name:       "leading near-zero stripped",
			coeffs:     []float64{1e-12, 1e-11, 2, 3},
			wantOK:     true,
			wantCoeffs: []float64{2, 3},
		},
		{
			name:       "threshold is strict: 1e-10 survives",
			coeffs:     []float64{1e-10, -1e-7, 1e-4, -0.1, 100, 0},
			wantOK:     true,
			wantCoeffs: []float64{1e-10, -1e-7, 1e-4, -0.1, 100, 0},
		},
		{
			name:       "inner near-zero kept",
			coeffs:     []float64{2, 1e-15, 3},
			wantOK:     true,
			wantCoeffs: []float64{2, 1e-15, 3},
		},
		{
			name:       "empty vector rejected",
			coeffs:     nil,
			wantOK:     false,
			wantReason: SkipInvalidCoefficients,
		},
		{
			name:       "all zero rejected",
			coeffs:     []float64{0, 0, 0},
			wantOK:     false,
			wantReason: SkipAllZero,
		},
		{
			name:       "all near-zero rejected",
			coeffs:     []float64{1e-11, -1e-12, 1e-13},
			wantOK:     false,
			wantReason: SkipAllZero,
		},
		{
			name:       "extreme coefficient rejected",
			coeffs:     []float64{1e13, 0},
			wantOK:     false,
			wantReason: SkipExtremeMagnitude,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, notes, ok := normalizeCoeffs("c", tt.coeffs, DefaultMaxMagnitude)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (notes: %v)", ok, tt.wantOK, notes)
			}
			if !ok {
				if len(notes) == 0 {
					t.Fatal("rejected without a record")
				}
				last := notes[len(notes)-1]
				if last.Reason != tt.wantReason {
					t.Errorf("reason = %v, want %v", last.Reason, tt.wantReason)
				}
				if last.Curve != "c" {
					t.Errorf("record curve = %q, want %q", last.Curve, "c")
				}
				return
			}
			if len(out) != len(tt.wantCoeffs) {
				t.Fatalf("coeffs = %v, want %v", out, tt.wantCoeffs)
			}
			for i := range out {
				if out[i] != tt.wantCoeffs[i] {
					t.Errorf("coeffs[%d] = %v, want %v", i, out[i], tt.wantCoeffs[i])
				}
			}
		})
	}
}

func TestNormalizeCoeffs_NonFiniteSubstituted(t *testing.T) {
	out, notes, ok := normalizeCoeffs("c", []float64{1, math.NaN(), math.Inf(1), 4}, DefaultMaxMagnitude)
	if !ok {
		t.Fatalf("curve should be recovered, notes: %v", notes)
	}
	want := []float64{1, 0, 0, 4}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("coeffs[%d] = %v, want %v", i, out[i], want[i])
		}
	}
	rec := findReason(notes, SkipInvalidCoefficients)
	if rec == nil {
		t.Fatal("expected an invalid_coefficients advisory note")
	}
}

func TestNormalizeCoeffs_AllNonFiniteBecomesAllZero(t *testing.T) {
	_, notes, ok := normalizeCoeffs("c", []float64{math.NaN(), math.Inf(-1)}, DefaultMaxMagnitude)
	if ok {
		t.Fatal("curve of only non-finite coefficients should be rejected")
	}
	if rec := findReason(notes, SkipAllZero); rec == nil {
		t.Fatalf("expected all_zero after substitution, notes: %v", notes)
	}
}

func TestNormalizeCoeffs_DegreeCap(t *testing.T) {
	// Degree 12: the 11 highest-order terms stay, the low-order tail is
	// dropped, and the curve is still accepted.
	in := []float64{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	out, notes, ok := normalizeCoeffs("c", in, DefaultMaxMagnitude)
	if !ok {
		t.Fatalf("truncation must not reject, notes: %v", notes)
	}
	if len(out) != MaxDegree+1 {
		t.Fatalf("len = %d, want %d", len(out), MaxDegree+1)
	}
	for i := 0; i <= MaxDegree; i++ {
		if out[i] != in[i] {
			t.Errorf("coeffs[%d] = %v, want %v (highest-order terms kept)", i, out[i], in[i])
		}
	}
	if rec := findReason(notes, SkipDegreeExceeded); rec == nil {
		t.Fatal("expected a degree_exceeded advisory note")
	}
}

func TestNormalizeCoeffs_DegreeCapIdempotent(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11} // degree 10, at the cap
	out, notes, ok := normalizeCoeffs("c", in, DefaultMaxMagnitude)
	if !ok {
		t.Fatalf("unexpected rejection: %v", notes)
	}
	if findReason(notes, SkipDegreeExceeded) != nil {
		t.Error("vector at the cap must not be reported as truncated")
	}
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}

	out2, notes2, ok2 := normalizeCoeffs("c", out, DefaultMaxMagnitude)
	if !ok2 || len(out2) != len(out) {
		t.Fatalf("re-normalization changed the vector: %v -> %v (notes %v)", out, out2, notes2)
	}
	for i := range out {
		if out2[i] != out[i] {
			t.Errorf("re-normalization altered coeffs[%d]: %v != %v", i, out2[i], out[i])
		}
	}
}

func TestNormalizeCoeffs_StripBeforeCap(t *testing.T) {
	// Three tiny leading entries hide a plain degree-9 vector; stripping
	// them first means no truncation and no diagnostic.
	in := append([]float64{1e-12, 1e-12, 1e-12}, []float64{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}...)
	out, notes, ok := normalizeCoeffs("c", in, DefaultMaxMagnitude)
	if !ok {
		t.Fatalf("unexpected rejection: %v", notes)
	}
	if len(out) != 10 {
		t.Fatalf("len = %d, want 10", len(out))
	}
	if findReason(notes, SkipDegreeExceeded) != nil {
		t.Error("stripping should have brought the vector under the cap")
	}
}

func TestNormalizeCoeffs_CopiesInput(t *testing.T) {
	in := []float64{1, 2, 3}
	out, _, ok := normalizeCoeffs("c", in, DefaultMaxMagnitude)
	if !ok {
		t.Fatal("unexpected rejection")
	}
	out[0] = 99
	if in[0] != 1 {
		t.Error("normalizeCoeffs must not alias the caller's slice")
	}
}
