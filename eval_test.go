package polyplot

import (
	"math"
	"testing"
)

const evalEpsilon = 1e-9

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		x      float64
		want   float64
	}{
		// Coefficients are highest degree first.
		{
			name:   "x^2 at 5",
			coeffs: []float64{1, 0, 0},
			x:      5,
			want:   25.0,
		},
		{
			name:   "constant",
			coeffs: []float64{42},
			x:      123.456,
			want:   42,
		},
		{
			name:   "linear y=x",
			coeffs: []float64{1, 0},
			x:      7.5,
			want:   7.5,
		},
		{
			name:   "linear with offset",
			coeffs: []float64{1, 20},
			x:      3,
			want:   23,
		},
		{
			name:   "cubic 2x^3 - x + 4 at -2",
			coeffs: []float64{2, 0, -1, 4},
			x:      -2,
			want:   2*(-8) - (-2) + 4,
		},
		{
			name:   "empty vector is the zero polynomial",
			coeffs: nil,
			x:      99,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalAt(tt.coeffs, tt.x)
			if math.Abs(got-tt.want) > evalEpsilon {
				t.Errorf("evalAt(%v, %v) = %v, want %v", tt.coeffs, tt.x, got, tt.want)
			}
		})
	}
}

func TestEvaluate_ExactSquare(t *testing.T) {
	// y = x^2 at x=5 is exactly representable; no tolerance needed.
	got := Evaluate([]float64{1, 0, 0}, []float64{5})
	if got[0] != 25.0 {
		t.Errorf("Evaluate([1,0,0], 5) = %v, want exactly 25.0", got[0])
	}
}

func TestEvaluate_MatchesDirectArithmetic(t *testing.T) {
	// Horner against the naive power sum, across degrees up to the cap.
	coeffs := []float64{0.5, -2, 0, 3, -1, 7, 0.25, -0.125, 2, -4, 1}
	xs := Linspace(-3, 3, 37)

	direct := func(x float64) float64 {
		sum := 0.0
		n := len(coeffs) - 1
		for i, c := range coeffs {
			sum += c * math.Pow(x, float64(n-i))
		}
		return sum
	}

	ys := Evaluate(coeffs, xs)
	for i, x := range xs {
		want := direct(x)
		tol := evalEpsilon * math.Max(1, math.Abs(want))
		if math.Abs(ys[i]-want) > tol {
			t.Errorf("Evaluate at x=%v: got %v, want %v", x, ys[i], want)
		}
	}
}

func TestEvaluate_NonFinitePassThrough(t *testing.T) {
	// Extreme inputs produce inf/NaN; the evaluator must hand them on
	// untouched rather than error.
	ys := Evaluate([]float64{1, 0}, []float64{math.Inf(1), math.Inf(-1), math.NaN()})
	if !math.IsInf(ys[0], 1) {
		t.Errorf("ys[0] = %v, want +Inf", ys[0])
	}
	if !math.IsInf(ys[1], -1) {
		t.Errorf("ys[1] = %v, want -Inf", ys[1])
	}
	if !math.IsNaN(ys[2]) {
		t.Errorf("ys[2] = %v, want NaN", ys[2])
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	coeffs := []float64{1e-10, -1e-7, 1e-4, -0.1, 100, 0}
	xs := Linspace(0, 100, 200)

	a := Evaluate(coeffs, xs)
	b := Evaluate(coeffs, xs)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("evaluation not deterministic at index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestLinspace(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		n        int
		wantLen  int
	}{
		{"typical", 0, 10, 200, 200},
		{"two points", -1, 1, 2, 2},
		{"single point", 5, 10, 1, 1},
		{"zero points", 0, 1, 0, 0},
		{"negative count", 0, 1, -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := Linspace(tt.min, tt.max, tt.n)
			if len(xs) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(xs), tt.wantLen)
			}
			if tt.wantLen == 0 {
				return
			}
			if xs[0] != tt.min {
				t.Errorf("first = %v, want exactly %v", xs[0], tt.min)
			}
			if tt.wantLen > 1 && xs[len(xs)-1] != tt.max {
				t.Errorf("last = %v, want exactly %v", xs[len(xs)-1], tt.max)
			}
		})
	}
}

func TestLinspace_EvenSpacing(t *testing.T) {
	xs := Linspace(0, 9, 10)
	for i := range xs {
		if math.Abs(xs[i]-float64(i)) > evalEpsilon {
			t.Errorf("xs[%d] = %v, want %v", i, xs[i], float64(i))
		}
	}
}

func TestLinspace_Monotonic(t *testing.T) {
	xs := Linspace(-1000, 1000, 4000)
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Fatalf("not strictly increasing at %d: %v <= %v", i, xs[i], xs[i-1])
		}
	}
}
