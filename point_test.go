package polyplot

import (
	"math"
	"testing"
)

const pointEpsilon = 1e-12

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(3, -4)

	if got := p.Add(q); got != Pt(4, -2) {
		t.Errorf("Add = %+v, want (4,-2)", got)
	}
	if got := p.Sub(q); got != Pt(-2, 6) {
		t.Errorf("Sub = %+v, want (-2,6)", got)
	}
	if got := p.Mul(2); got != Pt(2, 4) {
		t.Errorf("Mul = %+v, want (2,4)", got)
	}
}

func TestPointDistance(t *testing.T) {
	if got := Pt(0, 0).Distance(Pt(3, 4)); math.Abs(got-5) > pointEpsilon {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPointLerp(t *testing.T) {
	p := Pt(0, 0)
	q := Pt(10, 20)

	if got := p.Lerp(q, 0); got != p {
		t.Errorf("Lerp(0) = %+v, want %+v", got, p)
	}
	if got := p.Lerp(q, 1); got != q {
		t.Errorf("Lerp(1) = %+v, want %+v", got, q)
	}
	if got := p.Lerp(q, 0.5); got != Pt(5, 10) {
		t.Errorf("Lerp(0.5) = %+v, want (5,10)", got)
	}
}

func TestPointFinite(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"finite", Pt(1, 2), true},
		{"nan y", Pt(1, math.NaN()), false},
		{"inf x", Pt(math.Inf(1), 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Finite(); got != tt.want {
				t.Errorf("Finite() = %v, want %v", got, tt.want)
			}
		})
	}
}
