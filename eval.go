package polyplot

// Polynomial evaluation over sample grids.
//
// Evaluation is a pure function: no rounding, no clamping, no error
// returns. Extreme inputs produce IEEE-754 infinities or NaN, which the
// validity filter deals with downstream.

// Evaluate computes the polynomial with the given coefficients (highest
// degree first) at every x in xs, using Horner's method.
//
// Non-finite results are returned as-is; they are data for FilterPoints,
// not errors. An empty coefficient vector evaluates to the zero
// polynomial.
func Evaluate(coeffs []float64, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = evalAt(coeffs, x)
	}
	return ys
}

// evalAt is the Horner kernel: ((c0*x + c1)*x + c2)*x + ...
func evalAt(coeffs []float64, x float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	y := coeffs[0]
	for _, c := range coeffs[1:] {
		y = y*x + c
	}
	return y
}

// Linspace returns n evenly spaced samples over [min, max], both
// endpoints included exactly. n <= 0 returns nil, n == 1 returns [min].
func Linspace(min, max float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = min
		return xs
	}
	step := (max - min) / float64(n-1)
	for i := range xs {
		xs[i] = min + float64(i)*step
	}
	// Force the exact endpoint; the incremental sum can drift off it.
	xs[n-1] = max
	return xs
}
