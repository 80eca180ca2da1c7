package chart

import (
	"math"
	"strconv"

	"github.com/gogpu/polyplot"
)

// maxTicksPerAxis guards against a tiny explicit interval flooding the
// chart; past this count the axis draws no ticks at all.
const maxTicksPerAxis = 10000

// ticksWithin returns the integer multiples of step that fall inside r,
// ascending. The bounds are treated inclusively with a small tolerance
// so range endpoints that are themselves multiples stay in.
func ticksWithin(r polyplot.Range, step float64) []float64 {
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return nil
	}
	first := math.Ceil(r.Min/step - 1e-9)
	last := math.Floor(r.Max/step + 1e-9)
	if last < first {
		return nil
	}
	if last-first+1 > maxTicksPerAxis {
		return nil
	}

	out := make([]float64, 0, int(last-first)+1)
	for k := first; k <= last; k++ {
		out = append(out, k*step)
	}
	return out
}

// formatTick renders a tick value with up to six significant digits,
// enough to keep interval multiples clean without float noise.
func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
