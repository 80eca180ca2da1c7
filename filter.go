package polyplot

// Validity filtering: turns raw samples into drawable segments.
//
// The X and Y stop-at-exit policies are fully independent. Each axis
// tracks its own "entered" state; an exit on one axis never consults the
// other axis's samples.

// Segment is a maximal run of consecutive valid points of one curve.
type Segment []Point

// minSegmentPoints is the shortest run worth drawing.
const minSegmentPoints = 2

// FilterPoints scans the sampled curve left to right and returns the
// runs of points that are finite and inside both axis ranges.
//
// yr may be nil, meaning Y is unconstrained (used while resolving an
// auto-scaled Y range). Non-finite samples break a run but are not
// range exits. With stop-at-exit enabled for an axis, scanning stops at
// the first sample that leaves that axis's range after the curve has
// entered it; leading out-of-range samples do not arm the stop.
//
// Runs shorter than two points are dropped. When nothing survives, ok is
// false and reason tells why: SkipNoFiniteOutput if every sample was
// non-finite, SkipNeverEnteredBounds if no sample was inside both
// ranges, SkipInsufficientPoints otherwise.
func FilterPoints(xs, ys []float64, xr Range, yr *Range, stopAtXExit, stopAtYExit bool) (segs []Segment, reason SkipReason, ok bool) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}

	var (
		cur        Segment
		enteredX   bool
		enteredY   bool
		finiteSeen bool
		validSeen  bool
	)
	flush := func() {
		if len(cur) >= minSegmentPoints {
			segs = append(segs, cur)
		}
		cur = nil
	}

	for i := 0; i < n; i++ {
		x, y := xs[i], ys[i]
		if !isFinite(x) || !isFinite(y) {
			flush()
			continue
		}
		finiteSeen = true

		inX := xr.Contains(x)
		inY := yr == nil || yr.Contains(y)
		if (stopAtXExit && enteredX && !inX) || (stopAtYExit && enteredY && !inY) {
			break
		}
		if inX {
			enteredX = true
		}
		if inY {
			enteredY = true
		}

		if inX && inY {
			validSeen = true
			cur = append(cur, Point{X: x, Y: y})
		} else {
			flush()
		}
	}
	flush()

	if len(segs) > 0 {
		return segs, 0, true
	}
	switch {
	case !finiteSeen:
		return nil, SkipNoFiniteOutput, false
	case !validSeen:
		return nil, SkipNeverEnteredBounds, false
	default:
		return nil, SkipInsufficientPoints, false
	}
}
