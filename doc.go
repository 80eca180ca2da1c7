// Package polyplot evaluates batches of polynomial curves into plot-ready
// point segments.
//
// # Overview
//
// polyplot is the computational core of a polynomial curve plotting tool.
// It takes named coefficient vectors (highest degree first), evaluates them
// over an X range, filters the sampled points against axis bounds with
// optional stop-at-exit truncation, resolves Y bounds automatically when
// requested, and assigns display labels and colors. Rendering and data
// loading live in the chart and refdata sub-packages.
//
// # Quick Start
//
//	import "github.com/gogpu/polyplot"
//
//	p, err := polyplot.New(polyplot.Config{
//	    XRange: polyplot.Range{Min: 0, Max: 10},
//	    AutoY:  true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := p.Render([]polyplot.Curve{
//	    {Name: "Linear", Coeffs: []float64{1, 0}},      // y = x
//	    {Name: "Square", Coeffs: []float64{1, 0, 0}},   // y = x^2
//	})
//
// # Partial Failure
//
// A batch never aborts because one curve is defective. Curves that cannot
// be plotted are dropped and described by SkipRecord entries in the result;
// only structural problems (no curves at all, an inverted axis range) are
// reported as errors.
//
// # Coordinate Conventions
//
// Coefficients are ordered highest degree first, matching the usual
// polynomial notation c[0]*x^n + c[1]*x^(n-1) + ... + c[n]. Sample points
// are plain data coordinates; the chart package owns the mapping to pixels.
package polyplot

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
