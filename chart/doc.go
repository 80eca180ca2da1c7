// Package chart renders resolved plots as raster charts.
//
// The polyplot package decides WHAT to draw (accepted curves, their
// segments, the coordinate window); chart decides how it looks. Render
// turns one polyplot.Plot into a styled image: background, minor and
// major grids, the curve strokes, frame, ticks, axis labels, title, and
// either a color legend or per-curve end labels in monochrome mode.
//
// # Quick Start
//
//	p, _ := polyplot.New(polyplot.DefaultConfig())
//	res, _ := p.Render([]polyplot.Curve{polyplot.NewCurve("c1", 1, 0)})
//
//	opts := chart.DefaultOptions()
//	for _, plot := range res.Plots {
//		if err := chart.SavePNG(plot, opts, "out.png"); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Rendering is CPU only and deterministic: the same plot and options
// produce the same pixels.
package chart
