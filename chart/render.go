package chart

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/polyplot"
)

// Text and stroke sizes in points, scaled by Options.DPI at draw time.
const (
	titlePt     = 12
	axisLabelPt = 10
	tickLabelPt = 10
	legendPt    = 8

	framePt     = 0.8
	gridPt      = 0.8
	majorTickPt = 3.5
	minorTickPt = 2.0
)

// Render draws one resolved plot and returns the drawing context, ready
// to encode or save. The plot's ranges must be valid; plots produced by
// a polyplot.Pipeline always are.
func Render(plot polyplot.Plot, opts Options) (*gg.Context, error) {
	opts = opts.withDefaults()
	if err := plot.XRange.Validate(); err != nil {
		return nil, fmt.Errorf("chart: x range: %w", err)
	}
	if err := plot.YRange.Validate(); err != nil {
		return nil, fmt.Errorf("chart: y range: %w", err)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.ClearWithColor(gg.Hex(opts.Background))

	tr := newTransform(plot.XRange, plot.YRange, areaFor(opts), opts.LogLog, opts.InvertY)

	if opts.ShowGrid {
		drawGrid(dc, tr, opts)
	}
	drawCurves(dc, tr, plot.Curves, opts)
	drawFrame(dc, tr.area, opts)
	if err := drawTicks(dc, tr, opts); err != nil {
		return nil, err
	}
	if err := drawHeadings(dc, tr.area, opts); err != nil {
		return nil, err
	}
	if opts.Colorful {
		if err := drawLegend(dc, tr.area, plot.Curves, opts); err != nil {
			return nil, err
		}
	} else if err := drawEndLabels(dc, tr, plot.Curves, opts); err != nil {
		return nil, err
	}
	return dc, nil
}

// drawGrid paints the minor layer first so major lines sit on top.
func drawGrid(dc *gg.Context, tr transform, o Options) {
	c := gg.Hex(o.GridColor)
	a := tr.area
	dc.SetLineWidth(o.pt(gridPt))

	layer := func(alpha, stepX, stepY float64) {
		dc.SetRGBA(c.R, c.G, c.B, alpha)
		for _, v := range ticksWithin(tr.xr, stepX) {
			if tr.logX && v <= 0 {
				continue
			}
			x := tr.X(v)
			dc.MoveTo(x, a.top)
			dc.LineTo(x, a.bottom)
		}
		for _, v := range ticksWithin(tr.yr, stepY) {
			if tr.logY && v <= 0 {
				continue
			}
			y := tr.Y(v)
			dc.MoveTo(a.left, y)
			dc.LineTo(a.right, y)
		}
		_ = dc.Stroke()
	}

	layer(0.2,
		stepOrDefault(o.GridMinorX, tr.xr.Width(), 50),
		stepOrDefault(o.GridMinorY, tr.yr.Width(), 50))
	layer(0.5,
		stepOrDefault(o.GridMajorX, tr.xr.Width(), 10),
		stepOrDefault(o.GridMajorY, tr.yr.Width(), 10))
}

func drawCurves(dc *gg.Context, tr transform, curves []polyplot.PlotCurve, o Options) {
	dc.SetLineWidth(o.pt(o.LineWidth))
	for _, pc := range curves {
		dc.SetHexColor(pc.Color)
		for _, seg := range pc.Segments {
			if len(seg) < 2 {
				continue
			}
			x, y := tr.Point(seg[0])
			dc.MoveTo(x, y)
			for _, p := range seg[1:] {
				x, y = tr.Point(p)
				dc.LineTo(x, y)
			}
			_ = dc.Stroke()
		}
	}
}

func drawFrame(dc *gg.Context, a plotArea, o Options) {
	dc.SetHexColor("#000000")
	dc.SetLineWidth(o.pt(framePt))
	if o.Frame == FrameAxesOnly {
		dc.MoveTo(a.left, a.top)
		dc.LineTo(a.left, a.bottom)
		dc.LineTo(a.right, a.bottom)
		_ = dc.Stroke()
		return
	}
	dc.DrawRectangle(a.left, a.top, a.width(), a.height())
	_ = dc.Stroke()
}

func drawTicks(dc *gg.Context, tr transform, o Options) error {
	face, err := fontFace(o.pt(tickLabelPt))
	if err != nil {
		return err
	}
	dc.SetFont(face)
	dc.SetHexColor("#000000")
	dc.SetLineWidth(o.pt(framePt))

	a := tr.area
	majLen := o.pt(majorTickPt)
	minLen := o.pt(minorTickPt)
	gap := o.pt(3)

	majX := ticksWithin(tr.xr, stepOrDefault(o.TickMajorX, tr.xr.Width(), 8))
	minX := ticksWithin(tr.xr, stepOrDefault(o.TickMinorX, tr.xr.Width(), 40))
	majY := ticksWithin(tr.yr, stepOrDefault(o.TickMajorY, tr.yr.Width(), 8))
	minY := ticksWithin(tr.yr, stepOrDefault(o.TickMinorY, tr.yr.Width(), 40))

	xEdge, xDir := a.bottom, 1.0
	if o.XAxisTop {
		xEdge, xDir = a.top, -1.0
	}
	for _, v := range minX {
		if tr.logX && v <= 0 {
			continue
		}
		x := tr.X(v)
		dc.MoveTo(x, xEdge)
		dc.LineTo(x, xEdge+xDir*minLen)
	}
	for _, v := range majX {
		if tr.logX && v <= 0 {
			continue
		}
		x := tr.X(v)
		dc.MoveTo(x, xEdge)
		dc.LineTo(x, xEdge+xDir*majLen)
	}
	_ = dc.Stroke()
	for _, v := range majX {
		if tr.logX && v <= 0 {
			continue
		}
		x := tr.X(v)
		if o.XAxisTop {
			dc.DrawStringAnchored(formatTick(v), x, xEdge-majLen-gap, 0.5, 0)
		} else {
			dc.DrawStringAnchored(formatTick(v), x, xEdge+majLen+gap, 0.5, 1)
		}
	}

	yEdge, yDir := a.left, -1.0
	if o.YAxisRight {
		yEdge, yDir = a.right, 1.0
	}
	for _, v := range minY {
		if tr.logY && v <= 0 {
			continue
		}
		y := tr.Y(v)
		dc.MoveTo(yEdge, y)
		dc.LineTo(yEdge+yDir*minLen, y)
	}
	for _, v := range majY {
		if tr.logY && v <= 0 {
			continue
		}
		y := tr.Y(v)
		dc.MoveTo(yEdge, y)
		dc.LineTo(yEdge+yDir*majLen, y)
	}
	_ = dc.Stroke()
	for _, v := range majY {
		if tr.logY && v <= 0 {
			continue
		}
		y := tr.Y(v)
		if o.YAxisRight {
			dc.DrawStringAnchored(formatTick(v), yEdge+majLen+gap, y, 0, 0.5)
		} else {
			dc.DrawStringAnchored(formatTick(v), yEdge-majLen-gap, y, 1, 0.5)
		}
	}
	return nil
}

func drawHeadings(dc *gg.Context, a plotArea, o Options) error {
	dc.SetHexColor("#000000")

	if o.Title != "" {
		face, err := fontFace(o.pt(titlePt))
		if err != nil {
			return err
		}
		dc.SetFont(face)
		y := a.top - o.pt(8)
		if o.XAxisTop {
			y = a.top - o.pt(30)
		}
		dc.DrawStringAnchored(o.Title, (a.left+a.right)/2, y, 0.5, 0)
	}

	face, err := fontFace(o.pt(axisLabelPt))
	if err != nil {
		return err
	}
	dc.SetFont(face)

	if o.XLabel != "" {
		x := (a.left + a.right) / 2
		if o.XAxisTop {
			dc.DrawStringAnchored(o.XLabel, x, a.top-o.pt(18), 0.5, 0)
		} else {
			dc.DrawStringAnchored(o.XLabel, x, a.bottom+o.pt(22), 0.5, 1)
		}
	}
	if o.YLabel != "" {
		drawVerticalLabel(dc, a, o)
	}
	return nil
}

// drawVerticalLabel stacks the Y label's characters down the side
// margin, centered on the plot area.
func drawVerticalLabel(dc *gg.Context, a plotArea, o Options) {
	x := a.left / 2
	if o.YAxisRight {
		x = (a.right + float64(o.Width)) / 2
	}
	step := o.pt(axisLabelPt) * 1.1
	runes := []rune(o.YLabel)
	start := (a.top+a.bottom)/2 - step*float64(len(runes)-1)/2
	for i, r := range runes {
		dc.DrawStringAnchored(string(r), x, start+step*float64(i), 0.5, 0.5)
	}
}

func drawLegend(dc *gg.Context, a plotArea, curves []polyplot.PlotCurve, o Options) error {
	if len(curves) == 0 {
		return nil
	}
	face, err := fontFace(o.pt(legendPt))
	if err != nil {
		return err
	}
	dc.SetFont(face)

	pad := o.pt(4)
	swatch := o.pt(14)
	gap := o.pt(3)
	lineH := o.pt(legendPt) * 1.5

	maxW := 0.0
	for _, pc := range curves {
		if w, _ := dc.MeasureString(pc.Label); w > maxW {
			maxW = w
		}
	}
	boxW := pad + swatch + gap + maxW + pad
	boxH := pad*2 + lineH*float64(len(curves))
	x0, y0 := legendOrigin(a, o.LegendLoc, boxW, boxH, o)

	bg := gg.Hex(o.Background)
	dc.SetRGBA(bg.R, bg.G, bg.B, 0.8)
	dc.DrawRectangle(x0, y0, boxW, boxH)
	_ = dc.Fill()
	dc.SetHexColor("#000000")
	dc.SetLineWidth(o.pt(framePt))
	dc.DrawRectangle(x0, y0, boxW, boxH)
	_ = dc.Stroke()

	for i, pc := range curves {
		cy := y0 + pad + lineH*(float64(i)+0.5)
		dc.SetHexColor(pc.Color)
		dc.SetLineWidth(o.pt(o.LineWidth))
		dc.MoveTo(x0+pad, cy)
		dc.LineTo(x0+pad+swatch, cy)
		_ = dc.Stroke()
		dc.SetHexColor("#000000")
		dc.DrawStringAnchored(pc.Label, x0+pad+swatch+gap, cy, 0, 0.5)
	}
	return nil
}

// legendOrigin picks the box's top-left corner. Placements naming a side
// sit outside the right edge at vertical center, matching the classic
// layout's anchored side legends; the center placements and best stay
// inside the plot area.
func legendOrigin(a plotArea, loc string, w, h float64, o Options) (x, y float64) {
	pad := o.pt(6)
	switch loc {
	case LegendUpperCenter:
		return (a.left+a.right)/2 - w/2, a.top + pad
	case LegendLowerCenter:
		return (a.left+a.right)/2 - w/2, a.bottom - h - pad
	case LegendBest:
		return a.right - w - pad, a.top + pad
	default:
		return a.right + pad, (a.top+a.bottom)/2 - h/2
	}
}

// drawEndLabels writes each curve's label at the end of its last
// segment, nudged down by 1% of the Y span. Monochrome charts use these
// instead of a legend box.
func drawEndLabels(dc *gg.Context, tr transform, curves []polyplot.PlotCurve, o Options) error {
	if len(curves) == 0 {
		return nil
	}
	face, err := fontFace(o.pt(legendPt))
	if err != nil {
		return err
	}
	dc.SetFont(face)
	dc.SetHexColor("#000000")

	nudge := tr.yr.Width() / 100
	for _, pc := range curves {
		if len(pc.Segments) == 0 {
			continue
		}
		seg := pc.Segments[len(pc.Segments)-1]
		if len(seg) == 0 {
			continue
		}
		end := seg[len(seg)-1]
		x, y := tr.Point(polyplot.Pt(end.X, end.Y-nudge))
		dc.DrawStringAnchored(pc.Label, x+o.pt(2), y, 0, 0.5)
	}
	return nil
}
