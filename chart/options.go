package chart

// Frame selects which plot-area borders are drawn.
type Frame string

const (
	// FrameFull draws all four borders of the plot area.
	FrameFull Frame = "full"

	// FrameAxesOnly draws only the left and bottom borders.
	FrameAxesOnly Frame = "axes-only"
)

// Legend placements. Locations naming a side (left or right) put the
// legend box outside the plot area at the right edge; the center
// placements and LegendBest keep it inside.
const (
	LegendBest        = "best"
	LegendUpperRight  = "upper right"
	LegendUpperLeft   = "upper left"
	LegendLowerRight  = "lower right"
	LegendLowerLeft   = "lower left"
	LegendCenterLeft  = "center left"
	LegendCenterRight = "center right"
	LegendUpperCenter = "upper center"
	LegendLowerCenter = "lower center"
)

// DefaultDPI matches a 10x6 inch figure exported at print resolution.
const DefaultDPI = 300

const minInterval = 1e-10

// Options control chart appearance. Sizes given in points (LineWidth,
// tick lengths) scale with DPI like print output does.
//
// Start from DefaultOptions and adjust; the zero value renders, but with
// monochrome styling and no grid.
type Options struct {
	// Width and Height are the image size in pixels. Zero derives them
	// from DPI as a 10x6 inch figure.
	Width  int
	Height int

	// DPI sets the pixel density used to scale strokes and text. Zero
	// means DefaultDPI.
	DPI int

	// Title is the chart heading, drawn centered above the plot area.
	Title string

	// XLabel and YLabel name the axes.
	XLabel string
	YLabel string

	// Colorful selects the palette styling. When false the chart renders
	// monochrome: black curves, end labels instead of a legend box.
	Colorful bool

	// Background is a hex color. Empty picks the mode default: a light
	// gray tint when colorful, white in monochrome.
	Background string

	// LineWidth is the curve stroke width in points.
	LineWidth float64

	// ShowGrid toggles both grid layers.
	ShowGrid bool

	// GridColor is a hex color for both grid layers. Empty picks the
	// mode default: light gray when colorful, black in monochrome.
	GridColor string

	// Grid line spacing in data units. Zero derives from the plot range:
	// major span/10, minor span/50.
	GridMajorX float64
	GridMinorX float64
	GridMajorY float64
	GridMinorY float64

	// Tick spacing in data units. Zero derives from the plot range:
	// major span/8, minor span/40. Labels appear at major ticks only.
	TickMajorX float64
	TickMinorX float64
	TickMajorY float64
	TickMinorY float64

	// XAxisTop moves X ticks and label to the top edge; YAxisRight moves
	// Y ticks and label to the right edge.
	XAxisTop   bool
	YAxisRight bool

	// InvertY draws the Y axis increasing downward, the usual
	// orientation for depth data.
	InvertY bool

	// LogLog requests logarithmic scales on both axes. It only takes
	// effect when both range minimums are positive; otherwise the chart
	// stays linear.
	LogLog bool

	// Frame selects full or axes-only borders. Empty means FrameFull.
	Frame Frame

	// LegendLoc places the legend box in colorful mode. Empty means
	// LegendBest. Monochrome charts label curve ends instead.
	LegendLoc string
}

// DefaultOptions returns the standard styling: a colorful 10x6 inch
// chart at 300 DPI with grid, inverted Y axis, and a best-placed legend.
func DefaultOptions() Options {
	return Options{
		DPI:       DefaultDPI,
		Title:     "Polynomial Curve Analysis",
		XLabel:    "Pressure Gradient, psi",
		YLabel:    "True Vertical Depth, ft",
		Colorful:  true,
		LineWidth: 2.5,
		ShowGrid:  true,
		InvertY:   true,
		Frame:     FrameFull,
		LegendLoc: LegendBest,
	}
}

func (o Options) withDefaults() Options {
	if o.DPI <= 0 {
		o.DPI = DefaultDPI
	}
	if o.Width <= 0 {
		o.Width = 10 * o.DPI
	}
	if o.Height <= 0 {
		o.Height = 6 * o.DPI
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 2.5
	}
	if o.Frame == "" {
		o.Frame = FrameFull
	}
	if o.LegendLoc == "" {
		o.LegendLoc = LegendBest
	}
	if o.Background == "" {
		if o.Colorful {
			o.Background = "#F8F9FA"
		} else {
			o.Background = "#FFFFFF"
		}
	}
	if o.GridColor == "" {
		if o.Colorful {
			o.GridColor = "#D3D3D3"
		} else {
			o.GridColor = "#000000"
		}
	}
	return o
}

// pt converts a length in points to pixels at the configured DPI.
func (o Options) pt(points float64) float64 {
	return points * float64(o.DPI) / 72
}

// stepOrDefault returns the explicit interval, or span/div floored at
// minInterval when unset.
func stepOrDefault(explicit, span, div float64) float64 {
	if explicit > 0 {
		return explicit
	}
	step := span / div
	if step < minInterval {
		step = minInterval
	}
	return step
}
