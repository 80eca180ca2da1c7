package chart

import (
	"math"

	"github.com/gogpu/polyplot"
)

// plotArea is the axes rectangle in pixel coordinates.
type plotArea struct {
	left, top, right, bottom float64
}

func (a plotArea) width() float64  { return a.right - a.left }
func (a plotArea) height() float64 { return a.bottom - a.top }

// areaFor lays out the plot area with the classic figure margins:
// 12.5% left, 10% right, 12% top, 11% bottom.
func areaFor(o Options) plotArea {
	w := float64(o.Width)
	h := float64(o.Height)
	return plotArea{
		left:   0.125 * w,
		top:    0.12 * h,
		right:  0.90 * w,
		bottom: 0.89 * h,
	}
}

// transform maps data coordinates onto the plot area. Log axes are only
// engaged when the corresponding range minimum is positive, so the
// logarithms below always see positive inputs for in-range values.
type transform struct {
	xr, yr  polyplot.Range
	area    plotArea
	logX    bool
	logY    bool
	invertY bool
}

func newTransform(xr, yr polyplot.Range, area plotArea, logLog, invertY bool) transform {
	log := logLog && xr.Min > 0 && yr.Min > 0
	return transform{xr: xr, yr: yr, area: area, logX: log, logY: log, invertY: invertY}
}

func logFrac(v, min, max float64) float64 {
	if v < min {
		v = min
	}
	return (math.Log10(v) - math.Log10(min)) / (math.Log10(max) - math.Log10(min))
}

func (t transform) fracX(v float64) float64 {
	if t.logX {
		return logFrac(v, t.xr.Min, t.xr.Max)
	}
	return (v - t.xr.Min) / t.xr.Width()
}

func (t transform) fracY(v float64) float64 {
	if t.logY {
		return logFrac(v, t.yr.Min, t.yr.Max)
	}
	return (v - t.yr.Min) / t.yr.Width()
}

// X maps a data X value to a pixel column.
func (t transform) X(v float64) float64 {
	return t.area.left + t.fracX(v)*t.area.width()
}

// Y maps a data Y value to a pixel row. With InvertY the range minimum
// sits at the top edge and values grow downward.
func (t transform) Y(v float64) float64 {
	f := t.fracY(v)
	if t.invertY {
		return t.area.top + f*t.area.height()
	}
	return t.area.bottom - f*t.area.height()
}

// Point maps a data point to pixel coordinates.
func (t transform) Point(p polyplot.Point) (x, y float64) {
	return t.X(p.X), t.Y(p.Y)
}
