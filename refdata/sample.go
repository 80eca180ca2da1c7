package refdata

import "github.com/gogpu/polyplot"

// SampleCurves returns two built-in demonstration curves, a pair of
// fifth-degree pressure profiles. Callers use them when no workbook is
// available.
func SampleCurves() []polyplot.Curve {
	return []polyplot.Curve{
		polyplot.NewCurve("Curve1", 1e-10, -1e-7, 1e-4, -0.1, 100, 0),
		polyplot.NewCurve("Curve2", 1.1e-10, -1.1e-7, 1.1e-4, -0.11, 110, 0),
	}
}
