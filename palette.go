package polyplot

// DefaultPalette is the built-in curve color cycle. Colors are assigned
// by curve index and wrap around when a batch has more curves than the
// palette has entries.
var DefaultPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	"#aec7e8", "#ffbb78", "#98df8a", "#ff9896", "#c5b0d5",
}

// monochromeTone is the single color every curve gets in monochrome mode.
const monochromeTone = "#000000"

// paletteColor returns the color for curve index i, cycling modulo the
// palette length. An empty palette falls back to DefaultPalette.
func paletteColor(palette []string, i int) string {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	if i < 0 {
		i = 0
	}
	return palette[i%len(palette)]
}
