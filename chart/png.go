package chart

import (
	"io"
	"strings"
	"unicode"

	"github.com/gogpu/polyplot"
)

// EncodePNG renders the plot and writes it to w as PNG.
func EncodePNG(plot polyplot.Plot, opts Options, w io.Writer) error {
	dc, err := Render(plot, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG renders the plot and writes it to the given file path.
func SavePNG(plot polyplot.Plot, opts Options, path string) error {
	dc, err := Render(plot, opts)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

// SafeFileName reduces a curve or plot name to characters safe in file
// names: letters, digits, spaces, dashes, and underscores survive,
// everything else is dropped, and trailing spaces are trimmed. The
// result may be empty if nothing survives.
func SafeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}
