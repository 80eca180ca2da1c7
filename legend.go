package polyplot

import "strings"

// Legend and style resolution: each curve gets a display label and a
// color string.
//
// Overrides are free text, one entry per line (semicolons also separate
// entries so overrides fit on a command line):
//
//	Reservoir A: #ff0000
//	Reservoir B
//
// Entries apply positionally: the i-th entry renames the i-th curve of
// the batch, and its optional color replaces the palette color. Curves
// beyond the override list keep their own name and the next palette
// color in index order.

// LegendResolver assigns labels and colors to curves by batch index.
// The zero value is not usable; construct with NewLegendResolver.
type LegendResolver struct {
	colorful bool
	palette  []string
	entries  []legendEntry
}

type legendEntry struct {
	label string
	color string
}

// NewLegendResolver parses the override text and captures the color
// mode and palette. Malformed override colors are logged at debug level
// and ignored, falling back to the palette; they never fail the plot.
func NewLegendResolver(colorful bool, palette []string, overrides string) *LegendResolver {
	lr := &LegendResolver{
		colorful: colorful,
		palette:  palette,
	}
	for _, line := range splitOverrides(overrides) {
		entry := legendEntry{label: line}
		if idx := strings.IndexByte(line, ':'); idx >= 0 {
			entry.label = strings.TrimSpace(line[:idx])
			raw := strings.TrimSpace(line[idx+1:])
			if hex, ok := normalizeHexColor(raw); ok {
				entry.color = hex
			} else {
				Logger().Debug("ignoring invalid legend override color",
					"label", entry.label, "color", raw)
			}
		}
		lr.entries = append(lr.entries, entry)
	}
	return lr
}

// Resolve returns the display label and color for the curve at the
// given batch index. Monochrome mode forces the single fixed tone no
// matter what the overrides say; labels are still applied.
func (lr *LegendResolver) Resolve(name string, index int) (label, color string) {
	label = name
	overrideColor := ""
	if index >= 0 && index < len(lr.entries) {
		e := lr.entries[index]
		if e.label != "" {
			label = e.label
		}
		overrideColor = e.color
	}

	if !lr.colorful {
		return label, monochromeTone
	}
	if overrideColor != "" {
		return label, overrideColor
	}
	return label, paletteColor(lr.palette, index)
}

// splitOverrides breaks the free-text override block into trimmed,
// non-empty entries.
func splitOverrides(s string) []string {
	var out []string
	for _, chunk := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == ';'
	}) {
		chunk = strings.TrimSpace(chunk)
		if chunk != "" {
			out = append(out, chunk)
		}
	}
	return out
}

// normalizeHexColor validates "#RGB", "#RRGGBB", or "#RRGGBBAA"
// (case-insensitive) and returns the lowercase form, with the short form
// expanded to six digits.
func normalizeHexColor(s string) (string, bool) {
	if len(s) == 0 || s[0] != '#' {
		return "", false
	}
	digits := strings.ToLower(s[1:])
	for _, r := range digits {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		default:
			return "", false
		}
	}
	switch len(digits) {
	case 3:
		var b strings.Builder
		b.WriteByte('#')
		for i := 0; i < 3; i++ {
			b.WriteByte(digits[i])
			b.WriteByte(digits[i])
		}
		return b.String(), true
	case 6, 8:
		return "#" + digits, true
	default:
		return "", false
	}
}
