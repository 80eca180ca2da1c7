package polyplot

// Grouping selects how a batch maps to plots.
type Grouping string

const (
	// GroupCombined draws every accepted curve into one shared plot.
	GroupCombined Grouping = "combined"

	// GroupPerCurve draws one plot per accepted curve, each with its own
	// resolved Y range.
	GroupPerCurve Grouping = "per-curve"
)

const (
	// DefaultSamples is the per-curve sample count for final rendering.
	DefaultSamples = 200

	// DefaultMaxCurves bounds batch size so one request cannot pin a CPU
	// indefinitely.
	DefaultMaxCurves = 500

	minSamples = 2
	maxSamples = 20000
)

// Config describes one plotting request. The zero value is not usable
// on its own (XRange must be set); New fills the remaining zero fields
// from DefaultConfig.
type Config struct {
	// XRange is the evaluation and display range on X.
	XRange Range `yaml:"x_range"`

	// YRange is the fixed display range on Y, ignored when AutoY is set.
	YRange Range `yaml:"y_range"`

	// AutoY computes the Y range from the sampled curves instead of
	// using YRange.
	AutoY bool `yaml:"auto_y"`

	// StopAtXExit truncates each curve at its first exit from XRange
	// after having entered it.
	StopAtXExit bool `yaml:"stop_at_x_exit"`

	// StopAtYExit truncates each curve at its first exit from the Y
	// range after having entered it.
	StopAtYExit bool `yaml:"stop_at_y_exit"`

	// Grouping selects combined or per-curve plots. Empty means combined.
	Grouping Grouping `yaml:"grouping"`

	// Samples is the number of evaluation points per curve, clamped to
	// [2, 20000]. Zero means DefaultSamples.
	Samples int `yaml:"samples"`

	// Colorful toggles the color palette; false renders every curve in
	// the monochrome tone.
	Colorful bool `yaml:"colorful"`

	// Palette overrides DefaultPalette when non-empty.
	Palette []string `yaml:"palette,omitempty"`

	// LegendOverrides is the free-text label/color override block, one
	// entry per line or semicolon-separated.
	LegendOverrides string `yaml:"legend_overrides,omitempty"`

	// MaxMagnitude is the coefficient and Y-bound ceiling. Zero means
	// DefaultMaxMagnitude.
	MaxMagnitude float64 `yaml:"max_magnitude,omitempty"`

	// MaxCurves caps the batch size. Zero means DefaultMaxCurves.
	MaxCurves int `yaml:"max_curves,omitempty"`
}

// DefaultConfig returns the configuration used when fields are left at
// their zero values: x over [0, 100], auto-scaled Y, colorful combined
// plot, 200 samples.
func DefaultConfig() Config {
	return Config{
		XRange:       Range{Min: 0, Max: 100},
		YRange:       Range{Min: 0, Max: 2000},
		AutoY:        true,
		Grouping:     GroupCombined,
		Samples:      DefaultSamples,
		Colorful:     true,
		MaxMagnitude: DefaultMaxMagnitude,
		MaxCurves:    DefaultMaxCurves,
	}
}

// withDefaults fills zero fields and clamps Samples.
func (c Config) withDefaults() Config {
	if c.Grouping == "" {
		c.Grouping = GroupCombined
	}
	if c.Samples == 0 {
		c.Samples = DefaultSamples
	}
	if c.Samples < minSamples {
		c.Samples = minSamples
	}
	if c.Samples > maxSamples {
		c.Samples = maxSamples
	}
	if len(c.Palette) == 0 {
		c.Palette = DefaultPalette
	}
	if c.MaxMagnitude <= 0 {
		c.MaxMagnitude = DefaultMaxMagnitude
	}
	if c.MaxCurves <= 0 {
		c.MaxCurves = DefaultMaxCurves
	}
	return c
}
