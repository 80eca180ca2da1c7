// Command polyplot renders polynomial curve charts from an Excel
// workbook of coefficients.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/polyplot"
	"github.com/gogpu/polyplot/chart"
	"github.com/gogpu/polyplot/refdata"
)

// defaultConfigPath is consulted when --config is not given; it may be
// absent.
const defaultConfigPath = "polyplot.yaml"

var (
	flagConfig   string
	flagOutput   string
	flagGrouping string
	flagXMin     float64
	flagXMax     float64
	flagYMin     float64
	flagYMax     float64
	flagAutoY    bool
	flagStopX    bool
	flagStopY    bool
	flagMono     bool
	flagColors   int
	flagLegend   string
	flagSamples  int
	flagWorkers  int
	flagTitle    string
	flagXLabel   string
	flagYLabel   string
	flagVerbose  bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "polyplot [input.xlsx]",
		Short: "Render polynomial curve charts from an Excel workbook",
		Long: `polyplot reads polynomial curves from an Excel workbook (one curve per
row: name in column A, coefficients highest degree first from column B)
and renders them as PNG charts.

Without an input file it renders the two built-in sample curves. A
defective row or curve never aborts the run: it is reported on stderr
and the rest of the batch still renders.

Settings come from a YAML file (see --config) with flags layered on
top; flags win where both are given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "YAML settings file (default: polyplot.yaml if present)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output directory for PNG files (default: current directory)")
	rootCmd.Flags().StringVar(&flagGrouping, "grouping", "all", "Plot grouping: all or per-curve")
	rootCmd.Flags().Float64Var(&flagXMin, "x-min", 0, "Lower X bound")
	rootCmd.Flags().Float64Var(&flagXMax, "x-max", 100, "Upper X bound")
	rootCmd.Flags().Float64Var(&flagYMin, "y-min", 0, "Lower Y bound (implies fixed Y range)")
	rootCmd.Flags().Float64Var(&flagYMax, "y-max", 2000, "Upper Y bound (implies fixed Y range)")
	rootCmd.Flags().BoolVar(&flagAutoY, "auto-y", true, "Resolve the Y range from the curves")
	rootCmd.Flags().BoolVar(&flagStopX, "stop-x-exit", false, "Truncate each curve at its first exit from the X range")
	rootCmd.Flags().BoolVar(&flagStopY, "stop-y-exit", false, "Truncate each curve at its first exit from the Y range")
	rootCmd.Flags().BoolVar(&flagMono, "mono", false, "Monochrome rendering with end-of-curve labels")
	rootCmd.Flags().IntVar(&flagColors, "colors", 0, "Use only the first N palette colors")
	rootCmd.Flags().StringVar(&flagLegend, "legend", "", "Legend overrides, one 'label' or 'label: #hex' per entry, ';' separated")
	rootCmd.Flags().IntVar(&flagSamples, "samples", polyplot.DefaultSamples, "Evaluation points per curve")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 1, "Goroutines evaluating curves concurrently")
	rootCmd.Flags().StringVar(&flagTitle, "title", "", "Chart title")
	rootCmd.Flags().StringVar(&flagXLabel, "x-label", "", "X axis label")
	rootCmd.Flags().StringVar(&flagYLabel, "y-label", "", "Y axis label")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging to stderr")

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		polyplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	configPath := flagConfig
	if configPath == "" {
		configPath = defaultConfigPath
	}
	cfg, err := loadSettings(configPath, flagConfig != "")
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}

	curves, loadNotes, err := loadCurves(args)
	if err != nil {
		return err
	}
	for _, note := range loadNotes {
		fmt.Fprintf(os.Stderr, "input: %s\n", note)
	}

	p, err := polyplot.New(cfg.Plot, polyplot.WithWorkers(cfg.Workers))
	if err != nil {
		return err
	}

	res, err := p.Render(curves)
	if res != nil {
		for _, rec := range res.Skipped {
			fmt.Fprintf(os.Stderr, "render: %s\n", rec)
		}
	}
	if err != nil {
		return err
	}

	if err := writePlots(res.Plots, cfg); err != nil {
		return err
	}

	fmt.Printf("rendered %d plot(s) from %d curve(s), %d diagnostic(s)\n",
		len(res.Plots), len(curves), len(loadNotes)+len(res.Skipped))
	return nil
}

// applyFlags lays explicitly set flags over the file settings.
func applyFlags(cmd *cobra.Command, cfg *settings) error {
	f := cmd.Flags()

	if f.Changed("grouping") {
		switch flagGrouping {
		case "all", "combined":
			cfg.Plot.Grouping = polyplot.GroupCombined
		case "per-curve":
			cfg.Plot.Grouping = polyplot.GroupPerCurve
		default:
			return fmt.Errorf("invalid grouping %q (must be all or per-curve)", flagGrouping)
		}
	}
	if f.Changed("x-min") {
		cfg.Plot.XRange.Min = flagXMin
	}
	if f.Changed("x-max") {
		cfg.Plot.XRange.Max = flagXMax
	}
	if f.Changed("y-min") {
		cfg.Plot.YRange.Min = flagYMin
	}
	if f.Changed("y-max") {
		cfg.Plot.YRange.Max = flagYMax
	}
	// Fixing either Y bound turns auto-scaling off; an explicit --auto-y
	// wins over that, checked after.
	if f.Changed("y-min") || f.Changed("y-max") {
		cfg.Plot.AutoY = false
	}
	if f.Changed("auto-y") {
		cfg.Plot.AutoY = flagAutoY
	}
	if f.Changed("stop-x-exit") {
		cfg.Plot.StopAtXExit = flagStopX
	}
	if f.Changed("stop-y-exit") {
		cfg.Plot.StopAtYExit = flagStopY
	}
	if f.Changed("mono") {
		cfg.Plot.Colorful = !flagMono
	}
	if f.Changed("colors") {
		if flagColors < 1 || flagColors > len(polyplot.DefaultPalette) {
			return fmt.Errorf("invalid colors %d (must be 1..%d)", flagColors, len(polyplot.DefaultPalette))
		}
		cfg.Plot.Palette = polyplot.DefaultPalette[:flagColors]
	}
	if f.Changed("legend") {
		cfg.Plot.LegendOverrides = flagLegend
	}
	if f.Changed("samples") {
		cfg.Plot.Samples = flagSamples
	}
	if f.Changed("workers") {
		cfg.Workers = flagWorkers
	}
	if f.Changed("output") {
		cfg.Output = flagOutput
	}
	if f.Changed("title") {
		cfg.Chart.Title = flagTitle
	}
	if f.Changed("x-label") {
		cfg.Chart.XLabel = flagXLabel
	}
	if f.Changed("y-label") {
		cfg.Chart.YLabel = flagYLabel
	}
	return nil
}

// loadCurves reads the workbook when one was given, or falls back to
// the built-in sample curves.
func loadCurves(args []string) ([]polyplot.Curve, []refdata.SkipRow, error) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "no input file, rendering sample curves")
		return refdata.SampleCurves(), nil, nil
	}
	return refdata.Load(args[0])
}

// writePlots renders one PNG per plot into the output directory:
// all_curves.png for a combined plot, curve_<name>.png per curve
// otherwise.
func writePlots(plots []polyplot.Plot, cfg settings) error {
	if len(plots) == 0 {
		fmt.Fprintln(os.Stderr, "no curves were accepted, nothing to render")
		return nil
	}
	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	base := cfg.options()
	for i, plot := range plots {
		opts := base
		var name string
		if cfg.Plot.Grouping == polyplot.GroupPerCurve {
			opts.Title = fmt.Sprintf("%s - %s", base.Title, plot.Title)
			name = chart.SafeFileName(plot.Title)
			if name == "" {
				name = fmt.Sprintf("%d", i+1)
			}
			name = "curve_" + name
		} else {
			name = "all_curves"
		}

		path := filepath.Join(cfg.Output, name+".png")
		if err := chart.SavePNG(plot, opts, path); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Println("wrote", path)
	}
	return nil
}
