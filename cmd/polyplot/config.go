package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/polyplot"
	"github.com/gogpu/polyplot/chart"
)

// settings is the full CLI configuration: the pipeline config plus
// chart styling and output controls, loadable from a YAML file.
type settings struct {
	Plot    polyplot.Config `yaml:"plot"`
	Chart   chartSettings   `yaml:"chart"`
	Output  string          `yaml:"output_dir"`
	Workers int             `yaml:"workers"`
}

// chartSettings mirrors chart.Options with YAML keys. Colorful is
// deliberately absent: the plot section owns it, so curve colors and
// chart styling cannot disagree.
type chartSettings struct {
	Title      string  `yaml:"title"`
	XLabel     string  `yaml:"x_label"`
	YLabel     string  `yaml:"y_label"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	DPI        int     `yaml:"dpi"`
	Background string  `yaml:"background"`
	LineWidth  float64 `yaml:"line_width"`
	ShowGrid   bool    `yaml:"show_grid"`
	GridColor  string  `yaml:"grid_color"`
	GridMajorX float64 `yaml:"grid_major_x"`
	GridMinorX float64 `yaml:"grid_minor_x"`
	GridMajorY float64 `yaml:"grid_major_y"`
	GridMinorY float64 `yaml:"grid_minor_y"`
	TickMajorX float64 `yaml:"tick_major_x"`
	TickMinorX float64 `yaml:"tick_minor_x"`
	TickMajorY float64 `yaml:"tick_major_y"`
	TickMinorY float64 `yaml:"tick_minor_y"`
	XAxisTop   bool    `yaml:"x_axis_top"`
	YAxisRight bool    `yaml:"y_axis_right"`
	InvertY    bool    `yaml:"invert_y"`
	LogLog     bool    `yaml:"log_log"`
	Frame      string  `yaml:"frame"`
	LegendLoc  string  `yaml:"legend_loc"`
}

func defaultSettings() settings {
	opts := chart.DefaultOptions()
	return settings{
		Plot: polyplot.DefaultConfig(),
		Chart: chartSettings{
			Title:     opts.Title,
			XLabel:    opts.XLabel,
			YLabel:    opts.YLabel,
			DPI:       opts.DPI,
			LineWidth: opts.LineWidth,
			ShowGrid:  opts.ShowGrid,
			InvertY:   opts.InvertY,
			Frame:     string(opts.Frame),
			LegendLoc: opts.LegendLoc,
		},
		Output:  ".",
		Workers: 1,
	}
}

// loadSettings reads a YAML settings file over the defaults, so a file
// only needs the keys it changes. A missing file is an error only when
// the path was given explicitly; the default path may be absent.
func loadSettings(path string, explicit bool) (settings, error) {
	cfg := defaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// options assembles the chart options for one run.
func (s settings) options() chart.Options {
	return chart.Options{
		Width:      s.Chart.Width,
		Height:     s.Chart.Height,
		DPI:        s.Chart.DPI,
		Title:      s.Chart.Title,
		XLabel:     s.Chart.XLabel,
		YLabel:     s.Chart.YLabel,
		Colorful:   s.Plot.Colorful,
		Background: s.Chart.Background,
		LineWidth:  s.Chart.LineWidth,
		ShowGrid:   s.Chart.ShowGrid,
		GridColor:  s.Chart.GridColor,
		GridMajorX: s.Chart.GridMajorX,
		GridMinorX: s.Chart.GridMinorX,
		GridMajorY: s.Chart.GridMajorY,
		GridMinorY: s.Chart.GridMinorY,
		TickMajorX: s.Chart.TickMajorX,
		TickMinorX: s.Chart.TickMinorX,
		TickMajorY: s.Chart.TickMajorY,
		TickMinorY: s.Chart.TickMinorY,
		XAxisTop:   s.Chart.XAxisTop,
		YAxisRight: s.Chart.YAxisRight,
		InvertY:    s.Chart.InvertY,
		LogLog:     s.Chart.LogLog,
		Frame:      chart.Frame(s.Chart.Frame),
		LegendLoc:  s.Chart.LegendLoc,
	}
}
