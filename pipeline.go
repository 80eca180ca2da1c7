package polyplot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/polyplot/internal/parallel"
)

// Plot is one renderable chart: a shared coordinate window plus the
// curves accepted into it.
type Plot struct {
	// Title identifies the plot: "All Curves" for a combined plot, the
	// curve name for per-curve plots.
	Title string

	XRange Range
	YRange Range

	Curves []PlotCurve
}

// PlotCurve is one accepted curve, ready to draw.
type PlotCurve struct {
	// Name is the curve's input name; Label is the resolved display
	// label (they differ when a legend override renamed the curve).
	Name  string
	Label string

	// Color is a "#rrggbb" string.
	Color string

	// Segments hold the drawable runs in X order. Gaps between segments
	// are genuine: the curve was invalid or out of range there.
	Segments []Segment
}

// Result is everything one batch produced: zero or more plots and the
// full diagnostic trail. Skipped is ordered by input curve, with batch
// level notes (Curve == "") interleaved where they occurred.
type Result struct {
	Plots   []Plot
	Skipped []SkipRecord
}

// Pipeline renders curve batches under one fixed configuration.
// A Pipeline is safe for concurrent use by multiple goroutines; it
// holds no per-batch state.
type Pipeline struct {
	cfg     Config
	legend  *LegendResolver
	workers int
	log     *slog.Logger
}

// New validates the configuration, fills unset fields from
// DefaultConfig, and builds a Pipeline.
//
// XRange must be a valid range. YRange must be valid too unless AutoY
// is set. An unknown Grouping is rejected.
func New(cfg Config, opts ...Option) (*Pipeline, error) {
	cfg = cfg.withDefaults()

	if err := cfg.XRange.Validate(); err != nil {
		return nil, fmt.Errorf("x range: %w", err)
	}
	if !cfg.AutoY {
		if err := cfg.YRange.Validate(); err != nil {
			return nil, fmt.Errorf("y range: %w", err)
		}
	}
	switch cfg.Grouping {
	case GroupCombined, GroupPerCurve:
	default:
		return nil, fmt.Errorf("polyplot: unknown grouping %q", cfg.Grouping)
	}

	p := &Pipeline{
		cfg:     cfg,
		workers: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.legend = NewLegendResolver(cfg.Colorful, cfg.Palette, cfg.LegendOverrides)
	return p, nil
}

// Config returns the pipeline's effective configuration, with all
// defaults filled in.
func (p *Pipeline) Config() Config {
	return p.cfg
}

func (p *Pipeline) logger() *slog.Logger {
	if p.log != nil {
		return p.log
	}
	return Logger()
}

// preparedCurve is a curve after coefficient normalization.
type preparedCurve struct {
	curve  Curve
	coeffs []float64
	ok     bool
}

// curveOutcome is the per-curve filtering result, written into an
// indexed slot so parallel evaluation keeps the input order.
type curveOutcome struct {
	segs   []Segment
	yr     Range
	recs   []SkipRecord
	reason SkipReason
	ok     bool
}

// Render evaluates and filters every curve in the batch and returns the
// plots plus the diagnostic trail.
//
// Render never fails because of a single bad curve: defective curves
// become SkipRecord entries and the rest of the batch still renders.
// Errors are reserved for structural problems: an empty batch returns
// ErrNoCurves (alongside a diagnostic record), an oversized batch
// returns ErrTooManyCurves. A batch where every curve was skipped is
// not an error; it returns zero plots and the full skip list.
func (p *Pipeline) Render(curves []Curve) (*Result, error) {
	if len(curves) == 0 {
		res := &Result{Skipped: []SkipRecord{{
			Reason: SkipEmptyInput,
			Detail: "batch contains no curves",
		}}}
		return res, ErrNoCurves
	}
	if len(curves) > p.cfg.MaxCurves {
		return nil, fmt.Errorf("%w: %d curves, limit %d", ErrTooManyCurves, len(curves), p.cfg.MaxCurves)
	}

	res := &Result{}
	prep := make([]preparedCurve, len(curves))
	for i, c := range curves {
		coeffs, notes, ok := normalizeCoeffs(c.Name, c.Coeffs, p.cfg.MaxMagnitude)
		res.Skipped = append(res.Skipped, notes...)
		prep[i] = preparedCurve{curve: c, coeffs: coeffs, ok: ok}
	}

	switch p.cfg.Grouping {
	case GroupPerCurve:
		p.renderPerCurve(prep, res)
	default:
		p.renderCombined(prep, res)
	}

	accepted := 0
	for _, plot := range res.Plots {
		accepted += len(plot.Curves)
	}
	log := p.logger()
	log.Info("batch rendered",
		"curves", len(curves),
		"accepted", accepted,
		"skipped", len(res.Skipped),
		"plots", len(res.Plots),
		"grouping", string(p.cfg.Grouping))
	if log.Enabled(context.Background(), slog.LevelDebug) {
		for _, rec := range res.Skipped {
			log.Debug("curve diagnostic", "record", rec.String())
		}
	}
	return res, nil
}

// renderCombined shares one Y range across the whole batch. With auto
// scaling, the range is fully resolved before any curve's final
// filtering starts.
func (p *Pipeline) renderCombined(prep []preparedCurve, res *Result) {
	yr := p.cfg.YRange
	if p.cfg.AutoY {
		var sets [][]float64
		for _, pc := range prep {
			if pc.ok {
				sets = append(sets, pc.coeffs)
			}
		}
		var recs []SkipRecord
		yr, recs = resolveYRange(sets, p.cfg.XRange,
			p.cfg.StopAtXExit, p.cfg.StopAtYExit, p.cfg.MaxMagnitude, p.logger())
		res.Skipped = append(res.Skipped, recs...)
	}

	xs := Linspace(p.cfg.XRange.Min, p.cfg.XRange.Max, p.cfg.Samples)
	slots := make([]curveOutcome, len(prep))
	p.forEachPrepared(prep, func(i int, pc preparedCurve) {
		ys := Evaluate(pc.coeffs, xs)
		segs, reason, ok := FilterPoints(xs, ys, p.cfg.XRange, &yr,
			p.cfg.StopAtXExit, p.cfg.StopAtYExit)
		slots[i] = curveOutcome{segs: segs, reason: reason, ok: ok}
	})

	plot := Plot{Title: "All Curves", XRange: p.cfg.XRange, YRange: yr}
	for i, pc := range prep {
		if !pc.ok {
			continue
		}
		out := slots[i]
		if !out.ok {
			res.Skipped = append(res.Skipped, SkipRecord{
				Curve:  pc.curve.Name,
				Reason: out.reason,
				Detail: skipDetail(out.reason),
			})
			continue
		}
		label, color := p.legend.Resolve(pc.curve.Name, i)
		plot.Curves = append(plot.Curves, PlotCurve{
			Name:     pc.curve.Name,
			Label:    label,
			Color:    color,
			Segments: out.segs,
		})
	}
	if len(plot.Curves) > 0 {
		res.Plots = append(res.Plots, plot)
	}
}

// renderPerCurve gives every curve its own plot and, with auto scaling,
// its own independent Y range.
func (p *Pipeline) renderPerCurve(prep []preparedCurve, res *Result) {
	xs := Linspace(p.cfg.XRange.Min, p.cfg.XRange.Max, p.cfg.Samples)
	slots := make([]curveOutcome, len(prep))
	p.forEachPrepared(prep, func(i int, pc preparedCurve) {
		yr := p.cfg.YRange
		var recs []SkipRecord
		if p.cfg.AutoY {
			yr, recs = resolveYRange([][]float64{pc.coeffs}, p.cfg.XRange,
				p.cfg.StopAtXExit, p.cfg.StopAtYExit, p.cfg.MaxMagnitude, p.logger())
			for j := range recs {
				recs[j].Curve = pc.curve.Name
			}
		}
		ys := Evaluate(pc.coeffs, xs)
		segs, reason, ok := FilterPoints(xs, ys, p.cfg.XRange, &yr,
			p.cfg.StopAtXExit, p.cfg.StopAtYExit)
		slots[i] = curveOutcome{segs: segs, yr: yr, recs: recs, reason: reason, ok: ok}
	})

	for i, pc := range prep {
		if !pc.ok {
			continue
		}
		out := slots[i]
		res.Skipped = append(res.Skipped, out.recs...)
		if !out.ok {
			res.Skipped = append(res.Skipped, SkipRecord{
				Curve:  pc.curve.Name,
				Reason: out.reason,
				Detail: skipDetail(out.reason),
			})
			continue
		}
		label, color := p.legend.Resolve(pc.curve.Name, i)
		res.Plots = append(res.Plots, Plot{
			Title:  pc.curve.Name,
			XRange: p.cfg.XRange,
			YRange: out.yr,
			Curves: []PlotCurve{{
				Name:     pc.curve.Name,
				Label:    label,
				Color:    color,
				Segments: out.segs,
			}},
		})
	}
}

// forEachPrepared runs fn over the normalized curves, on a worker pool
// when the pipeline was built with WithWorkers(n > 1). fn writes only
// to its own index, so no locking is needed regardless.
func (p *Pipeline) forEachPrepared(prep []preparedCurve, fn func(i int, pc preparedCurve)) {
	var jobs []func()
	for i, pc := range prep {
		if !pc.ok {
			continue
		}
		jobs = append(jobs, func() { fn(i, pc) })
	}
	if p.workers > 1 && len(jobs) > 1 {
		pool := parallel.NewWorkerPool(p.workers)
		defer pool.Close()
		pool.ExecuteAll(jobs)
		return
	}
	for _, job := range jobs {
		job()
	}
}

// skipDetail spells out the human-readable half of a filter skip.
func skipDetail(reason SkipReason) string {
	switch reason {
	case SkipNoFiniteOutput:
		return "all sampled values are non-finite"
	case SkipNeverEnteredBounds:
		return "no samples inside the plot ranges"
	case SkipInsufficientPoints:
		return "no run of at least 2 drawable points"
	default:
		return ""
	}
}
