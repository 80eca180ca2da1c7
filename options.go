package polyplot

import "log/slog"

// Option configures a Pipeline during creation.
//
// Example:
//
//	// Default single-threaded pipeline
//	p, err := polyplot.New(cfg)
//
//	// Evaluate curves on four workers
//	p, err := polyplot.New(cfg, polyplot.WithWorkers(4))
type Option func(*Pipeline)

// WithWorkers sets how many goroutines evaluate curves concurrently.
// Values below 2 keep the pipeline single-threaded. Results are
// identical either way; curve order never depends on scheduling.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n < 1 {
			n = 1
		}
		p.workers = n
	}
}

// WithLogger gives the pipeline its own logger instead of the
// package-level one configured by SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		p.log = l
	}
}
