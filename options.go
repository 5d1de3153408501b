package axisscale

import "log/slog"

// DefaultTolerance is the relative length below which a projected span or
// axis edge counts as collapsed. An axis edge is measured against its own
// normalized length and the spans against the box diagonal, so thin boxes
// are only rejected when the view really flattens them.
const DefaultTolerance = 1e-9

// Option configures a single Compute call.
//
// Example:
//
//	res, err := axisscale.Compute(in, axisscale.WithTolerance(1e-6))
type Option func(*options)

// options holds optional configuration for Compute.
type options struct {
	tolerance float64
	logger    *slog.Logger
	workers   int
}

// defaultOptions returns the default compute options.
func defaultOptions() options {
	return options{
		tolerance: DefaultTolerance,
		logger:    nil, // falls back to Logger()
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return o
}

// WithTolerance sets the relative degeneracy tolerance.
// Negative or non-finite values are ignored. Zero only rejects exact zeros.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol >= 0 && isFinite(tol) {
			o.tolerance = tol
		}
	}
}

// WithLogger overrides the package logger for one call.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithWorkers sets the number of goroutines ComputeAll uses.
// Zero or negative means GOMAXPROCS. Compute ignores it.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
