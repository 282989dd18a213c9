package pipeline

import (
	"github.com/kbukum/lazycollect/logger"
	"github.com/kbukum/lazycollect/sequence"
	"github.com/kbukum/lazycollect/telemetry"
)

type options struct {
	concurrency int
	searchBatch int
	log         *logger.Logger
	instruments *telemetry.Instruments
}

func defaultOptions() options {
	return options{searchBatch: 1, log: logger.Nop()}
}

// Option configures a Pipeline. Options are inherited by every pipeline
// derived from it.
type Option func(*options)

// WithConcurrency bounds how many callbacks a parallel operation runs at
// once. Zero means unbounded.
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = max(n, 0) }
}

// WithSearchBatch sets the batch width of short-circuiting searches.
func WithSearchBatch(n int) Option {
	return func(o *options) { o.searchBatch = max(n, 1) }
}

// WithLogger sets the logger drains report to.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = logger.Nop()
		}
		o.log = l.WithComponent("pipeline")
	}
}

// WithInstruments sets the telemetry instruments drains record into.
func WithInstruments(inst *telemetry.Instruments) Option {
	return func(o *options) { o.instruments = inst }
}

func (o options) engineOptions() []sequence.Option {
	return []sequence.Option{
		sequence.WithConcurrency(o.concurrency),
		sequence.WithSearchBatch(o.searchBatch),
	}
}
