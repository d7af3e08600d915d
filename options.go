package cache

import (
	"time"

	"github.com/krisalay/mind-reader/types"
	"github.com/rs/zerolog"
)

type options struct {
	metrics types.Metrics
	logger  zerolog.Logger
	now     func() time.Time
}

// Option customises an ExpiringCache at construction.
type Option func(*options)

// WithMetrics reports cache events to m.
func WithMetrics(m types.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithLogger sends debug events to l. The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{
		metrics: types.NoopMetrics{},
		logger:  zerolog.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
