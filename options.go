package labelframe

import (
	"log/slog"

	"github.com/hupe1980/labelframe/array"
	"github.com/hupe1980/labelframe/codec"
)

type options struct {
	codec            codec.Codec
	metricsCollector MetricsCollector
	logger           *Logger
	service          array.Service
	workers          int
}

// Option configures an Engine.
type Option func(*options)

// WithCodec configures the codec used by Encode and DecodeRecords.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &labelframe.BasicMetricsCollector{}
//	eng := labelframe.New(labelframe.WithMetricsCollector(metrics))
//	// ... perform operations ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example:
//
//	logger := labelframe.NewJSONLogger(slog.LevelDebug)
//	eng := labelframe.New(labelframe.WithLogger(logger))
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithLogLevel installs a text logger at the given level.
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithArrayService sets the array service every series and frame built by
// the engine computes with. Nil keeps array.Default.
func WithArrayService(svc array.Service) Option {
	return func(o *options) {
		if svc != nil {
			o.service = svc
		}
	}
}

// WithWorkers bounds how many columns frame operations compute concurrently.
// Values below 2 mean sequential evaluation.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		service:          array.Default,
		workers:          1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
