package align

import (
	"github.com/hupe1980/labelframe/array"
	"github.com/hupe1980/labelframe/scalar"
)

// Options configures a combine operation.
type Options struct {
	// Fill replaces the value on the missing side of a cell that is missing
	// on exactly one side. Nil leaves propagation to the operation.
	Fill *scalar.Value
	// Service is the array primitive doing the positional work.
	Service array.Service
	// Workers bounds how many columns a DataFrame operation computes
	// concurrently. Values below 2 mean sequential.
	Workers int
}

// Option configures Options.
type Option func(*Options)

// WithFill substitutes v for a missing operand.
func WithFill(v scalar.Value) Option {
	return func(o *Options) {
		o.Fill = &v
	}
}

// WithService sets the array service. Nil keeps array.Default.
func WithService(svc array.Service) Option {
	return func(o *Options) {
		if svc != nil {
			o.Service = svc
		}
	}
}

// WithWorkers sets the column fan-out for DataFrame operations.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// Apply resolves optFns over the defaults.
func Apply(optFns ...Option) Options {
	o := Options{
		Service: array.Default,
		Workers: 1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
