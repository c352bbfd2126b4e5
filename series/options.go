package series

import (
	"github.com/hupe1980/labelframe/array"
	"github.com/hupe1980/labelframe/index"
	"github.com/hupe1980/labelframe/scalar"
)

type options struct {
	index   *index.Index
	name    scalar.Value
	service array.Service
}

// Option configures Series construction.
type Option func(*options)

// WithIndex sets the labels. Its length must match the values.
func WithIndex(ix *index.Index) Option {
	return func(o *options) {
		o.index = ix
	}
}

// WithName names the series.
func WithName(name scalar.Value) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithService sets the array service. Nil keeps array.Default.
func WithService(svc array.Service) Option {
	return func(o *options) {
		if svc != nil {
			o.service = svc
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		service: array.Default,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
