package frame

import (
	"github.com/hupe1980/labelframe/array"
	"github.com/hupe1980/labelframe/index"
)

type options struct {
	rowIndex *index.Index
	colIndex *index.Index
	service  array.Service
}

// Option configures DataFrame construction.
type Option func(*options)

// WithRowIndex sets the row labels. Labeled columns are reindexed onto it
// and raw columns must match its length.
func WithRowIndex(ix *index.Index) Option {
	return func(o *options) {
		o.rowIndex = ix
	}
}

// WithColumnIndex selects and orders the columns. Labels without a source
// column become all-missing columns. For FromMatrix it names the columns.
func WithColumnIndex(ix *index.Index) Option {
	return func(o *options) {
		o.colIndex = ix
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
