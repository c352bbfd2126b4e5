package array

import (
	"errors"
	"fmt"

	"github.com/hupe1980/labelframe/scalar"
)

// ErrShapeMismatch is returned when two buffers combined positionally have
// different lengths.
var ErrShapeMismatch = errors.New("buffer shape mismatch")

// Buffer is a fixed-dtype sequence of values.
//
// Buffers are immutable values: every Service operation returns a new
// Buffer and never aliases the input slice.
type Buffer struct {
	dtype  scalar.DType
	values []scalar.Value
}

// NewBuffer wraps a copy of values with the given dtype. Values are coerced
// to the dtype but the dtype itself is trusted.
func NewBuffer(dtype scalar.DType, values []scalar.Value) Buffer {
	out := make([]scalar.Value, len(values))
	for i, v := range values {
		out[i] = scalar.Coerce(v, dtype)
	}
	return Buffer{dtype: dtype, values: out}
}

// Len returns the logical length.
func (b Buffer) Len() int { return len(b.values) }

// DType returns the buffer's element type.
func (b Buffer) DType() scalar.DType { return b.dtype }

// At returns the value at position i. It panics if i is out of range.
func (b Buffer) At(i int) scalar.Value { return b.values[i] }

// Values returns a copy of the buffer contents.
func (b Buffer) Values() []scalar.Value {
	out := make([]scalar.Value, len(b.values))
	copy(out, b.values)
	return out
}

// CountMissing returns the number of missing markers.
func (b Buffer) CountMissing() int {
	n := 0
	for _, v := range b.values {
		if v.IsMissing() {
			n++
		}
	}
	return n
}

// Service is the dense array primitive.
//
// Implementations must be safe for concurrent use.
type Service interface {
	// Allocate returns a buffer of length n filled with the missing marker.
	// A dtype that cannot hold the marker is widened (see scalar.InferDType).
	Allocate(n int, dtype scalar.DType) Buffer
	// FromValues copies values into a buffer of the inferred dtype.
	FromValues(values []scalar.Value) Buffer
	// Apply maps fn over every element.
	Apply(b Buffer, fn scalar.UnaryFunc) (Buffer, error)
	// Combine applies fn positionally over two buffers of equal length.
	Combine(a, b Buffer, fn scalar.BinaryFunc) (Buffer, error)
	// Reduce folds fn over the buffer starting from init.
	Reduce(b Buffer, fn scalar.BinaryFunc, init scalar.Value) (scalar.Value, error)
	// InferDType returns the dtype a buffer holding values must have.
	InferDType(values []scalar.Value) scalar.DType
}

// Dense is the default Service over Go slices.
type Dense struct{}

// Default is the Service used when none is configured.
var Default Service = Dense{}

// Allocate implements Service.
func (Dense) Allocate(n int, dtype scalar.DType) Buffer {
	switch dtype {
	case scalar.DTypeInt64:
		dtype = scalar.DTypeFloat64
	case scalar.DTypeBool:
		dtype = scalar.DTypeObject
	}
	return Buffer{dtype: dtype, values: make([]scalar.Value, n)}
}

// FromValues implements Service.
func (d Dense) FromValues(values []scalar.Value) Buffer {
	return NewBuffer(d.InferDType(values), values)
}

// Apply implements Service.
func (d Dense) Apply(b Buffer, fn scalar.UnaryFunc) (Buffer, error) {
	out := make([]scalar.Value, len(b.values))
	for i, v := range b.values {
		r, err := fn(v)
		if err != nil {
			return Buffer{}, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = r
	}
	return d.FromValues(out), nil
}

// Combine implements Service.
func (d Dense) Combine(a, b Buffer, fn scalar.BinaryFunc) (Buffer, error) {
	if len(a.values) != len(b.values) {
		return Buffer{}, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, len(a.values), len(b.values))
	}
	out := make([]scalar.Value, len(a.values))
	for i := range a.values {
		r, err := fn(a.values[i], b.values[i])
		if err != nil {
			return Buffer{}, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = r
	}
	return d.FromValues(out), nil
}

// Reduce implements Service.
func (Dense) Reduce(b Buffer, fn scalar.BinaryFunc, init scalar.Value) (scalar.Value, error) {
	acc := init
	for i, v := range b.values {
		var err error
		acc, err = fn(acc, v)
		if err != nil {
			return scalar.Missing(), fmt.Errorf("element %d: %w", i, err)
		}
	}
	return acc, nil
}

// InferDType implements Service.
func (Dense) InferDType(values []scalar.Value) scalar.DType {
	return scalar.InferDType(values)
}
