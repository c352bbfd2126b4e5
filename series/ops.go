package series

import (
	"github.com/hupe1980/labelframe/align"
	"github.com/hupe1980/labelframe/scalar"
)

// Apply maps fn over every value. The index is unchanged.
func (s *Series) Apply(fn scalar.UnaryFunc) (*Series, error) {
	buf, err := s.svc.Apply(s.buf, fn)
	if err != nil {
		return nil, err
	}
	return &Series{name: s.name, index: s.index, buf: buf, svc: s.svc}, nil
}

// ScalarOp applies op with v as the right operand of every element.
func (s *Series) ScalarOp(v scalar.Value, op scalar.BinaryFunc) (*Series, error) {
	return s.Apply(scalar.Bind(op, v))
}

// BinaryOp aligns s and other on the union of their labels and applies op
// positionally. The result is keyed by the union index.
func (s *Series) BinaryOp(other *Series, op scalar.BinaryFunc, optFns ...align.Option) (*Series, error) {
	plan, err := align.Indexes(s.index, other.index)
	if err != nil {
		return nil, err
	}
	opts := append([]align.Option{align.WithService(s.svc)}, optFns...)
	buf, err := align.Combine(s.buf, plan.Left, other.buf, plan.Right, op, opts...)
	if err != nil {
		return nil, err
	}

	name := scalar.Missing()
	if s.name.Equal(other.name) {
		name = s.name
	}
	return &Series{name: name, index: plan.Union, buf: buf, svc: s.svc}, nil
}

// Add returns s + other.
func (s *Series) Add(other *Series, optFns ...align.Option) (*Series, error) {
	return s.BinaryOp(other, scalar.Add, optFns...)
}

// Sub returns s - other.
func (s *Series) Sub(other *Series, optFns ...align.Option) (*Series, error) {
	return s.BinaryOp(other, scalar.Sub, optFns...)
}

// Mul returns s * other.
func (s *Series) Mul(other *Series, optFns ...align.Option) (*Series, error) {
	return s.BinaryOp(other, scalar.Mul, optFns...)
}

// Div returns s / other.
func (s *Series) Div(other *Series, optFns ...align.Option) (*Series, error) {
	return s.BinaryOp(other, scalar.Div, optFns...)
}
