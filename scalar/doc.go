// Package scalar provides the tagged scalar type shared by labels and cell
// values, the dtype widening table and the elementwise kernels.
//
// A Value is one of:
//
//   - Missing: the missing-value marker (the zero Value)
//   - Int: scalar.Int(42)
//   - Float: scalar.Float(0.25)
//   - String: scalar.String("a")
//   - Bool: scalar.Bool(true)
//
// # Ordering
//
// Numbers compare numerically across Int and Float, strings lexically and
// booleans false before true. The missing marker sorts after every other
// value. Comparing a number to a string (or any other cross-kind pair) fails
// with ErrIncomparable instead of guessing an order.
//
// # DTypes
//
// InferDType maps a set of values to the dtype a buffer holding them must
// have. Introducing a missing marker into integer data widens it to DTypeFloat64:
//
//	scalar.InferDType([]scalar.Value{scalar.Int(1), scalar.Missing()}) // DTypeFloat64
//
// # Kernels
//
// Add, Sub, Mul and Div are BinaryFuncs; Exp, Sin, Neg and friends are
// UnaryFuncs. Every built-in kernel propagates the missing marker.
package scalar
