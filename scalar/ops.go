package scalar

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupportedOperand is returned when a kernel is applied to values it
// has no definition for (for example subtracting strings).
var ErrUnsupportedOperand = errors.New("unsupported operand")

// OperandError describes the kinds an operation was applied to.
//
// It unwraps to ErrUnsupportedOperand.
type OperandError struct {
	Op    string
	Left  Kind
	Right Kind
	Unary bool
}

func (e *OperandError) Error() string {
	if e.Unary {
		return fmt.Sprintf("unsupported operand for %s: %s", e.Op, e.Left)
	}
	return fmt.Sprintf("unsupported operands for %s: %s and %s", e.Op, e.Left, e.Right)
}

func (e *OperandError) Unwrap() error { return ErrUnsupportedOperand }

// UnaryFunc is an elementwise kernel of one argument.
type UnaryFunc func(Value) (Value, error)

// BinaryFunc is an elementwise kernel of two arguments.
type BinaryFunc func(a, b Value) (Value, error)

// Predicate tests a single value.
type Predicate func(Value) bool

// Add adds numbers and concatenates strings.
func Add(a, b Value) (Value, error) {
	if a.IsMissing() || b.IsMissing() {
		return Missing(), nil
	}
	if a.Kind == KindString && b.Kind == KindString {
		return String(a.s.Value() + b.s.Value()), nil
	}
	return arith("add", a, b,
		func(x, y int64) int64 { return x + y },
		func(x, y float64) float64 { return x + y })
}

// Sub subtracts b from a.
func Sub(a, b Value) (Value, error) {
	if a.IsMissing() || b.IsMissing() {
		return Missing(), nil
	}
	return arith("sub", a, b,
		func(x, y int64) int64 { return x - y },
		func(x, y float64) float64 { return x - y })
}

// Mul multiplies a by b.
func Mul(a, b Value) (Value, error) {
	if a.IsMissing() || b.IsMissing() {
		return Missing(), nil
	}
	return arith("mul", a, b,
		func(x, y int64) int64 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// Div is true division: the result is always a Float. Division by zero
// follows IEEE 754 (±Inf or NaN).
func Div(a, b Value) (Value, error) {
	if a.IsMissing() || b.IsMissing() {
		return Missing(), nil
	}
	x, okA := a.Num()
	y, okB := b.Num()
	if !okA || !okB {
		return Missing(), &OperandError{Op: "div", Left: a.Kind, Right: b.Kind}
	}
	return Float(x / y), nil
}

func arith(op string, a, b Value, fi func(int64, int64) int64, ff func(float64, float64) float64) (Value, error) {
	if a.Kind == KindInt && b.Kind == KindInt {
		return Int(fi(a.I64, b.I64)), nil
	}
	x, okA := a.Num()
	y, okB := b.Num()
	if !okA || !okB {
		return Missing(), &OperandError{Op: op, Left: a.Kind, Right: b.Kind}
	}
	return Float(ff(x, y)), nil
}

// SkipMissing wraps a reduction kernel so that missing inputs leave the
// accumulator unchanged. An accumulator that is still missing adopts the
// first present input.
func SkipMissing(fn BinaryFunc) BinaryFunc {
	return func(acc, v Value) (Value, error) {
		if v.IsMissing() {
			return acc, nil
		}
		if acc.IsMissing() {
			return v, nil
		}
		return fn(acc, v)
	}
}

// Math lifts a float function into a UnaryFunc. The result is always a
// Float; the missing marker propagates.
func Math(name string, fn func(float64) float64) UnaryFunc {
	return func(v Value) (Value, error) {
		if v.IsMissing() {
			return Missing(), nil
		}
		x, ok := v.Num()
		if !ok {
			return Missing(), &OperandError{Op: name, Left: v.Kind, Unary: true}
		}
		return Float(fn(x)), nil
	}
}

// Elementwise math kernels.
var (
	Exp  = Math("exp", math.Exp)
	Log  = Math("log", math.Log)
	Sqrt = Math("sqrt", math.Sqrt)
	Sin  = Math("sin", math.Sin)
	Cos  = Math("cos", math.Cos)
)

// Neg negates a number, keeping its kind.
func Neg(v Value) (Value, error) {
	switch v.Kind {
	case KindMissing:
		return Missing(), nil
	case KindInt:
		return Int(-v.I64), nil
	case KindFloat:
		return Float(-v.F64), nil
	default:
		return Missing(), &OperandError{Op: "neg", Left: v.Kind, Unary: true}
	}
}

// Abs returns the absolute value of a number, keeping its kind.
func Abs(v Value) (Value, error) {
	switch v.Kind {
	case KindMissing:
		return Missing(), nil
	case KindInt:
		if v.I64 < 0 {
			return Int(-v.I64), nil
		}
		return v, nil
	case KindFloat:
		return Float(math.Abs(v.F64)), nil
	default:
		return Missing(), &OperandError{Op: "abs", Left: v.Kind, Unary: true}
	}
}

// Bind fixes the right operand of a BinaryFunc, yielding a UnaryFunc.
func Bind(op BinaryFunc, rhs Value) UnaryFunc {
	return func(v Value) (Value, error) { return op(v, rhs) }
}

// Gt returns a predicate matching values strictly greater than x.
func Gt(x Value) Predicate { return cmpPredicate(x, func(c int) bool { return c > 0 }) }

// Ge returns a predicate matching values greater than or equal to x.
func Ge(x Value) Predicate { return cmpPredicate(x, func(c int) bool { return c >= 0 }) }

// Lt returns a predicate matching values strictly less than x.
func Lt(x Value) Predicate { return cmpPredicate(x, func(c int) bool { return c < 0 }) }

// Le returns a predicate matching values less than or equal to x.
func Le(x Value) Predicate { return cmpPredicate(x, func(c int) bool { return c <= 0 }) }

// Eq returns a predicate matching values equal to x.
func Eq(x Value) Predicate {
	return func(v Value) bool { return !v.IsMissing() && v.Equal(x) }
}

// And combines predicates with logical AND.
func And(ps ...Predicate) Predicate {
	return func(v Value) bool {
		for _, p := range ps {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// cmpPredicate never matches the missing marker or incomparable values.
func cmpPredicate(x Value, ok func(int) bool) Predicate {
	return func(v Value) bool {
		if v.IsMissing() || x.IsMissing() {
			return false
		}
		c, err := Compare(v, x)
		if err != nil {
			return false
		}
		return ok(c)
	}
}
