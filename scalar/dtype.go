package scalar

// DType is the logical element type of a buffer.
type DType uint8

const (
	// DTypeFloat64 holds floats and the missing marker. It is the widening target
	// for integer data that gains a missing marker.
	DTypeFloat64 DType = iota
	// DTypeInt64 holds integers only.
	DTypeInt64
	// DTypeString holds strings and the missing marker.
	DTypeString
	// DTypeBool holds booleans only.
	DTypeBool
	// DTypeObject holds any mixture of kinds.
	DTypeObject
)

// String returns the dtype name.
func (d DType) String() string {
	switch d {
	case DTypeFloat64:
		return "float64"
	case DTypeInt64:
		return "int64"
	case DTypeString:
		return "string"
	case DTypeBool:
		return "bool"
	case DTypeObject:
		return "object"
	default:
		return "invalid"
	}
}

// InferDType returns the narrowest dtype able to hold vals.
//
// Widening table:
//
//	no values, or only missing        -> DTypeFloat64
//	Int only                          -> DTypeInt64
//	Int/Float mix, or Int + missing   -> DTypeFloat64
//	Float (+ missing)                 -> DTypeFloat64
//	String (+ missing)                -> DTypeString
//	Bool only                         -> DTypeBool
//	anything else                     -> DTypeObject
func InferDType(vals []Value) DType {
	var ints, floats, strs, bools, missing int
	for _, v := range vals {
		switch v.Kind {
		case KindInt:
			ints++
		case KindFloat:
			floats++
		case KindString:
			strs++
		case KindBool:
			bools++
		default:
			missing++
		}
	}
	switch {
	case ints+floats+strs+bools == 0:
		return DTypeFloat64
	case strs == 0 && bools == 0:
		if floats == 0 && missing == 0 {
			return DTypeInt64
		}
		return DTypeFloat64
	case strs > 0 && ints+floats+bools == 0:
		return DTypeString
	case bools > 0 && ints+floats+strs+missing == 0:
		return DTypeBool
	default:
		return DTypeObject
	}
}

// Coerce converts v to the representation used by a buffer of dtype d.
// Only DTypeFloat64 buffers rewrite values: their Ints become Floats.
func Coerce(v Value, d DType) Value {
	if d == DTypeFloat64 && v.Kind == KindInt {
		return Float(float64(v.I64))
	}
	return v
}
