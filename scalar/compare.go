package scalar

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncomparable is returned when two values have no defined order.
var ErrIncomparable = errors.New("values are not comparable")

// Compare returns -1, 0 or +1 ordering a before, equal to or after b.
//
// The missing marker sorts after everything else. Cross-kind comparisons
// other than Int/Float fail with ErrIncomparable.
func Compare(a, b Value) (int, error) {
	if a.IsMissing() || b.IsMissing() {
		switch {
		case a.IsMissing() && b.IsMissing():
			return 0, nil
		case a.IsMissing():
			return 1, nil
		default:
			return -1, nil
		}
	}

	if a.IsNumber() && b.IsNumber() {
		// Prefer exact int compare when possible.
		if a.Kind == KindInt && b.Kind == KindInt {
			return cmpOrdered(a.I64, b.I64), nil
		}
		x, _ := a.Num()
		y, _ := b.Num()
		return cmpOrdered(x, y), nil
	}

	if a.Kind != b.Kind {
		return 0, fmt.Errorf("%w: %s vs %s", ErrIncomparable, a.Kind, b.Kind)
	}

	switch a.Kind {
	case KindString:
		return strings.Compare(a.s.Value(), b.s.Value()), nil
	case KindBool:
		switch {
		case a.B == b.B:
			return 0, nil
		case !a.B:
			return -1, nil
		default:
			return 1, nil
		}
	default:
		return 0, fmt.Errorf("%w: %s", ErrIncomparable, a.Kind)
	}
}

// Comparable reports whether every pair of values has a defined order.
func Comparable(vals []Value) bool {
	var seen Kind = KindMissing
	for _, v := range vals {
		k := v.Kind
		if k == KindMissing {
			continue
		}
		if k == KindFloat {
			k = KindInt
		}
		if seen == KindMissing {
			seen = k
			continue
		}
		if k != seen {
			return false
		}
	}
	return true
}

func cmpOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
