package index

import (
	"errors"
	"fmt"

	"github.com/hupe1980/labelframe/scalar"
)

var (
	// ErrKeyNotFound is returned when a label is absent.
	ErrKeyNotFound = errors.New("key not found")
	// ErrIndexOutOfRange is returned when a position is beyond the axis bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrLengthMismatch is returned when an index, mask or value sequence
	// disagrees with the length it must match.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrImmutableIndex is returned by any attempt to mutate a label in place.
	ErrImmutableIndex = errors.New("index does not support mutable operations")
	// ErrIncomparableLabels is returned when an operation needs an order the
	// labels do not have.
	ErrIncomparableLabels = errors.New("labels are not comparable")
	// ErrInvalidSelector is returned when a selector does not fit the accessor
	// (a position given to a label accessor, a zero slice step, ...).
	ErrInvalidSelector = errors.New("invalid selector")
	// ErrDuplicateLabels is returned when two different indexes containing
	// duplicate labels are aligned.
	ErrDuplicateLabels = errors.New("cannot align on duplicate labels")
)

// KeyError reports the absent label.
//
// It unwraps to ErrKeyNotFound.
type KeyError struct {
	Label scalar.Value
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key not found: %s", e.Label)
}

func (e *KeyError) Unwrap() error { return ErrKeyNotFound }

// RangeError reports a position outside [0, Length).
//
// It unwraps to ErrIndexOutOfRange.
type RangeError struct {
	Position int
	Length   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("index out of range: position %d, length %d", e.Position, e.Length)
}

func (e *RangeError) Unwrap() error { return ErrIndexOutOfRange }

// LengthError reports a length disagreement.
//
// It unwraps to ErrLengthMismatch.
type LengthError struct {
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *LengthError) Unwrap() error { return ErrLengthMismatch }
