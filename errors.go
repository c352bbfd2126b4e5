package labelframe

import (
	"errors"
	"fmt"

	"github.com/hupe1980/labelframe/index"
	"github.com/hupe1980/labelframe/scalar"
)

var (
	// ErrKeyNotFound is returned when a label is absent from an index.
	ErrKeyNotFound = index.ErrKeyNotFound
	// ErrIndexOutOfRange is returned for positions outside [-n, n).
	ErrIndexOutOfRange = index.ErrIndexOutOfRange
	// ErrLengthMismatch is returned when lengths or shapes disagree.
	ErrLengthMismatch = index.ErrLengthMismatch
	// ErrImmutableIndex is returned when a label of an index is written.
	ErrImmutableIndex = index.ErrImmutableIndex
	// ErrIncomparableLabels is returned when labels cannot be ordered.
	ErrIncomparableLabels = index.ErrIncomparableLabels
	// ErrInvalidSelector is returned when a selector does not fit the accessor.
	ErrInvalidSelector = index.ErrInvalidSelector
	// ErrDuplicateLabels is returned when duplicate labels prevent alignment.
	ErrDuplicateLabels = index.ErrDuplicateLabels
	// ErrUnsupportedOperand is returned when a kernel rejects its operands.
	ErrUnsupportedOperand = scalar.ErrUnsupportedOperand
	// ErrUnknownCodec is returned by CodecByName.
	ErrUnknownCodec = errors.New("unknown codec")
)

// ErrShapeMismatch indicates that a sequence length disagreed with the
// labels or rows it was paired with.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrShapeMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrShapeMismatch) Unwrap() error { return e.cause }

// ErrMissingLabel indicates a label lookup that failed.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrMissingLabel struct {
	Label scalar.Value
	cause error
}

func (e *ErrMissingLabel) Error() string {
	return fmt.Sprintf("label not found: %s", e.Label)
}

func (e *ErrMissingLabel) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var le *index.LengthError
	if errors.As(err, &le) {
		return &ErrShapeMismatch{Expected: le.Expected, Actual: le.Actual, cause: err}
	}
	var ke *index.KeyError
	if errors.As(err, &ke) {
		return &ErrMissingLabel{Label: ke.Label, cause: err}
	}

	return err
}
