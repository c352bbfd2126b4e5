package index

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/labelframe/scalar"
)

// Index is an immutable ordered sequence of labels.
//
// An Index is safe for concurrent reads and may be shared freely between a
// DataFrame and its columns.
type Index struct {
	labels []scalar.Value
	lookup map[string]*roaring.Bitmap
}

// New creates an Index holding a copy of labels in the given order.
//
// New panics if there are more labels than a position bitmap can address
// (2^32-1).
func New(labels []scalar.Value) *Index {
	if uint64(len(labels)) > math.MaxUint32 {
		panic(fmt.Sprintf("index: %d labels exceed the addressable range", len(labels)))
	}
	ix := &Index{
		labels: make([]scalar.Value, len(labels)),
		lookup: make(map[string]*roaring.Bitmap, len(labels)),
	}
	copy(ix.labels, labels)
	for i, l := range ix.labels {
		k := l.Key()
		rb, ok := ix.lookup[k]
		if !ok {
			rb = roaring.New()
			ix.lookup[k] = rb
		}
		rb.Add(uint32(i))
	}
	return ix
}

// Range creates the default positional index 0..n-1.
func Range(n int) *Index {
	labels := make([]scalar.Value, n)
	for i := range labels {
		labels[i] = scalar.Int(int64(i))
	}
	return New(labels)
}

// FromStrings creates an Index of string labels.
func FromStrings(labels ...string) *Index { return New(scalar.Strings(labels...)) }

// FromInts creates an Index of integer labels.
func FromInts(labels ...int64) *Index { return New(scalar.Ints(labels...)) }

// Len returns the number of labels.
func (ix *Index) Len() int { return len(ix.labels) }

// Labels returns a copy of the labels.
func (ix *Index) Labels() []scalar.Value {
	out := make([]scalar.Value, len(ix.labels))
	copy(out, ix.labels)
	return out
}

// All iterates over (position, label) pairs.
func (ix *Index) All() iter.Seq2[int, scalar.Value] {
	return func(yield func(int, scalar.Value) bool) {
		for i, l := range ix.labels {
			if !yield(i, l) {
				return
			}
		}
	}
}

// LabelAt returns the label at position p.
func (ix *Index) LabelAt(p int) (scalar.Value, error) {
	if p < 0 || p >= len(ix.labels) {
		return scalar.Missing(), &RangeError{Position: p, Length: len(ix.labels)}
	}
	return ix.labels[p], nil
}

// SetLabelAt always fails: an Index cannot be mutated in place.
func (ix *Index) SetLabelAt(int, scalar.Value) error {
	return ErrImmutableIndex
}

// PositionOf returns the first position of label.
func (ix *Index) PositionOf(label scalar.Value) (int, error) {
	rb, ok := ix.lookup[label.Key()]
	if !ok {
		return -1, &KeyError{Label: label}
	}
	return int(rb.Minimum()), nil
}

// Positions returns every position of label in ascending order, or nil if
// the label is absent.
func (ix *Index) Positions(label scalar.Value) []int {
	rb, ok := ix.lookup[label.Key()]
	if !ok {
		return nil
	}
	out := make([]int, 0, rb.GetCardinality())
	it := rb.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Contains reports whether label is present.
func (ix *Index) Contains(label scalar.Value) bool {
	_, ok := ix.lookup[label.Key()]
	return ok
}

// IsUnique reports whether no label repeats.
func (ix *Index) IsUnique() bool { return len(ix.lookup) == len(ix.labels) }

// IsComparable reports whether the labels have a total order.
func (ix *Index) IsComparable() bool { return scalar.Comparable(ix.labels) }

// IsMonotonicIncreasing reports whether the labels are comparable and
// sorted ascending (ties allowed).
func (ix *Index) IsMonotonicIncreasing() bool {
	if !ix.IsComparable() {
		return false
	}
	for i := 1; i < len(ix.labels); i++ {
		c, err := scalar.Compare(ix.labels[i-1], ix.labels[i])
		if err != nil || c > 0 {
			return false
		}
	}
	return true
}

// Equal reports whether both indexes hold the same labels in the same order.
func (ix *Index) Equal(other *Index) bool {
	if ix == other {
		return true
	}
	if other == nil || len(ix.labels) != len(other.labels) {
		return false
	}
	for i := range ix.labels {
		if ix.labels[i].Key() != other.labels[i].Key() {
			return false
		}
	}
	return true
}

// Take returns a new Index with the labels at positions, in that order.
func (ix *Index) Take(positions []int) (*Index, error) {
	labels := make([]scalar.Value, len(positions))
	for i, p := range positions {
		l, err := ix.LabelAt(p)
		if err != nil {
			return nil, err
		}
		labels[i] = l
	}
	return New(labels), nil
}

// Append returns a new Index with label added at the end.
func (ix *Index) Append(label scalar.Value) *Index {
	labels := make([]scalar.Value, len(ix.labels), len(ix.labels)+1)
	copy(labels, ix.labels)
	return New(append(labels, label))
}

// String renders the index as Index([a, b, c]).
func (ix *Index) String() string {
	var sb strings.Builder
	sb.WriteString("Index([")
	for i, l := range ix.labels {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(l.String())
	}
	sb.WriteString("])")
	return sb.String()
}
