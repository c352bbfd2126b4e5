package align

import (
	"errors"
	"fmt"

	"github.com/hupe1980/labelframe/array"
	"github.com/hupe1980/labelframe/index"
	"github.com/hupe1980/labelframe/scalar"
)

// Absent marks a union position with no counterpart in the source index.
const Absent = -1

// Plan maps every position of the union index to a position in each operand.
type Plan struct {
	Union *index.Index
	Left  []int
	Right []int
}

// Indexes aligns l and r.
//
// Identical indexes are returned as-is with identity maps. Otherwise the
// union is the sorted distinct union of both label sets; when the labels
// cannot be ordered, the union is l's labels followed by r's novel labels in
// r's order. Two different indexes where either has duplicate labels cannot
// be aligned.
func Indexes(l, r *index.Index) (*Plan, error) {
	if l.Equal(r) {
		return &Plan{Union: l, Left: Identity(l.Len()), Right: Identity(r.Len())}, nil
	}
	if !l.IsUnique() || !r.IsUnique() {
		return nil, fmt.Errorf("%w: %s and %s", index.ErrDuplicateLabels, l, r)
	}

	u, err := l.Union(r)
	if errors.Is(err, index.ErrIncomparableLabels) {
		u = concatUnion(l, r)
	} else if err != nil {
		return nil, err
	}

	return &Plan{
		Union: u,
		Left:  Map(u, l),
		Right: Map(u, r),
	}, nil
}

// Map returns, for every position of target, the position of the same label
// in source or Absent.
func Map(target, source *index.Index) []int {
	out := make([]int, target.Len())
	for i, l := range target.All() {
		p, err := source.PositionOf(l)
		if err != nil {
			out[i] = Absent
			continue
		}
		out[i] = p
	}
	return out
}

// Identity returns the map 0..n-1.
func Identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// AllAbsent returns a map of length n with no counterparts.
func AllAbsent(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = Absent
	}
	return out
}

// Reindex gathers buf through positions. Absent positions receive the
// missing marker.
func Reindex(svc array.Service, buf array.Buffer, positions []int) array.Buffer {
	if svc == nil {
		svc = array.Default
	}
	return svc.FromValues(gather(buf, positions))
}

// Combine aligns two buffers through their maps and applies op positionally.
//
// With a fill value, a cell missing on exactly one side (absent, or holding
// the missing marker) takes the fill on that side; a cell missing on both
// sides stays missing.
func Combine(left array.Buffer, lmap []int, right array.Buffer, rmap []int, op scalar.BinaryFunc, optFns ...Option) (array.Buffer, error) {
	if len(lmap) != len(rmap) {
		return array.Buffer{}, &index.LengthError{Expected: len(lmap), Actual: len(rmap)}
	}
	o := Apply(optFns...)

	a := gather(left, lmap)
	b := gather(right, rmap)

	if o.Fill != nil {
		for i := range a {
			am, bm := a[i].IsMissing(), b[i].IsMissing()
			switch {
			case am && !bm:
				a[i] = *o.Fill
			case bm && !am:
				b[i] = *o.Fill
			}
		}
	}

	return o.Service.Combine(o.Service.FromValues(a), o.Service.FromValues(b), op)
}

func gather(buf array.Buffer, positions []int) []scalar.Value {
	out := make([]scalar.Value, len(positions))
	for i, p := range positions {
		if p == Absent || p >= buf.Len() {
			out[i] = scalar.Missing()
			continue
		}
		out[i] = buf.At(p)
	}
	return out
}

func concatUnion(l, r *index.Index) *index.Index {
	labels := l.Labels()
	for _, lab := range r.All() {
		if !l.Contains(lab) {
			labels = append(labels, lab)
		}
	}
	return index.New(labels)
}
