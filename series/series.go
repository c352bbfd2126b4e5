package series

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/hupe1980/labelframe/align"
	"github.com/hupe1980/labelframe/array"
	"github.com/hupe1980/labelframe/index"
	"github.com/hupe1980/labelframe/scalar"
)

// Series is a labeled vector. Its buffer length always equals its index
// length.
//
// A Series is not safe for concurrent mutation.
type Series struct {
	name  scalar.Value
	index *index.Index
	buf   array.Buffer
	svc   array.Service
}

// New creates a Series from values.
func New(values []scalar.Value, optFns ...Option) (*Series, error) {
	o := applyOptions(optFns)
	ix := o.index
	if ix == nil {
		ix = index.Range(len(values))
	}
	if ix.Len() != len(values) {
		return nil, &index.LengthError{Expected: len(values), Actual: ix.Len()}
	}
	return &Series{
		name:  o.name,
		index: ix,
		buf:   o.service.FromValues(values),
		svc:   o.service,
	}, nil
}

// Fill creates a Series repeating v at every label of ix.
func Fill(v scalar.Value, ix *index.Index, optFns ...Option) *Series {
	values := make([]scalar.Value, ix.Len())
	for i := range values {
		values[i] = v
	}
	s, _ := New(values, append(optFns, WithIndex(ix))...)
	return s
}

// FromMap creates a Series from a label→value mapping.
//
// With WithIndex the given labels are looked up in order and absent keys
// receive the missing marker. Otherwise the keys become string labels in
// ascending order.
func FromMap(m map[string]scalar.Value, optFns ...Option) (*Series, error) {
	o := applyOptions(optFns)
	if o.index == nil {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		values := make([]scalar.Value, len(keys))
		for i, k := range keys {
			values[i] = m[k]
		}
		return New(values, append(optFns, WithIndex(index.FromStrings(keys...)))...)
	}

	values := make([]scalar.Value, o.index.Len())
	for i, l := range o.index.All() {
		if v, ok := m[l.String()]; ok && l.Kind == scalar.KindString {
			values[i] = v
		}
	}
	return New(values, optFns...)
}

// FromBuffer wraps an existing buffer. The buffer length must match ix.
func FromBuffer(buf array.Buffer, ix *index.Index, optFns ...Option) (*Series, error) {
	o := applyOptions(optFns)
	if ix.Len() != buf.Len() {
		return nil, &index.LengthError{Expected: buf.Len(), Actual: ix.Len()}
	}
	return &Series{name: o.name, index: ix, buf: buf, svc: o.service}, nil
}

// Len returns the number of elements.
func (s *Series) Len() int { return s.buf.Len() }

// Index returns the labels.
func (s *Series) Index() *index.Index { return s.index }

// Name returns the series name (the missing marker when unnamed).
func (s *Series) Name() scalar.Value { return s.name }

// DType returns the buffer's element type.
func (s *Series) DType() scalar.DType { return s.buf.DType() }

// Buffer returns the underlying buffer.
func (s *Series) Buffer() array.Buffer { return s.buf }

// Service returns the array service the series computes with.
func (s *Series) Service() array.Service { return s.svc }

// Values returns a copy of the values.
func (s *Series) Values() []scalar.Value { return s.buf.Values() }

// Rename returns a copy with a new name.
func (s *Series) Rename(name scalar.Value) *Series {
	c := s.Copy()
	c.name = name
	return c
}

// Copy returns an independent copy.
func (s *Series) Copy() *Series {
	return &Series{
		name:  s.name,
		index: s.index,
		buf:   array.NewBuffer(s.buf.DType(), s.buf.Values()),
		svc:   s.svc,
	}
}

// Contains reports whether label is present.
func (s *Series) Contains(label scalar.Value) bool { return s.index.Contains(label) }

// Items iterates over (label, value) pairs.
func (s *Series) Items() iter.Seq2[scalar.Value, scalar.Value] {
	return func(yield func(scalar.Value, scalar.Value) bool) {
		for i, l := range s.index.All() {
			if !yield(l, s.buf.At(i)) {
				return
			}
		}
	}
}

// Reindex conforms the series to ix: labels missing from the series receive
// the missing marker.
func (s *Series) Reindex(ix *index.Index) (*Series, error) {
	if s.index.Equal(ix) {
		return s.Copy(), nil
	}
	if !s.index.IsUnique() {
		return nil, fmt.Errorf("%w: cannot reindex %s", index.ErrDuplicateLabels, s.index)
	}
	return s.gather(ix, align.Map(ix, s.index)), nil
}

// Sum adds all present values. An all-missing series sums to the missing
// marker.
func (s *Series) Sum() (scalar.Value, error) {
	return s.svc.Reduce(s.buf, scalar.SkipMissing(scalar.Add), scalar.Missing())
}

// take builds a series from positions of s, keeping the dtype.
func (s *Series) take(positions []int) (*Series, error) {
	ix, err := s.index.Take(positions)
	if err != nil {
		return nil, err
	}
	values := make([]scalar.Value, len(positions))
	for i, p := range positions {
		values[i] = s.buf.At(p)
	}
	return &Series{
		name:  s.name,
		index: ix,
		buf:   array.NewBuffer(s.buf.DType(), values),
		svc:   s.svc,
	}, nil
}

// gather builds a series over ix from positions of s; align.Absent yields missing.
func (s *Series) gather(ix *index.Index, positions []int) *Series {
	values := make([]scalar.Value, len(positions))
	for i, p := range positions {
		if p != align.Absent {
			values[i] = s.buf.At(p)
		}
	}
	return &Series{
		name:  s.name,
		index: ix,
		buf:   s.svc.FromValues(values),
		svc:   s.svc,
	}
}

// String renders one "label value" line per element followed by the dtype.
func (s *Series) String() string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 4, ' ', 0)
	for l, v := range s.Items() {
		fmt.Fprintf(tw, "%s\t%s\n", l, v)
	}
	_ = tw.Flush()
	if !s.name.IsMissing() {
		fmt.Fprintf(&sb, "Name: %s, ", s.name)
	}
	fmt.Fprintf(&sb, "dtype: %s", s.buf.DType())
	return sb.String()
}

type seriesJSON struct {
	Name  scalar.Value   `json:"name"`
	Index []scalar.Value `json:"index"`
	Data  []scalar.Value `json:"data"`
}

// MarshalJSON implements json.Marshaler.
func (s *Series) MarshalJSON() ([]byte, error) {
	return json.Marshal(seriesJSON{
		Name:  s.name,
		Index: s.index.Labels(),
		Data:  s.buf.Values(),
	})
}
