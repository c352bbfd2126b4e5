package series

import (
	"github.com/hupe1980/labelframe/index"
	"github.com/hupe1980/labelframe/scalar"
)

// At returns the value at the first position of label.
func (s *Series) At(label scalar.Value) (scalar.Value, error) {
	p, err := s.index.PositionOf(label)
	if err != nil {
		return scalar.Missing(), err
	}
	return s.buf.At(p), nil
}

// IAt returns the value at position p.
func (s *Series) IAt(p int) (scalar.Value, error) {
	if p < 0 || p >= s.buf.Len() {
		return scalar.Missing(), &index.RangeError{Position: p, Length: s.buf.Len()}
	}
	return s.buf.At(p), nil
}

// Loc selects by label. A Label selector returns every element carrying
// that label.
func (s *Series) Loc(sel index.Selector) (*Series, error) {
	positions, err := s.index.Locate(sel)
	if err != nil {
		return nil, err
	}
	return s.take(positions)
}

// ILoc selects by position.
func (s *Series) ILoc(sel index.Selector) (*Series, error) {
	positions, err := s.index.ILocate(sel)
	if err != nil {
		return nil, err
	}
	return s.take(positions)
}

// SliceByLabel returns start through end, both inclusive.
func (s *Series) SliceByLabel(start, end scalar.Value) (*Series, error) {
	return s.Loc(index.LabelRange(start, end))
}

// SliceByPosition returns positions start, start+step, ... excluding end.
func (s *Series) SliceByPosition(start, end, step int) (*Series, error) {
	return s.ILoc(index.PosSlice(&start, &end, step))
}

// Compare evaluates pred on every element.
func (s *Series) Compare(pred scalar.Predicate) *index.Mask {
	m := index.NewMask(s.buf.Len())
	for i := 0; i < s.buf.Len(); i++ {
		if pred(s.buf.At(i)) {
			m.Set(i, true)
		}
	}
	return m
}

// Gt returns the mask of elements greater than v.
func (s *Series) Gt(v scalar.Value) *index.Mask { return s.Compare(scalar.Gt(v)) }

// Ge returns the mask of elements greater than or equal to v.
func (s *Series) Ge(v scalar.Value) *index.Mask { return s.Compare(scalar.Ge(v)) }

// Lt returns the mask of elements less than v.
func (s *Series) Lt(v scalar.Value) *index.Mask { return s.Compare(scalar.Lt(v)) }

// Le returns the mask of elements less than or equal to v.
func (s *Series) Le(v scalar.Value) *index.Mask { return s.Compare(scalar.Le(v)) }

// Eq returns the mask of elements equal to v.
func (s *Series) Eq(v scalar.Value) *index.Mask { return s.Compare(scalar.Eq(v)) }

// MaskSelect returns the elements matching pred with their labels.
func (s *Series) MaskSelect(pred scalar.Predicate) *Series {
	out, _ := s.take(s.Compare(pred).Positions())
	return out
}

// Where returns the elements set in m. The mask length must equal Len.
func (s *Series) Where(m *index.Mask) (*Series, error) {
	return s.ILoc(index.Where(m))
}

// SetByLabel overwrites every element carrying label, or appends v under a
// new label at the end.
func (s *Series) SetByLabel(label scalar.Value, v scalar.Value) {
	values := s.buf.Values()
	if ps := s.index.Positions(label); ps != nil {
		for _, p := range ps {
			values[p] = v
		}
	} else {
		values = append(values, v)
		s.index = s.index.Append(label)
	}
	s.buf = s.svc.FromValues(values)
}

// SetByPosition overwrites the element at position p.
func (s *Series) SetByPosition(p int, v scalar.Value) error {
	if p < 0 || p >= s.buf.Len() {
		return &index.RangeError{Position: p, Length: s.buf.Len()}
	}
	values := s.buf.Values()
	values[p] = v
	s.buf = s.svc.FromValues(values)
	return nil
}
