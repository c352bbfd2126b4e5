package index

import (
	"github.com/bits-and-blooms/bitset"
)

// Mask is a fixed-length boolean mask over an axis.
type Mask struct {
	bits *bitset.BitSet
	n    int
}

// NewMask creates an all-false mask of length n.
func NewMask(n int) *Mask {
	return &Mask{bits: bitset.New(uint(n)), n: n}
}

// MaskFromBools creates a mask from a bool slice.
func MaskFromBools(bs []bool) *Mask {
	m := NewMask(len(bs))
	for i, b := range bs {
		if b {
			m.bits.Set(uint(i))
		}
	}
	return m
}

// Len returns the mask length.
func (m *Mask) Len() int { return m.n }

// Set sets position i to v. It panics if i is out of range.
func (m *Mask) Set(i int, v bool) {
	if i < 0 || i >= m.n {
		panic(&RangeError{Position: i, Length: m.n})
	}
	m.bits.SetTo(uint(i), v)
}

// Test reports whether position i is set.
func (m *Mask) Test(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits.Test(uint(i))
}

// Count returns the number of set positions.
func (m *Mask) Count() int { return int(m.bits.Count()) }

// And returns the elementwise AND of two masks of equal length.
func (m *Mask) And(other *Mask) (*Mask, error) {
	if m.n != other.n {
		return nil, &LengthError{Expected: m.n, Actual: other.n}
	}
	return &Mask{bits: m.bits.Intersection(other.bits), n: m.n}, nil
}

// Or returns the elementwise OR of two masks of equal length.
func (m *Mask) Or(other *Mask) (*Mask, error) {
	if m.n != other.n {
		return nil, &LengthError{Expected: m.n, Actual: other.n}
	}
	return &Mask{bits: m.bits.Union(other.bits), n: m.n}, nil
}

// Not returns the complement of the mask.
func (m *Mask) Not() *Mask {
	out := NewMask(m.n)
	for i := 0; i < m.n; i++ {
		if !m.bits.Test(uint(i)) {
			out.bits.Set(uint(i))
		}
	}
	return out
}

// Positions returns the set positions in ascending order.
func (m *Mask) Positions() []int {
	out := make([]int, 0, m.Count())
	for i, ok := m.bits.NextSet(0); ok && int(i) < m.n; i, ok = m.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Bools returns the mask as a bool slice.
func (m *Mask) Bools() []bool {
	out := make([]bool, m.n)
	for i := range out {
		out[i] = m.bits.Test(uint(i))
	}
	return out
}
