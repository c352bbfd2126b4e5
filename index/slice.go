package index

import (
	"fmt"
	"sort"

	"github.com/hupe1980/labelframe/scalar"
)

// SliceByPosition returns the labels at start, start+step, ... up to but
// excluding end. Negative bounds count from the end and out-of-range bounds
// are clamped; step must not be zero.
func (ix *Index) SliceByPosition(start, end, step int) (*Index, error) {
	positions, err := slicePositions(len(ix.labels), &start, &end, step)
	if err != nil {
		return nil, err
	}
	return ix.Take(positions)
}

// SliceByLabel returns the labels from start through end, both inclusive.
//
// A bound that is not present is located by binary search when the index is
// monotonic increasing; otherwise it fails with ErrKeyNotFound.
func (ix *Index) SliceByLabel(start, end scalar.Value) (*Index, error) {
	positions, err := ix.labelSlice(&start, &end)
	if err != nil {
		return nil, err
	}
	return ix.Take(positions)
}

// labelSlice resolves an inclusive label range; nil bounds are open.
func (ix *Index) labelSlice(start, end *scalar.Value) ([]int, error) {
	lo, hi := 0, len(ix.labels)

	if start != nil {
		if rb, ok := ix.lookup[start.Key()]; ok {
			lo = int(rb.Minimum())
		} else {
			p, err := ix.searchBound(*start, false)
			if err != nil {
				return nil, err
			}
			lo = p
		}
	}

	if end != nil {
		if rb, ok := ix.lookup[end.Key()]; ok {
			hi = int(rb.Maximum()) + 1
		} else {
			p, err := ix.searchBound(*end, true)
			if err != nil {
				return nil, err
			}
			hi = p
		}
	}

	if hi < lo {
		hi = lo
	}
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}
	return out, nil
}

// searchBound locates an absent label in a sorted index: the first position
// holding a label >= v, or > v when after is set.
func (ix *Index) searchBound(v scalar.Value, after bool) (int, error) {
	if !ix.IsMonotonicIncreasing() {
		return 0, &KeyError{Label: v}
	}
	if !scalar.Comparable(append(ix.Labels(), v)) {
		return 0, fmt.Errorf("%w: bound %s", ErrIncomparableLabels, v)
	}
	return sort.Search(len(ix.labels), func(i int) bool {
		c, _ := scalar.Compare(ix.labels[i], v)
		if after {
			return c > 0
		}
		return c >= 0
	}), nil
}

// slicePositions expands a start:end:step slice over n elements.
// Nil bounds are open.
func slicePositions(n int, start, end *int, step int) ([]int, error) {
	if step == 0 {
		return nil, fmt.Errorf("%w: slice step cannot be zero", ErrInvalidSelector)
	}

	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}

	clamp := func(p *int, def int) int {
		if p == nil {
			return def
		}
		v := *p
		if v < 0 {
			v += n
			if v < lower {
				v = lower
			}
		} else if v > upper {
			v = upper
		}
		return v
	}

	var s, e int
	if step > 0 {
		s, e = clamp(start, lower), clamp(end, upper)
	} else {
		s, e = clamp(start, upper), clamp(end, lower)
	}

	var out []int
	if step > 0 {
		for i := s; i < e; i += step {
			out = append(out, i)
		}
	} else {
		for i := s; i > e; i += step {
			out = append(out, i)
		}
	}
	return out, nil
}
