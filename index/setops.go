package index

import (
	"fmt"
	"slices"

	"github.com/hupe1980/labelframe/scalar"
)

// Intersection returns the distinct labels present in both indexes,
// sorted ascending.
func (ix *Index) Intersection(other *Index) (*Index, error) {
	var out []scalar.Value
	for _, l := range ix.labels {
		if other.Contains(l) {
			out = append(out, l)
		}
	}
	return distinctSorted(out, ix, other)
}

// Union returns the distinct labels present in either index, sorted
// ascending.
func (ix *Index) Union(other *Index) (*Index, error) {
	out := make([]scalar.Value, 0, len(ix.labels)+len(other.labels))
	out = append(out, ix.labels...)
	out = append(out, other.labels...)
	return distinctSorted(out, ix, other)
}

// SymmetricDifference returns the distinct labels present in exactly one of
// the indexes, sorted ascending.
func (ix *Index) SymmetricDifference(other *Index) (*Index, error) {
	var out []scalar.Value
	for _, l := range ix.labels {
		if !other.Contains(l) {
			out = append(out, l)
		}
	}
	for _, l := range other.labels {
		if !ix.Contains(l) {
			out = append(out, l)
		}
	}
	return distinctSorted(out, ix, other)
}

// distinctSorted dedupes vals and sorts them. The order check covers both
// source indexes so the result does not depend on which labels survived.
func distinctSorted(vals []scalar.Value, a, b *Index) (*Index, error) {
	if !a.IsComparable() || !b.IsComparable() || !scalar.Comparable(append(a.Labels(), b.labels...)) {
		return nil, fmt.Errorf("%w: cannot order %s and %s", ErrIncomparableLabels, a, b)
	}

	seen := make(map[string]struct{}, len(vals))
	uniq := make([]scalar.Value, 0, len(vals))
	for _, v := range vals {
		k := v.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		uniq = append(uniq, v)
	}

	slices.SortStableFunc(uniq, func(x, y scalar.Value) int {
		c, _ := scalar.Compare(x, y)
		return c
	})
	return New(uniq), nil
}
