// Package index provides the immutable, ordered label collection that gives
// every position of a Series or DataFrame axis its label.
//
// # Lookup
//
// Labels may repeat. Each distinct label maps to a Roaring bitmap of every
// position carrying it, so PositionOf returns the first occurrence and
// Positions returns them all.
//
// # Slicing
//
// Label slices are inclusive of both ends; positional slices exclude the end:
//
//	ix := index.FromStrings("a", "b", "c", "d")
//	ix.SliceByLabel(scalar.String("b"), scalar.String("c")) // [b c]
//	ix.SliceByPosition(1, 3, 1)                            // [b c]
//
// # Set Algebra
//
// Intersection, Union and SymmetricDifference operate on distinct labels
// and return them in ascending order. Labels without a total order (for
// example strings mixed with integers) fail with ErrIncomparableLabels.
//
// # Selectors
//
// A Selector describes which positions of an axis to address: a single
// label or position, an inclusive label range, an exclusive position slice,
// a list, a boolean Mask, or All. Locate resolves label selectors and
// ILocate positional ones.
package index
