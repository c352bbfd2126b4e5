// Package series provides Series, a one-dimensional labeled vector: a dense
// value buffer plus the Index naming each position.
//
// # Construction
//
//	s, _ := series.New(scalar.Floats(0.25, 0.5, 0.75, 1.0),
//	    series.WithIndex(index.FromStrings("a", "b", "c", "d")))
//
// Without WithIndex the default positional index 0..n-1 is used.
//
// # Access
//
// At and Loc address by label (label slices include both ends); IAt and
// ILoc address by position (position slices exclude the end). Every
// selection returns an independent copy.
//
// # Arithmetic
//
// BinaryOp aligns both operands on the union of their labels before applying
// the operation, so labels present on one side only yield the missing
// marker unless a fill value is supplied:
//
//	sum, _ := a.Add(b)                           // missing where unmatched
//	sum, _ = a.Add(b, align.WithFill(scalar.Int(0)))
package series
