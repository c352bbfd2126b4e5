// Package align implements the alignment engine used by every binary
// operation between labeled containers.
//
// Given two indexes L and R, Indexes computes their union U and two position
// maps from U to L and R (-1 where a label is absent). Combine then
// materializes both operands over U, placing the missing marker (or the fill
// value) at absent positions, and lets the array service apply the operation
// positionally.
//
//	plan, _ := align.Indexes(a.Index(), b.Index())
//	buf, _ := align.Combine(a.Buffer(), plan.Left, b.Buffer(), plan.Right, scalar.Add,
//	    align.WithFill(scalar.Int(0)))
//
// Series and DataFrame operations call Combine the same way; a DataFrame
// column absent on one side is passed as an all-absent map.
package align
