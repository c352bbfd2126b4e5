// Package frame provides DataFrame, a two-dimensional labeled table: an
// ordered set of Series sharing one row Index, plus a column Index naming
// them.
//
// # Construction
//
// Columns may be given as Series, raw value sequences or label→value maps.
// Labeled columns are reconciled onto the union of their row labels, so a
// row label missing from one column yields the missing marker there:
//
//	df, _ := frame.New([]frame.Column{
//	    frame.Col(scalar.String("dict_01"), s1), // rows A..E
//	    frame.Col(scalar.String("dict_02"), s2), // rows A..D, H
//	})
//	// rows A, B, C, D, E, H
//
// # Access
//
// Loc takes label selectors and ILoc positional ones, one per axis. Both
// return a Selection whose dimensionality drops when an axis is addressed
// by a single label or position:
//
//	sel, _ := df.Loc(index.LabelRange(scalar.String("A"), scalar.String("C")), index.All())
//	sub := sel.Frame()
//
// # Arithmetic
//
// BinaryOp aligns rows and columns of both tables; BroadcastOp applies a
// Series across every row (AxisRows) or every column (AxisColumns) after
// aligning its labels with the matching axis.
package frame
