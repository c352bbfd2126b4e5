package frame

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/labelframe/align"
	"github.com/hupe1980/labelframe/array"
	"github.com/hupe1980/labelframe/index"
	"github.com/hupe1980/labelframe/scalar"
	"github.com/hupe1980/labelframe/series"
)

// Axis selects how BroadcastOp lays a Series over a table.
type Axis uint8

const (
	// AxisRows applies the series to every row. Its labels align with the
	// column labels.
	AxisRows Axis = iota
	// AxisColumns applies the series to every column. Its labels align with
	// the row labels.
	AxisColumns
)

func (a Axis) String() string {
	switch a {
	case AxisRows:
		return "rows"
	case AxisColumns:
		return "columns"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// BinaryOp combines two tables elementwise after aligning rows and columns.
//
// The result carries the union of both row indexes and both column indexes.
// A column present on only one side is combined against an all-missing
// column, so it ends up missing unless align.WithFill is given.
func (df *DataFrame) BinaryOp(other *DataFrame, op scalar.BinaryFunc, optFns ...align.Option) (*DataFrame, error) {
	optFns = append([]align.Option{align.WithService(df.svc)}, optFns...)
	o := align.Apply(optFns...)

	rowPlan, err := align.Indexes(df.rows, other.rows)
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	colPlan, err := align.Indexes(df.cols, other.cols)
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	n := rowPlan.Union.Len()
	out := make([]*series.Series, colPlan.Union.Len())
	err = forEachColumn(len(out), o.Workers, func(j int) error {
		lbuf, lmap := df.side(colPlan.Left[j], rowPlan.Left, n)
		rbuf, rmap := other.side(colPlan.Right[j], rowPlan.Right, n)
		buf, err := align.Combine(lbuf, lmap, rbuf, rmap, op, optFns...)
		if err != nil {
			return columnError(colPlan.Union, j, err)
		}
		label, _ := colPlan.Union.LabelAt(j)
		out[j], err = series.FromBuffer(buf, rowPlan.Union,
			series.WithName(label),
			series.WithService(o.Service))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &DataFrame{rows: rowPlan.Union, cols: colPlan.Union, data: out, svc: o.Service}, nil
}

// side returns the buffer and row map of column j, or an all-absent map
// when the column does not exist on this side.
func (df *DataFrame) side(j int, rowMap []int, n int) (array.Buffer, []int) {
	if j == align.Absent {
		return array.Buffer{}, align.AllAbsent(n)
	}
	return df.data[j].Buffer(), rowMap
}

// Add is BinaryOp with scalar.Add.
func (df *DataFrame) Add(other *DataFrame, optFns ...align.Option) (*DataFrame, error) {
	return df.BinaryOp(other, scalar.Add, optFns...)
}

// Sub is BinaryOp with scalar.Sub.
func (df *DataFrame) Sub(other *DataFrame, optFns ...align.Option) (*DataFrame, error) {
	return df.BinaryOp(other, scalar.Sub, optFns...)
}

// Mul is BinaryOp with scalar.Mul.
func (df *DataFrame) Mul(other *DataFrame, optFns ...align.Option) (*DataFrame, error) {
	return df.BinaryOp(other, scalar.Mul, optFns...)
}

// Div is BinaryOp with scalar.Div.
func (df *DataFrame) Div(other *DataFrame, optFns ...align.Option) (*DataFrame, error) {
	return df.BinaryOp(other, scalar.Div, optFns...)
}

// BroadcastOp combines every row (AxisRows) or every column (AxisColumns)
// with vec. vec's labels are aligned with the matching axis first; labels
// of vec unknown to the table add all-missing columns or rows.
func (df *DataFrame) BroadcastOp(vec *series.Series, axis Axis, op scalar.BinaryFunc, optFns ...align.Option) (*DataFrame, error) {
	optFns = append([]align.Option{align.WithService(df.svc)}, optFns...)
	o := align.Apply(optFns...)

	switch axis {
	case AxisRows:
		colPlan, err := align.Indexes(df.cols, vec.Index())
		if err != nil {
			return nil, fmt.Errorf("columns: %w", err)
		}
		n := df.rows.Len()
		out := make([]*series.Series, colPlan.Union.Len())
		err = forEachColumn(len(out), o.Workers, func(j int) error {
			lbuf, lmap := df.side(colPlan.Left[j], align.Identity(n), n)
			rbuf, rmap := broadcastSide(vec, colPlan.Right[j], n)
			buf, err := align.Combine(lbuf, lmap, rbuf, rmap, op, optFns...)
			if err != nil {
				return columnError(colPlan.Union, j, err)
			}
			label, _ := colPlan.Union.LabelAt(j)
			out[j], err = series.FromBuffer(buf, df.rows,
				series.WithName(label),
				series.WithService(o.Service))
			return err
		})
		if err != nil {
			return nil, err
		}
		return &DataFrame{rows: df.rows, cols: colPlan.Union, data: out, svc: o.Service}, nil

	case AxisColumns:
		rowPlan, err := align.Indexes(df.rows, vec.Index())
		if err != nil {
			return nil, fmt.Errorf("rows: %w", err)
		}
		out := make([]*series.Series, len(df.data))
		err = forEachColumn(len(out), o.Workers, func(j int) error {
			buf, err := align.Combine(df.data[j].Buffer(), rowPlan.Left, vec.Buffer(), rowPlan.Right, op, optFns...)
			if err != nil {
				return columnError(df.cols, j, err)
			}
			out[j], err = series.FromBuffer(buf, rowPlan.Union,
				series.WithName(df.data[j].Name()),
				series.WithService(o.Service))
			return err
		})
		if err != nil {
			return nil, err
		}
		return &DataFrame{rows: rowPlan.Union, cols: df.cols, data: out, svc: o.Service}, nil
	}

	return nil, fmt.Errorf("%w: axis %s", index.ErrInvalidSelector, axis)
}

// broadcastSide repeats vec's element p down n rows.
func broadcastSide(vec *series.Series, p int, n int) (array.Buffer, []int) {
	if p == align.Absent {
		return array.Buffer{}, align.AllAbsent(n)
	}
	return array.NewBuffer(vec.DType(), []scalar.Value{vec.Buffer().At(p)}), make([]int, n)
}

// SubtractRow subtracts vec from every row, matching vec's labels against
// the column labels.
func (df *DataFrame) SubtractRow(vec *series.Series, optFns ...align.Option) (*DataFrame, error) {
	return df.BroadcastOp(vec, AxisRows, scalar.Sub, optFns...)
}

// SubtractColumn subtracts vec from every column, matching vec's labels
// against the row labels.
func (df *DataFrame) SubtractColumn(vec *series.Series, optFns ...align.Option) (*DataFrame, error) {
	return df.BroadcastOp(vec, AxisColumns, scalar.Sub, optFns...)
}

// ScalarOp combines every cell with v.
func (df *DataFrame) ScalarOp(v scalar.Value, op scalar.BinaryFunc, optFns ...align.Option) (*DataFrame, error) {
	return df.Apply(scalar.Bind(op, v), optFns...)
}

// Apply maps fn over every cell. Column dtypes are re-inferred.
func (df *DataFrame) Apply(fn scalar.UnaryFunc, optFns ...align.Option) (*DataFrame, error) {
	o := align.Apply(append([]align.Option{align.WithService(df.svc)}, optFns...)...)

	out := make([]*series.Series, len(df.data))
	err := forEachColumn(len(out), o.Workers, func(j int) error {
		buf, err := o.Service.Apply(df.data[j].Buffer(), fn)
		if err != nil {
			return columnError(df.cols, j, err)
		}
		out[j], err = series.FromBuffer(buf, df.rows,
			series.WithName(df.data[j].Name()),
			series.WithService(o.Service))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &DataFrame{rows: df.rows, cols: df.cols, data: out, svc: o.Service}, nil
}

// Sum returns the column sums as a Series indexed by column labels.
func (df *DataFrame) Sum() (*series.Series, error) {
	values := make([]scalar.Value, len(df.data))
	for j, s := range df.data {
		v, err := s.Sum()
		if err != nil {
			return nil, columnError(df.cols, j, err)
		}
		values[j] = v
	}
	return series.New(values, series.WithIndex(df.cols), series.WithService(df.svc))
}

// forEachColumn runs fn for 0..n-1, concurrently when workers > 1. Each fn
// writes only its own slot, so no further synchronization is needed.
func forEachColumn(n, workers int, fn func(j int) error) error {
	if workers < 2 || n < 2 {
		for j := 0; j < n; j++ {
			if err := fn(j); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for j := 0; j < n; j++ {
		g.Go(func() error { return fn(j) })
	}
	return g.Wait()
}

func columnError(cols *index.Index, j int, err error) error {
	label, _ := cols.LabelAt(j)
	return fmt.Errorf("column %s: %w", label, err)
}
