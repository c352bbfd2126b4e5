package frame

import (
	"fmt"

	"github.com/hupe1980/labelframe/index"
	"github.com/hupe1980/labelframe/scalar"
	"github.com/hupe1980/labelframe/series"
)

// Dim is the dimensionality of a Selection.
type Dim uint8

const (
	// DimScalar is a single cell.
	DimScalar Dim = iota
	// DimVector is a Series.
	DimVector
	// DimTable is a DataFrame.
	DimTable
)

func (d Dim) String() string {
	switch d {
	case DimScalar:
		return "scalar"
	case DimVector:
		return "vector"
	case DimTable:
		return "table"
	default:
		return "unknown"
	}
}

// Selection is the result of Loc or ILoc. Exactly one of Value, Series or
// Frame is meaningful, as reported by Dim.
type Selection struct {
	dim    Dim
	value  scalar.Value
	series *series.Series
	frame  *DataFrame
}

// Dim reports which accessor holds the result.
func (s *Selection) Dim() Dim { return s.dim }

// Value returns the cell of a DimScalar selection, or the missing marker.
func (s *Selection) Value() scalar.Value { return s.value }

// Series returns the vector of a DimVector selection, or nil.
func (s *Selection) Series() *series.Series { return s.series }

// Frame returns the table of a DimTable selection, or nil.
func (s *Selection) Frame() *DataFrame { return s.frame }

// Column returns a copy of the column labeled label. With duplicate column
// labels the first match is returned.
func (df *DataFrame) Column(label scalar.Value) (*series.Series, error) {
	j, err := df.cols.PositionOf(label)
	if err != nil {
		return nil, err
	}
	return df.data[j].Copy(), nil
}

// ColumnAt returns a copy of the column at position j.
func (df *DataFrame) ColumnAt(j int) (*series.Series, error) {
	if j < 0 || j >= len(df.data) {
		return nil, &index.RangeError{Position: j, Length: len(df.data)}
	}
	return df.data[j].Copy(), nil
}

// Row returns the values of row i across all columns.
func (df *DataFrame) Row(i int) ([]scalar.Value, error) {
	if i < 0 || i >= df.rows.Len() {
		return nil, &index.RangeError{Position: i, Length: df.rows.Len()}
	}
	out := make([]scalar.Value, len(df.data))
	for j, s := range df.data {
		out[j] = s.Buffer().At(i)
	}
	return out, nil
}

// Values returns the cells in row-major order.
func (df *DataFrame) Values() [][]scalar.Value {
	out := make([][]scalar.Value, df.rows.Len())
	for i := range out {
		out[i], _ = df.Row(i)
	}
	return out
}

// At returns the cell at (row label, column label).
func (df *DataFrame) At(row, col scalar.Value) (scalar.Value, error) {
	i, err := df.rows.PositionOf(row)
	if err != nil {
		return scalar.Value{}, err
	}
	j, err := df.cols.PositionOf(col)
	if err != nil {
		return scalar.Value{}, err
	}
	return df.data[j].Buffer().At(i), nil
}

// IAt returns the cell at (row position, column position).
func (df *DataFrame) IAt(i, j int) (scalar.Value, error) {
	if j < 0 || j >= len(df.data) {
		return scalar.Value{}, &index.RangeError{Position: j, Length: len(df.data)}
	}
	if i < 0 || i >= df.rows.Len() {
		return scalar.Value{}, &index.RangeError{Position: i, Length: df.rows.Len()}
	}
	return df.data[j].Buffer().At(i), nil
}

// Loc selects by labels on both axes. Label ranges are inclusive of both
// ends.
func (df *DataFrame) Loc(row, col index.Selector) (*Selection, error) {
	rp, cp, err := df.locate(row, col)
	if err != nil {
		return nil, err
	}
	return df.selection(rp, cp, row.IsScalar(), col.IsScalar())
}

// ILoc selects by positions on both axes. Position ranges exclude the end.
func (df *DataFrame) ILoc(row, col index.Selector) (*Selection, error) {
	rp, cp, err := df.ilocate(row, col)
	if err != nil {
		return nil, err
	}
	return df.selection(rp, cp, row.IsScalar(), col.IsScalar())
}

// Where returns the rows where m is set.
func (df *DataFrame) Where(m *index.Mask) (*DataFrame, error) {
	sel, err := df.ILoc(index.Where(m), index.All())
	if err != nil {
		return nil, err
	}
	return sel.frame, nil
}

func (df *DataFrame) locate(row, col index.Selector) ([]int, []int, error) {
	rp, err := df.rows.Locate(row)
	if err != nil {
		return nil, nil, fmt.Errorf("rows: %w", err)
	}
	cp, err := df.cols.Locate(col)
	if err != nil {
		return nil, nil, fmt.Errorf("columns: %w", err)
	}
	return rp, cp, nil
}

func (df *DataFrame) ilocate(row, col index.Selector) ([]int, []int, error) {
	rp, err := df.rows.ILocate(row)
	if err != nil {
		return nil, nil, fmt.Errorf("rows: %w", err)
	}
	cp, err := df.cols.ILocate(col)
	if err != nil {
		return nil, nil, fmt.Errorf("columns: %w", err)
	}
	return rp, cp, nil
}

func (df *DataFrame) selection(rp, cp []int, rowScalar, colScalar bool) (*Selection, error) {
	rowScalar = rowScalar && len(rp) == 1
	colScalar = colScalar && len(cp) == 1

	switch {
	case rowScalar && colScalar:
		return &Selection{dim: DimScalar, value: df.data[cp[0]].Buffer().At(rp[0])}, nil
	case colScalar:
		s, err := df.data[cp[0]].ILoc(index.Positions(rp...))
		if err != nil {
			return nil, err
		}
		return &Selection{dim: DimVector, series: s}, nil
	case rowScalar:
		s, err := df.rowSeries(rp[0], cp)
		if err != nil {
			return nil, err
		}
		return &Selection{dim: DimVector, series: s}, nil
	}

	sub, err := df.take(rp, cp)
	if err != nil {
		return nil, err
	}
	return &Selection{dim: DimTable, frame: sub}, nil
}

// rowSeries builds the cross-section of row i over the columns cp, indexed
// by column labels and named after the row label.
func (df *DataFrame) rowSeries(i int, cp []int) (*series.Series, error) {
	labels, err := df.cols.Take(cp)
	if err != nil {
		return nil, err
	}
	values := make([]scalar.Value, len(cp))
	for k, j := range cp {
		values[k] = df.data[j].Buffer().At(i)
	}
	name, _ := df.rows.LabelAt(i)
	return series.New(values,
		series.WithIndex(labels),
		series.WithName(name),
		series.WithService(df.svc))
}

// take builds an independent sub-table; column dtypes are kept.
func (df *DataFrame) take(rp, cp []int) (*DataFrame, error) {
	rows, err := df.rows.Take(rp)
	if err != nil {
		return nil, err
	}
	cols, err := df.cols.Take(cp)
	if err != nil {
		return nil, err
	}
	data := make([]*series.Series, len(cp))
	for k, j := range cp {
		s, err := df.data[j].ILoc(index.Positions(rp...))
		if err != nil {
			return nil, err
		}
		if data[k], err = series.FromBuffer(s.Buffer(), rows,
			series.WithName(s.Name()),
			series.WithService(df.svc)); err != nil {
			return nil, err
		}
	}
	return &DataFrame{rows: rows, cols: cols, data: data, svc: df.svc}, nil
}
