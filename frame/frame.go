package frame

import (
	"fmt"
	"slices"

	"github.com/hupe1980/labelframe/align"
	"github.com/hupe1980/labelframe/array"
	"github.com/hupe1980/labelframe/index"
	"github.com/hupe1980/labelframe/scalar"
	"github.com/hupe1980/labelframe/series"
)

// Column is one constructor input: a label plus exactly one of Series,
// Values or Dict.
type Column struct {
	Label  scalar.Value
	Series *series.Series
	Values []scalar.Value
	Dict   map[string]scalar.Value
}

// Col is a labeled column source.
func Col(label scalar.Value, s *series.Series) Column {
	return Column{Label: label, Series: s}
}

// RawCol is an unlabeled column source; it adopts the table's row labels.
func RawCol(label scalar.Value, values ...scalar.Value) Column {
	return Column{Label: label, Values: values}
}

// DictCol is a label→value column source; keys are string row labels.
func DictCol(label scalar.Value, m map[string]scalar.Value) Column {
	return Column{Label: label, Dict: m}
}

// DataFrame is a labeled two-dimensional table. Every column Series shares
// the table's row Index.
//
// A DataFrame is not safe for concurrent mutation.
type DataFrame struct {
	rows *index.Index
	cols *index.Index
	data []*series.Series
	svc  array.Service
}

// New builds a DataFrame from column sources.
//
// Without WithRowIndex the row index is the union of the labeled sources'
// indexes (unchanged when they all agree); with only raw sources it is the
// default positional index. Labeled sources are reindexed onto it with
// missing markers; raw sources must match its length.
func New(columns []Column, optFns ...Option) (*DataFrame, error) {
	o := applyOptions(optFns)

	sources := make([]*series.Series, len(columns))
	for i, c := range columns {
		switch {
		case c.Series != nil:
			sources[i] = c.Series
		case c.Dict != nil:
			s, err := series.FromMap(c.Dict, series.WithService(o.service))
			if err != nil {
				return nil, err
			}
			sources[i] = s
		}
	}

	rows, err := rowIndexFor(columns, sources, o.rowIndex)
	if err != nil {
		return nil, err
	}

	df := &DataFrame{rows: rows, svc: o.service}
	labels := make([]scalar.Value, 0, len(columns))
	data := make([]*series.Series, 0, len(columns))
	for i, c := range columns {
		var s *series.Series
		if sources[i] != nil {
			s, err = df.conform(sources[i], c.Label)
		} else {
			s, err = df.fromValues(c.Label, c.Values)
		}
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c.Label, err)
		}
		labels = append(labels, c.Label)
		data = append(data, s)
	}

	if o.colIndex == nil {
		df.cols = index.New(labels)
		df.data = data
		return df, nil
	}

	byLabel := index.New(labels)
	df.cols = o.colIndex
	df.data = make([]*series.Series, o.colIndex.Len())
	for j, l := range o.colIndex.All() {
		if p, err := byLabel.PositionOf(l); err == nil {
			df.data[j] = data[p]
			continue
		}
		df.data[j] = df.missingColumn(l)
	}
	return df, nil
}

// FromSeries builds a single-column DataFrame.
func FromSeries(label scalar.Value, s *series.Series, optFns ...Option) (*DataFrame, error) {
	return New([]Column{Col(label, s)}, optFns...)
}

// FromRecords builds a DataFrame from a list of records. Columns are the
// union of record keys in ascending order; absent keys become missing.
func FromRecords(records []map[string]scalar.Value, optFns ...Option) (*DataFrame, error) {
	seen := map[string]struct{}{}
	var keys []string
	for _, r := range records {
		for k := range r {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
	}
	slices.Sort(keys)

	columns := make([]Column, len(keys))
	for j, k := range keys {
		values := make([]scalar.Value, len(records))
		for i, r := range records {
			values[i] = r[k]
		}
		columns[j] = RawCol(scalar.String(k), values...)
	}
	return New(columns, optFns...)
}

// FromMatrix builds a DataFrame from row-major values. Rows must be equally
// long. WithColumnIndex names the columns (default 0..m-1) and WithRowIndex
// names the rows (default 0..n-1).
func FromMatrix(matrix [][]scalar.Value, optFns ...Option) (*DataFrame, error) {
	o := applyOptions(optFns)

	width := 0
	if len(matrix) > 0 {
		width = len(matrix[0])
	}
	for _, row := range matrix {
		if len(row) != width {
			return nil, &index.LengthError{Expected: width, Actual: len(row)}
		}
	}

	cols := o.colIndex
	if cols == nil {
		cols = index.Range(width)
	}
	if cols.Len() != width {
		return nil, &index.LengthError{Expected: width, Actual: cols.Len()}
	}

	columns := make([]Column, width)
	for j := 0; j < width; j++ {
		values := make([]scalar.Value, len(matrix))
		for i, row := range matrix {
			values[i] = row[j]
		}
		label, _ := cols.LabelAt(j)
		columns[j] = RawCol(label, values...)
	}
	return New(columns, WithRowIndex(o.rowIndex), WithService(o.service))
}

func rowIndexFor(columns []Column, sources []*series.Series, explicit *index.Index) (*index.Index, error) {
	if explicit != nil {
		return explicit, nil
	}

	var rows *index.Index
	for _, s := range sources {
		if s == nil {
			continue
		}
		if rows == nil {
			rows = s.Index()
			continue
		}
		if rows.Equal(s.Index()) {
			continue
		}
		plan, err := align.Indexes(rows, s.Index())
		if err != nil {
			return nil, err
		}
		rows = plan.Union
	}
	if rows != nil {
		return rows, nil
	}

	n := -1
	for _, c := range columns {
		if n == -1 {
			n = len(c.Values)
			continue
		}
		if len(c.Values) != n {
			return nil, &index.LengthError{Expected: n, Actual: len(c.Values)}
		}
	}
	if n < 0 {
		n = 0
	}
	return index.Range(n), nil
}

// conform reindexes s onto the table's rows and names it label.
func (df *DataFrame) conform(s *series.Series, label scalar.Value) (*series.Series, error) {
	r, err := s.Reindex(df.rows)
	if err != nil {
		return nil, err
	}
	return series.FromBuffer(r.Buffer(), df.rows, series.WithName(label), series.WithService(df.svc))
}

func (df *DataFrame) fromValues(label scalar.Value, values []scalar.Value) (*series.Series, error) {
	if len(values) != df.rows.Len() {
		return nil, &index.LengthError{Expected: df.rows.Len(), Actual: len(values)}
	}
	return series.FromBuffer(df.svc.FromValues(values), df.rows, series.WithName(label), series.WithService(df.svc))
}

func (df *DataFrame) missingColumn(label scalar.Value) *series.Series {
	s, _ := series.FromBuffer(df.svc.Allocate(df.rows.Len(), scalar.DTypeFloat64), df.rows,
		series.WithName(label), series.WithService(df.svc))
	return s
}

// Shape returns (rows, columns).
func (df *DataFrame) Shape() (int, int) { return df.rows.Len(), df.cols.Len() }

// Len returns the number of rows.
func (df *DataFrame) Len() int { return df.rows.Len() }

// Index returns the row labels.
func (df *DataFrame) Index() *index.Index { return df.rows }

// Columns returns the column labels.
func (df *DataFrame) Columns() *index.Index { return df.cols }

// Service returns the array service the table computes with.
func (df *DataFrame) Service() array.Service { return df.svc }

// DTypes returns the dtype of every column in order.
func (df *DataFrame) DTypes() []scalar.DType {
	out := make([]scalar.DType, len(df.data))
	for j, s := range df.data {
		out[j] = s.DType()
	}
	return out
}

// Copy returns an independent copy.
func (df *DataFrame) Copy() *DataFrame {
	data := make([]*series.Series, len(df.data))
	for j, s := range df.data {
		data[j] = s.Copy()
	}
	return &DataFrame{rows: df.rows, cols: df.cols, data: data, svc: df.svc}
}
