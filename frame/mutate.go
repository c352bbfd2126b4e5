package frame

import (
	"fmt"
	"slices"

	"github.com/hupe1980/labelframe/align"
	"github.com/hupe1980/labelframe/index"
	"github.com/hupe1980/labelframe/scalar"
	"github.com/hupe1980/labelframe/series"
)

// SetColumn stores s under label, reindexed onto the table's rows. An
// existing column with that label is replaced; otherwise the column is
// appended.
func (df *DataFrame) SetColumn(label scalar.Value, s *series.Series) error {
	c, err := df.conform(s, label)
	if err != nil {
		return err
	}
	df.put(label, c)
	return nil
}

// SetColumnValues stores raw values under label. len(values) must equal the
// row count.
func (df *DataFrame) SetColumnValues(label scalar.Value, values []scalar.Value) error {
	c, err := df.fromValues(label, values)
	if err != nil {
		return err
	}
	df.put(label, c)
	return nil
}

func (df *DataFrame) put(label scalar.Value, c *series.Series) {
	if j, err := df.cols.PositionOf(label); err == nil {
		df.data[j] = c
		return
	}
	df.cols = df.cols.Append(label)
	df.data = append(df.data, c)
}

// DropColumn removes every column labeled label.
func (df *DataFrame) DropColumn(label scalar.Value) error {
	drop := df.cols.Positions(label)
	if len(drop) == 0 {
		return &index.KeyError{Label: label}
	}

	keep := make([]int, 0, len(df.data)-len(drop))
	for j := range df.data {
		if !slices.Contains(drop, j) {
			keep = append(keep, j)
		}
	}
	cols, err := df.cols.Take(keep)
	if err != nil {
		return err
	}

	data := make([]*series.Series, len(keep))
	for k, j := range keep {
		data[k] = df.data[j]
	}
	df.cols, df.data = cols, data
	return nil
}

// LocAssign writes v into every cell selected by label selectors. Nothing is
// written when a selector fails to resolve.
func (df *DataFrame) LocAssign(row, col index.Selector, v scalar.Value) error {
	rp, cp, err := df.locate(row, col)
	if err != nil {
		return err
	}
	df.assign(rp, cp, func(int, int) scalar.Value { return v })
	return nil
}

// ILocAssign writes v into every cell selected by positional selectors.
func (df *DataFrame) ILocAssign(row, col index.Selector, v scalar.Value) error {
	rp, cp, err := df.ilocate(row, col)
	if err != nil {
		return err
	}
	df.assign(rp, cp, func(int, int) scalar.Value { return v })
	return nil
}

// LocAssignSeries writes s into the selected cells, matching s's labels
// against the row labels. Rows absent from s receive the missing marker.
func (df *DataFrame) LocAssignSeries(row, col index.Selector, s *series.Series) error {
	rp, cp, err := df.locate(row, col)
	if err != nil {
		return err
	}
	if !s.Index().IsUnique() && !s.Index().Equal(df.rows) {
		return fmt.Errorf("%w: cannot align %s", index.ErrDuplicateLabels, s.Index())
	}

	var src []int
	if s.Index().Equal(df.rows) {
		src = align.Identity(df.rows.Len())
	} else {
		src = align.Map(df.rows, s.Index())
	}
	buf := s.Buffer()
	df.assign(rp, cp, func(i, _ int) scalar.Value {
		if p := src[i]; p != align.Absent {
			return buf.At(p)
		}
		return scalar.Missing()
	})
	return nil
}

// assign rewrites the selected columns with value(i, j) at rows rp. The
// column dtype is re-inferred, so a wider value widens the column.
func (df *DataFrame) assign(rp, cp []int, value func(i, j int) scalar.Value) {
	for _, j := range cp {
		values := df.data[j].Values()
		for _, i := range rp {
			values[i] = value(i, j)
		}
		df.data[j], _ = series.FromBuffer(df.svc.FromValues(values), df.rows,
			series.WithName(df.data[j].Name()),
			series.WithService(df.svc))
	}
}
