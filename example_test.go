package labelframe_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/labelframe"
	"github.com/hupe1980/labelframe/align"
	"github.com/hupe1980/labelframe/frame"
	"github.com/hupe1980/labelframe/index"
	"github.com/hupe1980/labelframe/scalar"
)

func dict(keys string, start int64) map[string]scalar.Value {
	m := map[string]scalar.Value{}
	for i, k := range keys {
		m[string(k)] = scalar.Int(start + 10*int64(i))
	}
	return m
}

// Example_alignedAdd demonstrates label alignment with and without a fill value.
func Example_alignedAdd() {
	ctx := context.Background()
	eng := labelframe.New()

	a, err := eng.SeriesFromMap(ctx, dict("ABCDEF", 10))
	if err != nil {
		log.Fatal(err)
	}
	b := dict("ABCDE", 11)
	b["H"] = scalar.Int(71)
	bs, err := eng.SeriesFromMap(ctx, b)
	if err != nil {
		log.Fatal(err)
	}

	sum, _ := eng.Combine(ctx, a, bs, scalar.Add)
	fmt.Println(sum.Index())
	fmt.Println(sum.Values())

	filled, _ := eng.Combine(ctx, a, bs, scalar.Add, align.WithFill(scalar.Int(5)))
	fmt.Println(filled.Values())
	// Output:
	// Index([A, B, C, D, E, F, H])
	// [21 41 61 81 101 NaN NaN]
	// [21 41 61 81 101 65 76]
}

// Example_frameSelection demonstrates inclusive label slices and exclusive
// positional slices.
func Example_frameSelection() {
	ctx := context.Background()
	eng := labelframe.New()

	s1, _ := eng.SeriesFromMap(ctx, dict("ABCDE", 10))
	s2, _ := eng.SeriesFromMap(ctx, dict("ABCDE", 11))
	df, err := eng.NewFrame(ctx, []frame.Column{
		frame.Col(scalar.String("dict_01"), s1),
		frame.Col(scalar.String("dict_02"), s2),
	})
	if err != nil {
		log.Fatal(err)
	}

	byLabel, _ := df.Loc(index.LabelRange(scalar.String("A"), scalar.String("C")), index.LabelTo(scalar.String("dict_02")))
	byPos, _ := df.ILoc(index.PosTo(3), index.PosTo(2))
	fmt.Println(byLabel.Frame().Values())
	fmt.Println(byPos.Frame().Values())
	// Output:
	// [[10 11] [20 21] [30 31]]
	// [[10 11] [20 21] [30 31]]
}

// Example_maskedAssign demonstrates assigning through a boolean mask.
func Example_maskedAssign() {
	ctx := context.Background()
	eng := labelframe.New()

	df, _ := eng.NewFrame(ctx, []frame.Column{
		frame.DictCol(scalar.String("dict_01"), dict("ABCDE", 10)),
		frame.DictCol(scalar.String("dict_02"), dict("ABCDE", 11)),
	})
	c, _ := df.Column(scalar.String("dict_02"))

	err := eng.Assign(ctx, df, index.Where(c.Gt(scalar.Int(30))), index.Label(scalar.String("dict_01")), scalar.Int(36))
	if err != nil {
		log.Fatal(err)
	}
	out, _ := df.Column(scalar.String("dict_01"))
	fmt.Println(out.Values())
	// Output: [10 20 36 36 36]
}

// Example_broadcast demonstrates subtracting the first row from every row.
func Example_broadcast() {
	ctx := context.Background()
	eng := labelframe.New()

	df, _ := eng.FrameFromMatrix(ctx, [][]scalar.Value{
		scalar.Ints(1, 2, 3, 4),
		scalar.Ints(5, 6, 7, 8),
	}, frame.WithColumnIndex(index.FromStrings("A", "B", "C", "D")))

	first, _ := df.ILoc(index.Pos(0), index.All())
	out, err := eng.Broadcast(ctx, df, first.Series(), frame.AxisRows, scalar.Sub)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out.Values())
	// Output: [[0 0 0 0] [4 4 4 4]]
}

// Example_metrics demonstrates collecting engine metrics.
func Example_metrics() {
	ctx := context.Background()
	metrics := &labelframe.BasicMetricsCollector{}
	eng := labelframe.New(labelframe.WithMetricsCollector(metrics))

	a, _ := eng.SeriesFromMap(ctx, dict("AB", 1))
	b, _ := eng.SeriesFromMap(ctx, dict("BC", 1))
	_, _ = eng.Combine(ctx, a, b, scalar.Add)

	stats := metrics.GetStats()
	fmt.Println(stats.ConstructCount, stats.AlignCount, stats.AlignLabels)
	// Output: 2 1 3
}
