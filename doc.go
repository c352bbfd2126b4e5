// Package labelframe provides labeled, in-memory tabular data for Go: an
// immutable Index of labels, a Series (labeled vector) and a DataFrame
// (labeled table), with operations that align operands by label before
// computing.
//
// # Packages
//
//	scalar  tagged scalar values, dtypes and elementwise kernels
//	array   value buffers and the array service the containers compute with
//	index   Index, selectors, masks and set operations
//	align   the alignment engine shared by every binary operation
//	series  Series
//	frame   DataFrame
//	codec   JSON codecs for rendering containers
//
// # Quick Start
//
//	ctx := context.Background()
//	eng := labelframe.New()
//
//	a, _ := eng.SeriesFromMap(ctx, map[string]scalar.Value{"A": scalar.Int(10), "B": scalar.Int(20)})
//	b, _ := eng.SeriesFromMap(ctx, map[string]scalar.Value{"B": scalar.Int(1), "C": scalar.Int(2)})
//
//	sum, _ := eng.Combine(ctx, a, b, scalar.Add)
//	// A: NaN, B: 21, C: NaN
//
//	sum, _ = eng.Combine(ctx, a, b, scalar.Add, align.WithFill(scalar.Int(0)))
//	// A: 10, B: 21, C: 2
//
// # Selection
//
// Label access is inclusive of both slice bounds, positional access
// excludes the end:
//
//	sel, _ := df.Loc(index.LabelRange(scalar.String("A"), scalar.String("C")), index.All())
//	sel, _ = df.ILoc(index.PosTo(3), index.PosTo(2))
//
// # Observability
//
// The Engine logs through a slog-backed Logger and reports to a
// MetricsCollector:
//
//	metrics := &labelframe.BasicMetricsCollector{}
//	eng := labelframe.New(
//	    labelframe.WithLogger(labelframe.NewJSONLogger(slog.LevelDebug)),
//	    labelframe.WithMetricsCollector(metrics),
//	)
//
// # Concurrency
//
// Indexes are immutable and safe to share. Series and DataFrames need
// external synchronization when mutated. Frame operations compute columns
// concurrently when configured with WithWorkers.
package labelframe
