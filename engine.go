package labelframe

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/labelframe/align"
	"github.com/hupe1980/labelframe/codec"
	"github.com/hupe1980/labelframe/frame"
	"github.com/hupe1980/labelframe/index"
	"github.com/hupe1980/labelframe/scalar"
	"github.com/hupe1980/labelframe/series"
)

// Engine builds and combines series and frames with shared configuration:
// array service, column fan-out, codec, logging and metrics.
//
// An Engine holds no data and is safe for concurrent use. The containers it
// returns are not.
type Engine struct {
	opts options
}

// New creates an Engine.
func New(optFns ...Option) *Engine {
	return &Engine{opts: applyOptions(optFns)}
}

// Logger returns the configured logger.
func (e *Engine) Logger() *Logger { return e.opts.logger }

// Codec returns the configured codec.
func (e *Engine) Codec() codec.Codec { return e.opts.codec }

// NewSeries builds a Series with the engine's array service.
func (e *Engine) NewSeries(ctx context.Context, values []scalar.Value, optFns ...series.Option) (*series.Series, error) {
	start := time.Now()
	s, err := series.New(values, e.seriesOptions(optFns)...)
	e.constructed(ctx, "series", start, s, err)
	if err != nil {
		return nil, translateError(err)
	}
	return s, nil
}

// SeriesFromMap builds a Series from a label→value mapping.
func (e *Engine) SeriesFromMap(ctx context.Context, m map[string]scalar.Value, optFns ...series.Option) (*series.Series, error) {
	start := time.Now()
	s, err := series.FromMap(m, e.seriesOptions(optFns)...)
	e.constructed(ctx, "series", start, s, err)
	if err != nil {
		return nil, translateError(err)
	}
	return s, nil
}

// NewFrame builds a DataFrame with the engine's array service.
func (e *Engine) NewFrame(ctx context.Context, columns []frame.Column, optFns ...frame.Option) (*frame.DataFrame, error) {
	start := time.Now()
	df, err := frame.New(columns, e.frameOptions(optFns)...)
	e.frameConstructed(ctx, start, df, err)
	if err != nil {
		return nil, translateError(err)
	}
	return df, nil
}

// FrameFromRecords builds a DataFrame from records.
func (e *Engine) FrameFromRecords(ctx context.Context, records []map[string]scalar.Value, optFns ...frame.Option) (*frame.DataFrame, error) {
	start := time.Now()
	df, err := frame.FromRecords(records, e.frameOptions(optFns)...)
	e.frameConstructed(ctx, start, df, err)
	if err != nil {
		return nil, translateError(err)
	}
	return df, nil
}

// FrameFromMatrix builds a DataFrame from row-major values.
func (e *Engine) FrameFromMatrix(ctx context.Context, matrix [][]scalar.Value, optFns ...frame.Option) (*frame.DataFrame, error) {
	start := time.Now()
	df, err := frame.FromMatrix(matrix, e.frameOptions(optFns)...)
	e.frameConstructed(ctx, start, df, err)
	if err != nil {
		return nil, translateError(err)
	}
	return df, nil
}

// Combine applies op to two series after aligning their labels.
func (e *Engine) Combine(ctx context.Context, a, b *series.Series, op scalar.BinaryFunc, optFns ...align.Option) (*series.Series, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	out, err := a.BinaryOp(b, op, e.alignOptions(optFns)...)
	union := 0
	if out != nil {
		union = out.Len()
	}
	e.aligned(ctx, "series", a.Len(), b.Len(), union, start, err)
	if err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// CombineFrames applies op to two frames after aligning rows and columns.
func (e *Engine) CombineFrames(ctx context.Context, a, b *frame.DataFrame, op scalar.BinaryFunc, optFns ...align.Option) (*frame.DataFrame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	out, err := a.BinaryOp(b, op, e.alignOptions(optFns)...)
	union := 0
	if out != nil {
		union = out.Len()
	}
	e.aligned(ctx, "frame", a.Len(), b.Len(), union, start, err)
	if err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// Broadcast applies vec across df along axis.
func (e *Engine) Broadcast(ctx context.Context, df *frame.DataFrame, vec *series.Series, axis frame.Axis, op scalar.BinaryFunc, optFns ...align.Option) (*frame.DataFrame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	out, err := df.BroadcastOp(vec, axis, op, e.alignOptions(optFns)...)

	left, union := df.Len(), 0
	if axis == frame.AxisRows {
		_, left = df.Shape()
	}
	if out != nil {
		union = out.Len()
		if axis == frame.AxisRows {
			_, union = out.Shape()
		}
	}
	e.aligned(ctx, "broadcast-"+axis.String(), left, vec.Len(), union, start, err)
	if err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// Assign writes v into every cell of df selected by label selectors.
func (e *Engine) Assign(ctx context.Context, df *frame.DataFrame, row, col index.Selector, v scalar.Value) error {
	return e.assign(ctx, df, row, col, false, func() error { return df.LocAssign(row, col, v) })
}

// IAssign writes v into every cell of df selected by positional selectors.
func (e *Engine) IAssign(ctx context.Context, df *frame.DataFrame, row, col index.Selector, v scalar.Value) error {
	return e.assign(ctx, df, row, col, true, func() error { return df.ILocAssign(row, col, v) })
}

func (e *Engine) assign(ctx context.Context, df *frame.DataFrame, row, col index.Selector, positional bool, write func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	err := write()

	cells := 0
	if err == nil {
		cells = selectedCells(df, row, col, positional)
	}
	e.opts.metricsCollector.RecordAssign(cells, time.Since(start), err)
	e.opts.logger.LogAssign(ctx, cells, err)
	return translateError(err)
}

func selectedCells(df *frame.DataFrame, row, col index.Selector, positional bool) int {
	resolve := df.Index().Locate
	resolveCols := df.Columns().Locate
	if positional {
		resolve, resolveCols = df.Index().ILocate, df.Columns().ILocate
	}
	rp, _ := resolve(row)
	cp, _ := resolveCols(col)
	return len(rp) * len(cp)
}

// Encode renders v (typically a Series or DataFrame) with the engine codec.
func (e *Engine) Encode(v any) ([]byte, error) {
	b, err := e.opts.codec.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode with %s: %w", e.opts.codec.Name(), err)
	}
	return b, nil
}

// DecodeRecords decodes a JSON array of objects into a DataFrame.
func (e *Engine) DecodeRecords(ctx context.Context, data []byte, optFns ...frame.Option) (*frame.DataFrame, error) {
	records, err := codec.DecodeRecords(e.opts.codec, data)
	if err != nil {
		return nil, err
	}
	return e.FrameFromRecords(ctx, records, optFns...)
}

// CodecByName returns a built-in codec by name.
func CodecByName(name string) (codec.Codec, error) {
	c, ok := codec.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c, nil
}

func (e *Engine) seriesOptions(optFns []series.Option) []series.Option {
	return append([]series.Option{series.WithService(e.opts.service)}, optFns...)
}

func (e *Engine) frameOptions(optFns []frame.Option) []frame.Option {
	return append([]frame.Option{frame.WithService(e.opts.service)}, optFns...)
}

func (e *Engine) alignOptions(optFns []align.Option) []align.Option {
	return append([]align.Option{
		align.WithService(e.opts.service),
		align.WithWorkers(e.opts.workers),
	}, optFns...)
}

func (e *Engine) constructed(ctx context.Context, kind string, start time.Time, s *series.Series, err error) {
	e.opts.metricsCollector.RecordConstruct(time.Since(start), err)
	rows := 0
	if s != nil {
		rows = s.Len()
	}
	e.opts.logger.LogConstruct(ctx, kind, rows, 1, err)
}

func (e *Engine) frameConstructed(ctx context.Context, start time.Time, df *frame.DataFrame, err error) {
	e.opts.metricsCollector.RecordConstruct(time.Since(start), err)
	rows, cols := 0, 0
	if df != nil {
		rows, cols = df.Shape()
	}
	e.opts.logger.LogConstruct(ctx, "frame", rows, cols, err)
}

func (e *Engine) aligned(ctx context.Context, op string, left, right, union int, start time.Time, err error) {
	e.opts.metricsCollector.RecordAlign(union, time.Since(start), err)
	e.opts.logger.LogAlign(ctx, op, left, right, union, err)
}
