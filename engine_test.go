package labelframe

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/hupe1980/labelframe/align"
	"github.com/hupe1980/labelframe/codec"
	"github.com/hupe1980/labelframe/frame"
	"github.com/hupe1980/labelframe/index"
	"github.com/hupe1980/labelframe/scalar"
	"github.com/hupe1980/labelframe/series"
	"github.com/hupe1980/labelframe/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineSeries(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}
	eng := New(WithMetricsCollector(metrics))

	a, err := eng.NewSeries(ctx, scalar.Ints(1, 2, 3), series.WithIndex(index.FromStrings("a", "b", "c")))
	require.NoError(t, err)
	b, err := eng.NewSeries(ctx, scalar.Ints(10, 20), series.WithIndex(index.FromStrings("c", "d")))
	require.NoError(t, err)

	sum, err := eng.Combine(ctx, a, b, scalar.Add, align.WithFill(scalar.Int(0)))
	require.NoError(t, err)
	assert.Equal(t, scalar.Ints(1, 2, 13, 20), sum.Values())

	_, err = eng.NewSeries(ctx, scalar.Ints(1), series.WithIndex(index.FromStrings("a", "b")))
	var sm *ErrShapeMismatch
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, 1, sm.Expected)
	assert.Equal(t, 2, sm.Actual)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	stats := metrics.GetStats()
	assert.Equal(t, int64(3), stats.ConstructCount)
	assert.Equal(t, int64(1), stats.ConstructErrors)
	assert.Equal(t, int64(1), stats.AlignCount)
	assert.Equal(t, int64(4), stats.AlignLabels)
}

func TestEngineFrames(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(1)
	eng := New(WithWorkers(4))

	cols := index.FromStrings("A", "B", "C", "D")
	df, err := eng.FrameFromMatrix(ctx, rng.IntMatrix(3, 4, 0, 10), frame.WithColumnIndex(cols))
	require.NoError(t, err)

	t.Run("add to itself doubles", func(t *testing.T) {
		out, err := eng.CombineFrames(ctx, df, df, scalar.Add)
		require.NoError(t, err)
		want, err := df.ScalarOp(scalar.Int(2), scalar.Mul)
		require.NoError(t, err)
		assert.Equal(t, want.Values(), out.Values())
	})

	t.Run("subtract column", func(t *testing.T) {
		a, err := df.Column(scalar.String("A"))
		require.NoError(t, err)
		out, err := eng.Broadcast(ctx, df, a, frame.AxisColumns, scalar.Sub)
		require.NoError(t, err)
		c, err := out.Column(scalar.String("A"))
		require.NoError(t, err)
		assert.Equal(t, scalar.Ints(0, 0, 0), c.Values())
	})

	t.Run("assign by position", func(t *testing.T) {
		cp := df.Copy()
		require.NoError(t, eng.IAssign(ctx, cp, index.PosTo(2), index.Pos(-1), scalar.Int(99)))
		c, err := cp.Column(scalar.String("D"))
		require.NoError(t, err)
		assert.Equal(t, scalar.Int(99), c.Values()[0])
		assert.Equal(t, scalar.Int(99), c.Values()[1])
	})

	t.Run("missing label", func(t *testing.T) {
		err := eng.Assign(ctx, df.Copy(), index.All(), index.Label(scalar.String("Z")), scalar.Int(0))
		var ml *ErrMissingLabel
		require.ErrorAs(t, err, &ml)
		assert.Equal(t, scalar.String("Z"), ml.Label)
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := eng.CombineFrames(cctx, df, df, scalar.Add)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestEngineLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	eng := New(WithLogger(logger))
	ctx := context.Background()

	a, err := eng.SeriesFromMap(ctx, map[string]scalar.Value{"a": scalar.Int(1)})
	require.NoError(t, err)
	b, err := eng.SeriesFromMap(ctx, map[string]scalar.Value{"b": scalar.Int(1)})
	require.NoError(t, err)
	_, err = eng.Combine(ctx, a, b, scalar.Add)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"construct completed"`)
	assert.Contains(t, out, `"msg":"align introduced missing labels"`)
	assert.Contains(t, out, `"union":2`)

	buf.Reset()
	strs, err := eng.NewSeries(ctx, scalar.Strings("x"), series.WithIndex(index.FromStrings("a")))
	require.NoError(t, err)
	_, err = eng.Combine(ctx, a, strs, scalar.Sub)
	assert.ErrorIs(t, err, ErrUnsupportedOperand)
	assert.Contains(t, buf.String(), `"msg":"align failed"`)
}

func TestEngineCodec(t *testing.T) {
	ctx := context.Background()

	for _, name := range []string{"json", "go-json"} {
		t.Run(name, func(t *testing.T) {
			c, err := CodecByName(name)
			require.NoError(t, err)
			eng := New(WithCodec(c))
			assert.Equal(t, name, eng.Codec().Name())

			df, err := eng.DecodeRecords(ctx, []byte(`[{"a":1,"b":2},{"a":3}]`))
			require.NoError(t, err)
			b, err := eng.Encode(df)
			require.NoError(t, err)
			assert.JSONEq(t, `{"columns":["a","b"],"index":[0,1],"data":[[1,2],[3,null]]}`, string(b))
		})
	}

	_, err := CodecByName("xml")
	assert.ErrorIs(t, err, ErrUnknownCodec)

	eng := New(WithCodec(nil))
	assert.Equal(t, codec.Default.Name(), eng.Codec().Name())
	_, err = eng.Encode(make(chan int))
	assert.Error(t, err)
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	plain := errors.New("plain")
	assert.Same(t, plain, translateError(plain))

	err := translateError(&index.RangeError{Position: 9, Length: 3})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestNoopDefaults(t *testing.T) {
	eng := New(WithLogger(nil), WithMetricsCollector(nil), WithArrayService(nil))
	s, err := eng.NewSeries(context.Background(), scalar.Floats(0.25, 0.5))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.NotNil(t, eng.Logger())
}
