package array

import (
	"testing"

	"github.com/hupe1980/labelframe/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDense(t *testing.T) {
	svc := Dense{}

	t.Run("Allocate widens", func(t *testing.T) {
		b := svc.Allocate(3, scalar.DTypeInt64)
		assert.Equal(t, 3, b.Len())
		assert.Equal(t, scalar.DTypeFloat64, b.DType())
		assert.Equal(t, 3, b.CountMissing())

		b = svc.Allocate(2, scalar.DTypeBool)
		assert.Equal(t, scalar.DTypeObject, b.DType())
	})

	t.Run("FromValues coerces", func(t *testing.T) {
		b := svc.FromValues([]scalar.Value{scalar.Int(1), scalar.Missing()})
		assert.Equal(t, scalar.DTypeFloat64, b.DType())
		assert.Equal(t, scalar.Float(1), b.At(0))
		assert.True(t, b.At(1).IsMissing())
	})

	t.Run("FromValues copies", func(t *testing.T) {
		in := scalar.Ints(1, 2)
		b := svc.FromValues(in)
		in[0] = scalar.Int(99)
		assert.Equal(t, scalar.Int(1), b.At(0))

		out := b.Values()
		out[1] = scalar.Int(99)
		assert.Equal(t, scalar.Int(2), b.At(1))
	})

	t.Run("Apply", func(t *testing.T) {
		b := svc.FromValues(scalar.Ints(1, 2, 3))
		got, err := svc.Apply(b, scalar.Neg)
		require.NoError(t, err)
		assert.Equal(t, scalar.DTypeInt64, got.DType())
		assert.Equal(t, scalar.Ints(-1, -2, -3), got.Values())

		_, err = svc.Apply(svc.FromValues(scalar.Strings("a")), scalar.Exp)
		assert.ErrorIs(t, err, scalar.ErrUnsupportedOperand)
	})

	t.Run("Combine", func(t *testing.T) {
		a := svc.FromValues(scalar.Ints(1, 2))
		b := svc.FromValues([]scalar.Value{scalar.Int(10), scalar.Missing()})
		got, err := svc.Combine(a, b, scalar.Add)
		require.NoError(t, err)
		assert.Equal(t, scalar.DTypeFloat64, got.DType())
		assert.Equal(t, scalar.Float(11), got.At(0))
		assert.True(t, got.At(1).IsMissing())

		_, err = svc.Combine(a, svc.FromValues(scalar.Ints(1)), scalar.Add)
		assert.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("Reduce", func(t *testing.T) {
		b := svc.FromValues([]scalar.Value{scalar.Int(1), scalar.Missing(), scalar.Int(4)})
		got, err := svc.Reduce(b, scalar.SkipMissing(scalar.Add), scalar.Missing())
		require.NoError(t, err)
		assert.True(t, scalar.Float(5).Equal(got))
	})
}
