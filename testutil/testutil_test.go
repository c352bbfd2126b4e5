package testutil

import (
	"testing"

	"github.com/hupe1980/labelframe/scalar"
	"github.com/stretchr/testify/assert"
)

func TestInts(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Ints(64, 0, 10)

	assert.Equal(t, 64, len(v))
	for _, x := range v {
		assert.Equal(t, scalar.KindInt, x.Kind)
		assert.GreaterOrEqual(t, x.I64, int64(0))
		assert.Less(t, x.I64, int64(10))
	}
}

func TestIntMatrix(t *testing.T) {
	rng := NewRNG(4711)

	m := rng.IntMatrix(3, 4, 10, 20)

	assert.Equal(t, 3, len(m))
	assert.Equal(t, 4, len(m[0]))
	assert.GreaterOrEqual(t, m[2][3].I64, int64(10))
}

func TestFloats(t *testing.T) {
	rng := NewRNG(4711)

	for _, x := range rng.Floats(16) {
		assert.GreaterOrEqual(t, x.F64, 0.0)
		assert.Less(t, x.F64, 1.0)
	}
}

func TestLabels(t *testing.T) {
	rng := NewRNG(4711)

	labels := rng.Labels(10, "r")

	seen := map[string]bool{}
	for _, l := range labels {
		seen[l.StringValue()] = true
	}
	assert.Len(t, seen, 10)
	assert.True(t, seen["r0"])
	assert.True(t, seen["r9"])
}

func TestWithMissing(t *testing.T) {
	rng := NewRNG(4711)
	src := rng.Ints(1000, 0, 100)

	out := rng.WithMissing(src, 0.3)

	missing := 0
	for _, v := range out {
		if v.IsMissing() {
			missing++
		}
	}
	assert.InDelta(t, 300, missing, 80)
	assert.Empty(t, rng.WithMissing(nil, 0.5))
	assert.Equal(t, src, rng.WithMissing(src, 0))
}

func TestMask(t *testing.T) {
	rng := NewRNG(4711)

	m := rng.Mask(100, 1)
	for _, b := range m {
		assert.True(t, b)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Ints(10, 0, 1000)

	rng.Reset()
	v2 := rng.Ints(10, 0, 1000)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}
