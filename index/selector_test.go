package index

import (
	"testing"

	"github.com/hupe1980/labelframe/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	ix := FromStrings("a", "b", "c", "d")

	tests := []struct {
		name string
		sel  Selector
		want []int
	}{
		{"all", All(), []int{0, 1, 2, 3}},
		{"label", Label(scalar.String("c")), []int{2}},
		{"range", LabelRange(scalar.String("b"), scalar.String("d")), []int{1, 2, 3}},
		{"from", LabelFrom(scalar.String("c")), []int{2, 3}},
		{"to", LabelTo(scalar.String("b")), []int{0, 1}},
		{"list", Labels(scalar.String("c"), scalar.String("a")), []int{2, 0}},
		{"mask", Where(MaskFromBools([]bool{true, false, false, true})), []int{0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ix.Locate(tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("errors", func(t *testing.T) {
		_, err := ix.Locate(Label(scalar.String("z")))
		assert.ErrorIs(t, err, ErrKeyNotFound)

		_, err = ix.Locate(Labels(scalar.String("a"), scalar.String("z")))
		assert.ErrorIs(t, err, ErrKeyNotFound)

		_, err = ix.Locate(Pos(0))
		assert.ErrorIs(t, err, ErrInvalidSelector)

		_, err = ix.Locate(Where(NewMask(3)))
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})
}

func TestILocate(t *testing.T) {
	ix := FromStrings("a", "b", "c", "d")
	two := 2

	tests := []struct {
		name string
		sel  Selector
		want []int
	}{
		{"pos", Pos(1), []int{1}},
		{"negative pos", Pos(-1), []int{3}},
		{"range", PosRange(1, 3), []int{1, 2}},
		{"from", PosFrom(2), []int{2, 3}},
		{"to", PosTo(3), []int{0, 1, 2}},
		{"stride", PosSlice(nil, nil, 2), []int{0, 2}},
		{"reverse", PosSlice(&two, nil, -1), []int{2, 1, 0}},
		{"list", Positions(2, 0), []int{2, 0}},
		{"mask", Where(MaskFromBools([]bool{false, true, true, false})), []int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ix.ILocate(tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("errors", func(t *testing.T) {
		_, err := ix.ILocate(Pos(4))
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		_, err = ix.ILocate(Positions(0, -5))
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		_, err = ix.ILocate(Label(scalar.String("a")))
		assert.ErrorIs(t, err, ErrInvalidSelector)
	})

	assert.True(t, Pos(0).IsScalar())
	assert.True(t, Label(scalar.Int(1)).IsScalar())
	assert.False(t, Positions(0).IsScalar())
}

func TestMask(t *testing.T) {
	a := MaskFromBools([]bool{true, true, false, false})
	b := MaskFromBools([]bool{false, true, true, false})

	and, err := a.And(b)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, and.Positions())

	or, err := a.Or(b)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, or.Positions())

	assert.Equal(t, []bool{false, false, true, true}, a.Not().Bools())
	assert.Equal(t, 2, a.Count())

	_, err = a.And(NewMask(2))
	assert.ErrorIs(t, err, ErrLengthMismatch)

	m := NewMask(3)
	m.Set(2, true)
	assert.True(t, m.Test(2))
	assert.False(t, m.Test(5))
	m.Set(2, false)
	assert.Equal(t, 0, m.Count())
	assert.Panics(t, func() { m.Set(3, true) })
}
