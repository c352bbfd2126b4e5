package index

import (
	"testing"

	"github.com/hupe1980/labelframe/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelsOf(t *testing.T, ix *Index) []string {
	t.Helper()
	out := make([]string, ix.Len())
	for i, l := range ix.All() {
		out[i] = l.String()
	}
	return out
}

func TestIndexLookup(t *testing.T) {
	ix := FromStrings("a", "b", "c", "d")

	t.Run("round trip", func(t *testing.T) {
		for p := 0; p < ix.Len(); p++ {
			l, err := ix.LabelAt(p)
			require.NoError(t, err)
			got, err := ix.PositionOf(l)
			require.NoError(t, err)
			assert.Equal(t, p, got)
		}
	})

	t.Run("missing label", func(t *testing.T) {
		_, err := ix.PositionOf(scalar.String("z"))
		assert.ErrorIs(t, err, ErrKeyNotFound)

		var ke *KeyError
		require.ErrorAs(t, err, &ke)
		assert.Equal(t, "z", ke.Label.StringValue())
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := ix.LabelAt(4)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		_, err = ix.LabelAt(-1)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("mixed labels", func(t *testing.T) {
		mixed := New([]scalar.Value{scalar.Int(1), scalar.Int(10), scalar.Int(7), scalar.String("d")})
		p, err := mixed.PositionOf(scalar.String("d"))
		require.NoError(t, err)
		assert.Equal(t, 3, p)
		p, err = mixed.PositionOf(scalar.Float(10))
		require.NoError(t, err)
		assert.Equal(t, 1, p)
		assert.False(t, mixed.IsComparable())
	})

	t.Run("duplicates", func(t *testing.T) {
		dup := FromInts(2, 5, 3, 5, 71)
		assert.False(t, dup.IsUnique())
		p, err := dup.PositionOf(scalar.Int(5))
		require.NoError(t, err)
		assert.Equal(t, 1, p)
		assert.Equal(t, []int{1, 3}, dup.Positions(scalar.Int(5)))
		assert.Nil(t, dup.Positions(scalar.Int(6)))
	})

	t.Run("range", func(t *testing.T) {
		r := Range(3)
		assert.Equal(t, []string{"0", "1", "2"}, labelsOf(t, r))
		assert.True(t, r.IsMonotonicIncreasing())
	})
}

func TestIndexImmutable(t *testing.T) {
	ix := FromStrings("a", "b")
	err := ix.SetLabelAt(0, scalar.String("z"))
	assert.ErrorIs(t, err, ErrImmutableIndex)

	l, err := ix.LabelAt(0)
	require.NoError(t, err)
	assert.Equal(t, "a", l.StringValue())

	labels := ix.Labels()
	labels[1] = scalar.String("z")
	l, err = ix.LabelAt(1)
	require.NoError(t, err)
	assert.Equal(t, "b", l.StringValue())

	grown := ix.Append(scalar.String("c"))
	assert.Equal(t, 2, ix.Len())
	assert.Equal(t, 3, grown.Len())
}

func TestIndexSlicing(t *testing.T) {
	ix := FromStrings("a", "b", "c", "d")

	t.Run("label slice is inclusive", func(t *testing.T) {
		got, err := ix.SliceByLabel(scalar.String("b"), scalar.String("c"))
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "c"}, labelsOf(t, got))
	})

	t.Run("position slice is exclusive", func(t *testing.T) {
		got, err := ix.SliceByPosition(1, 3, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "c"}, labelsOf(t, got))
	})

	t.Run("stride", func(t *testing.T) {
		got, err := FromInts(2, 5, 3, 5, 71).SliceByPosition(0, 5, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"2", "3", "71"}, labelsOf(t, got))
	})

	t.Run("negative step and clamping", func(t *testing.T) {
		got, err := ix.SliceByPosition(-1, -10, -1)
		require.NoError(t, err)
		assert.Equal(t, []string{"d", "c", "b", "a"}, labelsOf(t, got))

		got, err = ix.SliceByPosition(2, 100, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "d"}, labelsOf(t, got))
	})

	t.Run("zero step", func(t *testing.T) {
		_, err := ix.SliceByPosition(0, 2, 0)
		assert.ErrorIs(t, err, ErrInvalidSelector)
	})

	t.Run("absent bound on sorted index", func(t *testing.T) {
		got, err := FromInts(10, 20, 30, 40).SliceByLabel(scalar.Int(15), scalar.Int(30))
		require.NoError(t, err)
		assert.Equal(t, []string{"20", "30"}, labelsOf(t, got))
	})

	t.Run("absent bound on unsorted index", func(t *testing.T) {
		_, err := FromInts(30, 10, 20).SliceByLabel(scalar.Int(15), scalar.Int(30))
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("mixed labels slice by present bounds", func(t *testing.T) {
		mixed := New([]scalar.Value{scalar.Int(1), scalar.Int(10), scalar.Int(7), scalar.String("d")})
		got, err := mixed.SliceByLabel(scalar.Int(10), scalar.String("d"))
		require.NoError(t, err)
		assert.Equal(t, []string{"10", "7", "d"}, labelsOf(t, got))
	})

	t.Run("reversed bounds are empty", func(t *testing.T) {
		got, err := ix.SliceByLabel(scalar.String("c"), scalar.String("a"))
		require.NoError(t, err)
		assert.Equal(t, 0, got.Len())
	})
}

func TestIndexSetOps(t *testing.T) {
	a := FromInts(2, 5, 3, 5, 71)
	b := FromInts(1, 2, 51, 71, 4)

	inter, err := a.Intersection(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "71"}, labelsOf(t, inter))

	union, err := a.Union(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "51", "71"}, labelsOf(t, union))

	sym, err := a.SymmetricDifference(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "4", "5", "51"}, labelsOf(t, sym))

	t.Run("laws", func(t *testing.T) {
		x := FromStrings("a", "c", "e", "g")
		y := FromStrings("b", "c", "d", "g")

		u, err := x.Union(y)
		require.NoError(t, err)
		uu, err := u.Intersection(u)
		require.NoError(t, err)
		assert.True(t, u.Equal(uu))

		i, err := x.Intersection(y)
		require.NoError(t, err)
		for _, l := range i.All() {
			assert.True(t, x.Contains(l))
			assert.True(t, y.Contains(l))
		}

		s, err := x.SymmetricDifference(y)
		require.NoError(t, err)
		assert.Equal(t, u.Len()-i.Len(), s.Len())
	})

	t.Run("incomparable", func(t *testing.T) {
		_, err := FromInts(1, 2).Union(FromStrings("a"))
		assert.ErrorIs(t, err, ErrIncomparableLabels)

		_, err = New([]scalar.Value{scalar.Int(1), scalar.String("d")}).Intersection(FromInts(1))
		assert.ErrorIs(t, err, ErrIncomparableLabels)
	})
}

func TestIndexTakeAndString(t *testing.T) {
	ix := FromStrings("a", "b", "c")
	got, err := ix.Take([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, "Index([c, a])", got.String())

	_, err = ix.Take([]int{3})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	assert.True(t, ix.Equal(FromStrings("a", "b", "c")))
	assert.False(t, ix.Equal(FromStrings("a", "b")))
	assert.False(t, ix.Equal(nil))
}
