package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable_ArrayHashSplit(t *testing.T) {
	t.Run("sparse assignment order does not affect the split", func(t *testing.T) {
		orders := [][]int64{
			{1, 3, 4},
			{4, 3, 1},
			{3, 1, 4},
		}
		for _, order := range orders {
			tbl := NewTable()
			for _, idx := range order {
				var s string
				switch idx {
				case 1:
					s = "a"
				case 3:
					s = "c"
				case 4:
					s = "d"
				}
				require.NoError(t, tbl.Set(IntOf(idx), StringOf(s)))
			}

			require.Len(t, tbl.Array, 1)
			require.Equal(t, "a", tbl.Array[0].Str)
			require.Len(t, tbl.Hash, 2)

			v, ok := tbl.Get(IntOf(3))
			require.True(t, ok)
			require.Equal(t, "c", v.Str)

			v, ok = tbl.Get(IntOf(4))
			require.True(t, ok)
			require.Equal(t, "d", v.Str)
		}
	})

	t.Run("appending 1..n stays fully in the array part", func(t *testing.T) {
		tbl := NewTable()
		for i := 1; i <= 5; i++ {
			require.NoError(t, tbl.Append(IntOf(int64(i))))
		}
		require.Len(t, tbl.Array, 5)
		require.Empty(t, tbl.Hash)
	})

	t.Run("hash-part entry draining on append", func(t *testing.T) {
		tbl := NewTable()
		require.NoError(t, tbl.Set(IntOf(3), StringOf("c")))
		require.NoError(t, tbl.Set(IntOf(2), StringOf("b")))
		require.NoError(t, tbl.Set(IntOf(1), StringOf("a")))

		require.Len(t, tbl.Array, 3)
		require.Empty(t, tbl.Hash)
		require.Equal(t, "a", tbl.Array[0].Str)
		require.Equal(t, "b", tbl.Array[1].Str)
		require.Equal(t, "c", tbl.Array[2].Str)
	})
}

func TestTable_SetNilDeletes(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Set(StringOf("k"), IntOf(1)))
	require.NoError(t, tbl.Set(StringOf("k"), Nil()))

	_, ok := tbl.Get(StringOf("k"))
	require.False(t, ok)
}

func TestTable_DeleteMidArraySpillsToHash(t *testing.T) {
	tbl := NewTable()
	for i := 1; i <= 4; i++ {
		require.NoError(t, tbl.Append(IntOf(int64(i * 10))))
	}

	tbl.Delete(IntOf(2))

	require.Len(t, tbl.Array, 1)
	require.Len(t, tbl.Hash, 2)

	v, ok := tbl.Get(IntOf(3))
	require.True(t, ok)
	require.Equal(t, int64(30), v.Int)

	v, ok = tbl.Get(IntOf(4))
	require.True(t, ok)
	require.Equal(t, int64(40), v.Int)
}

func TestTable_RejectsTableAndNilKeys(t *testing.T) {
	tbl := NewTable()
	require.Error(t, tbl.Set(Nil(), IntOf(1)))
	require.Error(t, tbl.Set(TableOf(NewTable()), IntOf(1)))
}

func TestTable_Equal(t *testing.T) {
	a := NewTable()
	require.NoError(t, a.Append(IntOf(1)))
	require.NoError(t, a.Set(StringOf("k"), StringOf("v")))

	b := NewTable()
	require.NoError(t, b.Append(IntOf(1)))
	require.NoError(t, b.Set(StringOf("k"), StringOf("v")))

	require.True(t, a.Equal(b))

	require.NoError(t, b.Set(StringOf("k"), StringOf("other")))
	require.False(t, a.Equal(b))
}
