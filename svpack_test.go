package svpack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kelindar/svpack/format"
	"github.com/kelindar/svpack/value"
)

func buildSaveFile(rows int) value.Value {
	t := value.NewTable()
	for i := 1; i <= rows; i++ {
		row := value.NewTable()
		_ = row.Set(value.StringOf("name"), value.StringOf("player"))
		_ = row.Set(value.StringOf("class"), value.StringOf("warrior"))
		_ = row.Set(value.StringOf("level"), value.IntOf(int64(i)))
		_ = row.Set(value.StringOf("gold"), value.FloatOf(float64(i)*1.5))
		_ = t.Append(value.TableOf(row))
	}

	return value.TableOf(t)
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	v := buildSaveFile(16)

	for _, level := range []format.Level{format.Level1, format.Level2, format.Level3} {
		data, err := Compress(v, level)
		require.NoError(t, err)

		got, err := Decompress(data)
		require.NoError(t, err)
		require.True(t, v.Equal(got), "level %v", level)
	}
}

func TestCompress_MonotoneImprovement(t *testing.T) {
	// Large enough that the Level2 stream clears the 4KiB threshold spec
	// ties the Level3 monotone-improvement guarantee to.
	v := buildSaveFile(400)

	l1, err := Compress(v, format.Level1)
	require.NoError(t, err)
	l2, err := Compress(v, format.Level2)
	require.NoError(t, err)
	l3, err := Compress(v, format.Level3)
	require.NoError(t, err)

	require.LessOrEqual(t, len(l2), len(l1))
	require.LessOrEqual(t, len(l3), len(l2))
}

func TestCompress_RejectsOversizedInteger(t *testing.T) {
	_, err := Compress(value.IntOf(1<<52+1), format.Level1)
	require.Error(t, err)
}

func TestCompress_InvalidLevel(t *testing.T) {
	_, err := Compress(value.IntOf(1), format.Level(9))
	require.Error(t, err)
}

func TestDecompress_EmptyInput(t *testing.T) {
	_, err := Decompress(nil)
	require.Error(t, err)
}

func TestDecompress_TrailingGarbage(t *testing.T) {
	data, err := Compress(value.IntOf(5), format.Level1)
	require.NoError(t, err)

	_, err = Decompress(append(data, 0xFF))
	require.Error(t, err)
}

func TestDecompress_TrailingGarbage_Level3(t *testing.T) {
	v := buildSaveFile(16)

	data, err := Compress(v, format.Level3)
	require.NoError(t, err)

	_, err = Decompress(append(data, 0xFF))
	require.Error(t, err)
}

func TestDetectLevel(t *testing.T) {
	data, err := Compress(value.StringOf("x"), format.Level3)
	require.NoError(t, err)

	level, err := DetectLevel(data)
	require.NoError(t, err)
	require.Equal(t, format.Level3, level)
}

func TestWithPoolDisabled(t *testing.T) {
	v := buildSaveFile(16)

	pooled, err := Compress(v, format.Level2)
	require.NoError(t, err)
	unpooled, err := Compress(v, format.Level2, WithPoolDisabled())
	require.NoError(t, err)

	require.Less(t, len(pooled), len(unpooled))

	got, err := Decompress(unpooled)
	require.NoError(t, err)
	require.True(t, v.Equal(got))
}

func TestWithMaxDepth(t *testing.T) {
	inner := value.NewTable()
	_ = inner.Append(value.IntOf(1))
	outer := value.NewTable()
	_ = outer.Append(value.TableOf(inner))
	v := value.TableOf(outer)

	_, err := Compress(v, format.Level1, WithMaxDepth(1))
	require.Error(t, err)
}

func TestWithEntropyAlgo(t *testing.T) {
	v := buildSaveFile(8)

	data, stats, err := CompressStats(v, format.Level3, WithEntropyAlgo(format.EntropyFSST))
	require.NoError(t, err)
	require.Equal(t, format.EntropyFSST, stats.EntropyAlgo)

	got, err := Decompress(data)
	require.NoError(t, err)
	require.True(t, v.Equal(got))
}
