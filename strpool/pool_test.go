package strpool

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kelindar/svpack/wire"
)

func TestEncoder_RepeatedStringBecomesRef(t *testing.T) {
	enc := NewEncoder(false)
	w := wire.NewWriter()

	long := "a repeated string long enough that a reference is cheaper"
	require.NoError(t, enc.Emit(w, long))
	require.NoError(t, enc.Emit(w, long))

	data := w.Take()
	r := wire.NewReader(data)

	tag, ok := r.ReadByte()
	require.True(t, ok)
	require.Equal(t, wire.TagStringInline, tag)
	_, err := wire.ReadLengthPrefixedBody(r)
	require.NoError(t, err)

	tag, ok = r.ReadByte()
	require.True(t, ok)
	require.Equal(t, wire.TagStringRef, tag)
}

func TestEncoder_Disabled_AlwaysInline(t *testing.T) {
	enc := NewEncoder(true)
	w := wire.NewWriter()

	require.NoError(t, enc.Emit(w, "repeat"))
	require.NoError(t, enc.Emit(w, "repeat"))

	data := w.Take()
	r := wire.NewReader(data)
	for i := 0; i < 2; i++ {
		tag, ok := r.ReadByte()
		require.True(t, ok)
		require.Equal(t, wire.TagStringInline, tag)
		_, err := wire.ReadLengthPrefixedBody(r)
		require.NoError(t, err)
	}
}

func TestDecoder_ResolveOutOfRange(t *testing.T) {
	dec := NewDecoder()
	_, err := dec.Resolve(0)
	require.Error(t, err)

	dec.Observe("first")
	s, err := dec.Resolve(0)
	require.NoError(t, err)
	require.Equal(t, "first", s)

	_, err = dec.Resolve(1)
	require.Error(t, err)
}
