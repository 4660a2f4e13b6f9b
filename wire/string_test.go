package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringInline_RoundTrip(t *testing.T) {
	w := NewWriter()
	require.NoError(t, WriteStringInline(w, "hello"))
	data := w.Take()

	r := NewReader(data)
	tag, ok := r.ReadByte()
	require.True(t, ok)
	require.Equal(t, TagStringInline, tag)

	body, err := ReadLengthPrefixedBody(r)
	require.NoError(t, err)
	require.Equal(t, "hello", string(body))
	require.Equal(t, 0, r.Remaining())
}

func TestBuffer_RoundTrip(t *testing.T) {
	w := NewWriter()
	require.NoError(t, WriteBuffer(w, []byte{1, 2, 3, 4}))
	data := w.Take()

	r := NewReader(data)
	tag, ok := r.ReadByte()
	require.True(t, ok)
	require.Equal(t, TagBuffer, tag)

	body, err := ReadLengthPrefixedBody(r)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, body)
}

func TestCost_RefCheaperThanInlineForLongRepeatedStrings(t *testing.T) {
	long := make([]byte, 40)
	for i := range long {
		long[i] = 'x'
	}

	require.Less(t, RefCost(0), InlineCost(len(long)))
}
