package entropy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kelindar/svpack/errs"
	"github.com/kelindar/svpack/format"
)

func repetitiveText(n int) []byte {
	unit := []byte(`{"id":123,"name":"Alice","role":"warrior"}`)
	out := make([]byte, 0, n)
	for len(out) < n {
		out = append(out, unit...)
	}

	return out[:n]
}

func TestWrap_RoundTrip_EachAlgo(t *testing.T) {
	data := repetitiveText(8192)

	for _, algo := range format.AllEntropyAlgos {
		t.Run(algo.String(), func(t *testing.T) {
			wrapped, chosen, err := Wrap(data, algo)
			require.NoError(t, err)
			require.Equal(t, algo, chosen)

			got, err := Unwrap(wrapped, algo)
			require.NoError(t, err)
			require.True(t, bytes.Equal(data, got))
		})
	}
}

func TestWrap_Auto_PicksSmallest(t *testing.T) {
	data := repetitiveText(8192)

	wrapped, chosen, err := Wrap(data, format.EntropyAuto)
	require.NoError(t, err)
	require.True(t, chosen.Valid())

	got, err := Unwrap(wrapped, chosen)
	require.NoError(t, err)
	require.True(t, bytes.Equal(data, got))

	for _, algo := range format.AllEntropyAlgos {
		alt, _, err := Wrap(data, algo)
		require.NoError(t, err)
		require.LessOrEqual(t, len(wrapped), len(alt))
	}
}

func TestUnwrap_DetectsCorruption(t *testing.T) {
	data := repetitiveText(4096)
	wrapped, chosen, err := Wrap(data, format.EntropyLZ4)
	require.NoError(t, err)

	corrupted := append([]byte(nil), wrapped...)
	corrupted[len(corrupted)-1] ^= 0xFF

	_, err = Unwrap(corrupted, chosen)
	require.Error(t, err)
}

func TestUnwrap_RejectsTrailingGarbage(t *testing.T) {
	data := repetitiveText(4096)
	wrapped, chosen, err := Wrap(data, format.EntropyLZ4)
	require.NoError(t, err)

	_, err = Unwrap(append(wrapped, 0xAB), chosen)
	require.ErrorIs(t, err, errs.ErrTrailingGarbage)
}
