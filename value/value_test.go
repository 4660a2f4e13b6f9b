package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValue_Equal(t *testing.T) {
	cases := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{"nil equals nil", Nil(), Nil(), true},
		{"int does not equal double with same numeric value", IntOf(5), FloatOf(5), false},
		{"string does not equal buffer with same bytes", StringOf("ab"), BufferOf([]byte("ab")), false},
		{"equal ints", IntOf(-7), IntOf(-7), true},
		{"NaN equals NaN", FloatOf(math.NaN()), FloatOf(math.NaN()), true},
		{"different kinds", BoolOf(true), IntOf(1), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.equal, c.a.Equal(c.b))
		})
	}
}

func TestValue_FitsInteger(t *testing.T) {
	require.True(t, IntOf(MaxIntMagnitude).FitsInteger())
	require.True(t, IntOf(-MaxIntMagnitude).FitsInteger())
	require.False(t, StringOf("x").FitsInteger())
}

func TestKeyOf_RoundTrip(t *testing.T) {
	values := []Value{BoolOf(true), IntOf(42), FloatOf(3.5), StringOf("hi"), BufferOf([]byte{1, 2, 3})}
	for _, v := range values {
		k, ok := KeyOf(v)
		require.True(t, ok)
		require.True(t, v.Equal(k.Value()))
	}

	_, ok := KeyOf(Nil())
	require.False(t, ok)
	_, ok = KeyOf(TableOf(NewTable()))
	require.False(t, ok)
}
