package value

import "fmt"

// Key is a comparable projection of a non-Nil scalar Value, suitable for
// use as a Go map key. Value itself cannot be a map key — its Buf field
// is a slice, which makes the struct non-comparable — so table hash-parts
// are keyed on Key instead and converted back to Value on read.
type Key struct {
	kind Kind
	i    int64
	f    float64
	s    string // holds String and Buffer payloads; Kind disambiguates them
}

// Rejecting Nil/Table keys with a format-level error is the codec
// package's job (via errs.ErrUnsupportedType); this package only knows
// how to convert, not how to report.

// KeyOf projects a non-Nil scalar Value into a Key. ok is false for Nil
// or Table values, neither of which is allowed as a table key.
func KeyOf(v Value) (Key, bool) {
	switch v.Kind {
	case KindBool:
		i := int64(0)
		if v.Bool {
			i = 1
		}
		return Key{kind: KindBool, i: i}, true
	case KindInt:
		return Key{kind: KindInt, i: v.Int}, true
	case KindFloat:
		return Key{kind: KindFloat, f: v.Float}, true
	case KindString:
		return Key{kind: KindString, s: v.Str}, true
	case KindBuffer:
		return Key{kind: KindBuffer, s: string(v.Buf)}, true
	default:
		return Key{}, false
	}
}

// Value converts a Key back into its original Value form.
func (k Key) Value() Value {
	switch k.kind {
	case KindBool:
		return BoolOf(k.i != 0)
	case KindInt:
		return IntOf(k.i)
	case KindFloat:
		return FloatOf(k.f)
	case KindString:
		return StringOf(k.s)
	case KindBuffer:
		return BufferOf([]byte(k.s))
	default:
		return Nil()
	}
}

// AsArrayIndex reports whether k is an Int key and returns its value.
// Used by Table.Set to decide whether an assignment extends the
// contiguous array-part prefix.
func (k Key) AsArrayIndex() (int64, bool) {
	if k.kind != KindInt {
		return 0, false
	}
	return k.i, true
}

func (k Key) String() string {
	return fmt.Sprintf("Key(%s:%v%v%v)", k.kind, k.i, k.f, k.s)
}
