// Package value defines the tagged union svpack serializes: booleans,
// integers, doubles, strings, byte buffers, and tables.
//
// Value is a flattened union: one struct with a discriminant Kind and
// one field per variant, rather than an interface with N concrete
// types. That keeps zero-allocation construction (IntOf(5) doesn't box)
// and makes deep-equality in tests trivial with go-cmp.
package value

import "math"

// Kind discriminates the variant a Value holds.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBuffer
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "Nil"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBuffer:
		return "Buffer"
	case KindTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// MaxIntMagnitude is the largest magnitude an Integer value can hold:
// expressible in at most 52 bits.
const MaxIntMagnitude = 1<<52 - 1

// Value is svpack's dynamically-typed wire value.
type Value struct {
	Kind Kind

	Bool  bool
	Int   int64
	Float float64
	Str   string
	Buf   []byte
	Tbl   *Table
}

// Nil returns the absence value. Only valid as a table hash-part value,
// never as a top-level Compress input or table array-part element.
func Nil() Value { return Value{Kind: KindNil} }

// BoolOf wraps a boolean.
func BoolOf(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// IntOf wraps a signed integer. The magnitude must fit in 52 bits or
// Compress rejects it with errs.ErrUnsupportedType.
func IntOf(i int64) Value { return Value{Kind: KindInt, Int: i} }

// FloatOf wraps an IEEE-754 double.
func FloatOf(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// StringOf wraps a UTF-8 or arbitrary 8-bit string.
func StringOf(s string) Value { return Value{Kind: KindString, Str: s} }

// BufferOf wraps a raw byte blob, semantically distinct from String.
func BufferOf(b []byte) Value { return Value{Kind: KindBuffer, Buf: b} }

// TableOf wraps a table.
func TableOf(t *Table) Value { return Value{Kind: KindTable, Tbl: t} }

// IsNil reports whether v is the Nil value.
func (v Value) IsNil() bool { return v.Kind == KindNil }

// FitsInteger reports whether v's integer magnitude is within the wire
// format's 52-bit range.
func (v Value) FitsInteger() bool {
	if v.Kind != KindInt {
		return false
	}
	mag := v.Int
	if mag < 0 {
		mag = -mag
	}

	return uint64(mag) <= MaxIntMagnitude
}

// Equal reports whether v and other are structurally equal, per spec
// invariant 1: Integer/Double and String/Buffer distinctions count, but
// numeric equality across those pairs does not.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}

	switch v.Kind {
	case KindNil:
		return true
	case KindBool:
		return v.Bool == other.Bool
	case KindInt:
		return v.Int == other.Int
	case KindFloat:
		return v.Float == other.Float || (math.IsNaN(v.Float) && math.IsNaN(other.Float))
	case KindString:
		return v.Str == other.Str
	case KindBuffer:
		return string(v.Buf) == string(other.Buf)
	case KindTable:
		return v.Tbl.Equal(other.Tbl)
	default:
		return false
	}
}
