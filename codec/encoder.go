// Package codec implements svpack's Value Walker and Composite Codec
// layers: it dispatches each value.Value variant to the wire package's
// tag-plus-payload primitives, frames tables as a count-prefixed
// array-part followed by a count-prefixed hash-part, and drives the
// string pool across an entire encode or decode pass.
package codec

import (
	"fmt"

	"github.com/kelindar/svpack/errs"
	"github.com/kelindar/svpack/format"
	"github.com/kelindar/svpack/strpool"
	"github.com/kelindar/svpack/value"
	"github.com/kelindar/svpack/wire"
)

// Encoder walks a value.Value tree and writes its Primitive-Codec and
// Composite-Codec encoding to an underlying wire.Writer.
type Encoder struct {
	w        *wire.Writer
	pool     *strpool.Encoder
	maxDepth int
}

// NewEncoder returns an Encoder writing to w. Strings are pooled unless
// level is Level1 or poolDisabled is set — both collapse to always-inline
// string emission, the former because Level1 has no pool at all, the
// latter because the caller asked for Level2 without string
// deduplication.
func NewEncoder(w *wire.Writer, level format.Level, maxDepth int, poolDisabled bool) *Encoder {
	disablePool := level == format.Level1 || poolDisabled

	return &Encoder{
		w:        w,
		pool:     strpool.NewEncoder(disablePool),
		maxDepth: maxDepth,
	}
}

// EncodeValue writes v as a top-level value.
func (e *Encoder) EncodeValue(v value.Value) error {
	return e.encodeValue(v, 0)
}

func (e *Encoder) encodeValue(v value.Value, depth int) error {
	switch v.Kind {
	case value.KindNil:
		wire.WriteNil(e.w)
		return nil
	case value.KindBool:
		wire.WriteBool(e.w, v.Bool)
		return nil
	case value.KindInt:
		if !v.FitsInteger() {
			return fmt.Errorf("%w: integer %d exceeds 52-bit magnitude", errs.ErrUnsupportedType, v.Int)
		}
		return wire.WriteInt(e.w, v.Int)
	case value.KindFloat:
		wire.WriteDouble(e.w, v.Float)
		return nil
	case value.KindString:
		return e.pool.Emit(e.w, v.Str)
	case value.KindBuffer:
		return wire.WriteBuffer(e.w, v.Buf)
	case value.KindTable:
		return e.encodeTable(v.Tbl, depth)
	default:
		return fmt.Errorf("%w: kind %v", errs.ErrUnsupportedType, v.Kind)
	}
}

// encodeScalarKey writes a table key, which is restricted to any
// non-Nil scalar — never a nested Table.
func (e *Encoder) encodeScalarKey(k value.Value) error {
	if k.Kind == value.KindTable {
		return fmt.Errorf("%w: table keys cannot themselves be tables", errs.ErrUnsupportedType)
	}

	return e.encodeValue(k, 0)
}

func (e *Encoder) encodeTable(t *value.Table, depth int) error {
	if depth >= e.maxDepth {
		return fmt.Errorf("%w: depth %d at or past limit %d", errs.ErrDepthExceeded, depth, e.maxDepth)
	}
	if t == nil {
		t = value.NewTable()
	}

	if len(t.Array) > wire.MaxLength {
		return fmt.Errorf("%w: array count %d exceeds %d", errs.ErrSizeLimit, len(t.Array), wire.MaxLength)
	}
	if len(t.Hash) > wire.MaxLength {
		return fmt.Errorf("%w: hash count %d exceeds %d", errs.ErrSizeLimit, len(t.Hash), wire.MaxLength)
	}

	e.w.WriteByte(wire.TagTable)
	if err := wire.WriteUint(e.w, uint64(len(t.Array))); err != nil {
		return err
	}
	if err := wire.WriteUint(e.w, uint64(len(t.Hash))); err != nil {
		return err
	}

	for _, elem := range t.Array {
		if err := e.encodeValue(elem, depth+1); err != nil {
			return err
		}
	}

	for k, v := range t.Hash {
		if err := e.encodeScalarKey(k.Value()); err != nil {
			return err
		}
		if err := e.encodeValue(v, depth+1); err != nil {
			return err
		}
	}

	return nil
}
