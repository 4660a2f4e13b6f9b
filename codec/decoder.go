package codec

import (
	"fmt"

	"github.com/kelindar/svpack/errs"
	"github.com/kelindar/svpack/strpool"
	"github.com/kelindar/svpack/value"
	"github.com/kelindar/svpack/wire"
)

// Decoder reads a Primitive-Codec/Composite-Codec byte stream back into a
// value.Value tree.
type Decoder struct {
	r        *wire.Reader
	pool     *strpool.Decoder
	maxDepth int
}

// NewDecoder returns a Decoder reading from r. The string pool is always
// tracked on the decode side regardless of level — observing an inline
// string the encoder chose not to deduplicate is harmless, and a
// Level2/3 stream may still reference it later.
func NewDecoder(r *wire.Reader, maxDepth int) *Decoder {
	return &Decoder{
		r:        r,
		pool:     strpool.NewDecoder(),
		maxDepth: maxDepth,
	}
}

// DecodeValue reads one top-level value.
func (d *Decoder) DecodeValue() (value.Value, error) {
	return d.decodeValue(0)
}

func (d *Decoder) decodeValue(depth int) (value.Value, error) {
	tag, ok := d.r.ReadByte()
	if !ok {
		return value.Value{}, errs.ErrTruncated
	}

	switch {
	case tag == wire.TagNil:
		return value.Nil(), nil
	case tag == wire.TagBoolFalse:
		return value.BoolOf(false), nil
	case tag == wire.TagBoolTrue:
		return value.BoolOf(true), nil
	case wire.IsIntTag(tag):
		i, err := wire.ReadIntBody(d.r, tag)
		if err != nil {
			return value.Value{}, err
		}
		return value.IntOf(i), nil
	case tag == wire.TagDouble:
		f, err := wire.ReadDoubleBody(d.r)
		if err != nil {
			return value.Value{}, err
		}
		return value.FloatOf(f), nil
	case tag == wire.TagStringInline:
		body, err := wire.ReadLengthPrefixedBody(d.r)
		if err != nil {
			return value.Value{}, err
		}
		s := string(body)
		d.pool.Observe(s)
		return value.StringOf(s), nil
	case tag == wire.TagStringRef:
		idx, err := wire.ReadUint(d.r)
		if err != nil {
			return value.Value{}, err
		}
		s, err := d.pool.Resolve(idx)
		if err != nil {
			return value.Value{}, err
		}
		return value.StringOf(s), nil
	case tag == wire.TagBuffer:
		body, err := wire.ReadLengthPrefixedBody(d.r)
		if err != nil {
			return value.Value{}, err
		}
		return value.BufferOf(body), nil
	case tag == wire.TagTable:
		return d.decodeTable(depth)
	default:
		return value.Value{}, fmt.Errorf("%w: 0x%02x", errs.ErrBadTag, tag)
	}
}

func (d *Decoder) decodeTable(depth int) (value.Value, error) {
	if depth >= d.maxDepth {
		return value.Value{}, fmt.Errorf("%w: depth %d at or past limit %d", errs.ErrDepthExceeded, depth, d.maxDepth)
	}

	arrayLen, err := wire.ReadUint(d.r)
	if err != nil {
		return value.Value{}, err
	}
	hashLen, err := wire.ReadUint(d.r)
	if err != nil {
		return value.Value{}, err
	}

	t := value.NewTable()
	for i := uint64(0); i < arrayLen; i++ {
		elem, err := d.decodeValue(depth + 1)
		if err != nil {
			return value.Value{}, err
		}
		t.Array = append(t.Array, elem)
	}

	for i := uint64(0); i < hashLen; i++ {
		k, err := d.decodeValue(depth + 1)
		if err != nil {
			return value.Value{}, err
		}
		if k.Kind == value.KindTable {
			return value.Value{}, fmt.Errorf("%w: table keys cannot themselves be tables", errs.ErrUnsupportedType)
		}
		v, err := d.decodeValue(depth + 1)
		if err != nil {
			return value.Value{}, err
		}
		key, ok := value.KeyOf(k)
		if !ok {
			return value.Value{}, fmt.Errorf("%w: nil is not a valid table key", errs.ErrUnsupportedType)
		}
		if t.Hash == nil {
			t.Hash = make(map[value.Key]value.Value, hashLen)
		}
		t.Hash[key] = v
	}

	return value.TableOf(t), nil
}
