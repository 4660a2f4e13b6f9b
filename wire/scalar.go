package wire

import (
	"fmt"
	"math"

	"github.com/kelindar/svpack/endian"
	"github.com/kelindar/svpack/errs"
)

// uintMax[k] is the largest value a k-byte unsigned width can hold,
// indexed by width class 1..7 (the u8..u52 tag run). Width 7 (u52) is
// capped at 2^52-1, not 2^56-1: the bottom 52 bits carry the value, the
// top 4 are reserved and must be zero.
var uintMax = [8]uint64{
	0,
	1<<8 - 1,
	1<<16 - 1,
	1<<24 - 1,
	1<<32 - 1,
	1<<40 - 1,
	1<<48 - 1,
	1<<52 - 1,
}

// negMagnitudeMax[k] is the largest magnitude a k-byte negative width can
// hold (the n8..n52 tag run). Widths 1..6 hold half of the unsigned
// range; width 7 (n52) is capped at 2^52-1 like u52, so every negative
// Integer whose magnitude fits in 52 bits has an encoding.
var negMagnitudeMax = [8]uint64{
	0,
	1 << 7,
	1 << 15,
	1 << 23,
	1 << 31,
	1 << 39,
	1 << 47,
	1<<52 - 1,
}

var uintTagForWidth = [8]byte{0, TagUint8, TagUint16, TagUint24, TagUint32, TagUint40, TagUint48, TagUint52}
var negTagForWidth = [8]byte{0, TagNeg8, TagNeg16, TagNeg24, TagNeg32, TagNeg40, TagNeg48, TagNeg52}

func uintWidth(v uint64) int {
	for k := 1; k <= 7; k++ {
		if v <= uintMax[k] {
			return k
		}
	}
	return 7 // unreachable for v <= 2^52-1, caller validates range first
}

func negWidth(magnitude uint64) int {
	for k := 1; k <= 7; k++ {
		if magnitude <= negMagnitudeMax[k] {
			return k
		}
	}
	return 7
}

func putLE(w *Writer, v uint64, width int) {
	var b8 [8]byte
	endian.LE.PutUint64(b8[:], v)
	w.Write(b8[:width])
}

func readLE(data []byte) uint64 {
	var b8 [8]byte
	copy(b8[:], data)

	return endian.LE.Uint64(b8[:])
}

// WriteUint writes v as the narrowest unsigned width that fits (tag +
// little-endian body). Used for table counts, string/buffer lengths, and
// string-pool indices — every unsigned-width field outside of signed
// Integer values.
func WriteUint(w *Writer, v uint64) error {
	if v > uintMax[7] {
		return fmt.Errorf("%w: value %d exceeds the format's 52-bit unsigned width", errs.ErrSizeLimit, v)
	}
	k := uintWidth(v)
	w.WriteByte(uintTagForWidth[k])
	putLE(w, v, k)

	return nil
}

// WriteInt writes a signed Integer value using the narrowest width that
// fits its magnitude, choosing the unsigned run for non-negative values
// and the negative run otherwise, always picking the narrowest width
// that fits.
func WriteInt(w *Writer, i int64) error {
	if i >= 0 {
		return WriteUint(w, uint64(i))
	}

	magnitude := uint64(-i)
	if magnitude > negMagnitudeMax[7] {
		return fmt.Errorf("%w: integer %d exceeds the format's 52-bit signed range", errs.ErrUnsupportedType, i)
	}
	k := negWidth(magnitude)
	w.WriteByte(negTagForWidth[k])
	putLE(w, magnitude, k)

	return nil
}

// ReadUint reads a self-contained unsigned field: its own tag followed
// by its width's body bytes. Returns errs.ErrBadTag if the tag isn't one
// of the unsigned widths, and errs.ErrTruncated if input runs out.
func ReadUint(r *Reader) (uint64, error) {
	tag, ok := r.ReadByte()
	if !ok {
		return 0, errs.ErrTruncated
	}
	if !IsUintTag(tag) {
		return 0, fmt.Errorf("%w: expected an unsigned-width tag, got 0x%02x", errs.ErrBadTag, tag)
	}

	return readUintBody(r, tag)
}

func readUintBody(r *Reader, tag byte) (uint64, error) {
	width := int(tag-minUintTag) + 1
	body, ok := r.ReadN(width)
	if !ok {
		return 0, errs.ErrTruncated
	}

	return readLE(body), nil
}

// ReadIntBody decodes the body of an already-consumed Integer tag (either
// an unsigned or a negative width) into a signed int64.
func ReadIntBody(r *Reader, tag byte) (int64, error) {
	switch {
	case IsUintTag(tag):
		v, err := readUintBody(r, tag)
		if err != nil {
			return 0, err
		}

		return int64(v), nil
	case IsNegTag(tag):
		width := int(tag-minNegTag) + 1
		body, ok := r.ReadN(width)
		if !ok {
			return 0, errs.ErrTruncated
		}

		return -int64(readLE(body)), nil
	default:
		return 0, fmt.Errorf("%w: expected an integer tag, got 0x%02x", errs.ErrBadTag, tag)
	}
}

// UintWidth returns the number of body bytes WriteUint would emit for v,
// without writing anything. Used by the string pool to cost-compare an
// inline emission against a pool reference.
func UintWidth(v uint64) int {
	return uintWidth(v)
}

// WriteDouble writes an IEEE-754 binary64 value: tag + 8 little-endian
// bytes.
func WriteDouble(w *Writer, f float64) {
	w.WriteByte(TagDouble)
	var b8 [8]byte
	endian.LE.PutUint64(b8[:], math.Float64bits(f))
	w.Write(b8[:])
}

// ReadDoubleBody decodes the 8-byte body following an already-consumed
// TagDouble.
func ReadDoubleBody(r *Reader) (float64, error) {
	body, ok := r.ReadN(8)
	if !ok {
		return 0, errs.ErrTruncated
	}

	return math.Float64frombits(endian.LE.Uint64(body)), nil
}

// WriteBool writes one of the two boolean tags; booleans have no payload.
func WriteBool(w *Writer, b bool) {
	if b {
		w.WriteByte(TagBoolTrue)
	} else {
		w.WriteByte(TagBoolFalse)
	}
}

// WriteNil writes the Nil tag.
func WriteNil(w *Writer) {
	w.WriteByte(TagNil)
}
