package wire

import (
	"fmt"

	"github.com/kelindar/svpack/errs"
)

// MaxLength is the largest string/buffer length or table count the wire
// format can express: 2^32-1.
const MaxLength = 1<<32 - 1

// WriteStringInline writes a TagStringInline record: tag, u*-encoded
// length, then raw bytes.
func WriteStringInline(w *Writer, s string) error {
	if len(s) > MaxLength {
		return fmt.Errorf("%w: string length %d exceeds %d", errs.ErrSizeLimit, len(s), MaxLength)
	}
	w.WriteByte(TagStringInline)
	if err := WriteUint(w, uint64(len(s))); err != nil {
		return err
	}
	w.Write([]byte(s))

	return nil
}

// WriteStringRef writes a TagStringRef record: tag followed by a
// u*-encoded pool index.
func WriteStringRef(w *Writer, index uint64) error {
	w.WriteByte(TagStringRef)
	return WriteUint(w, index)
}

// WriteBuffer writes a TagBuffer record: tag, u*-encoded length, then raw
// bytes.
func WriteBuffer(w *Writer, b []byte) error {
	if len(b) > MaxLength {
		return fmt.Errorf("%w: buffer length %d exceeds %d", errs.ErrSizeLimit, len(b), MaxLength)
	}
	w.WriteByte(TagBuffer)
	if err := WriteUint(w, uint64(len(b))); err != nil {
		return err
	}
	w.Write(b)

	return nil
}

// ReadLengthPrefixedBody reads a u*-encoded length followed by that many
// raw bytes, shared by TagStringInline and TagBuffer bodies (both already
// had their leading tag consumed by the caller).
func ReadLengthPrefixedBody(r *Reader) ([]byte, error) {
	length, err := ReadUint(r)
	if err != nil {
		return nil, err
	}
	body, ok := r.ReadN(int(length))
	if !ok {
		return nil, errs.ErrTruncated
	}

	return body, nil
}

// InlineCost returns the number of bytes WriteStringInline would emit
// for a string of length n: tag + length field + raw bytes.
func InlineCost(n int) int {
	return 1 + UintWidth(uint64(n)) + n
}

// RefCost returns the number of bytes WriteStringRef would emit for the
// given pool index: tag + index field.
func RefCost(index uint64) int {
	return 1 + UintWidth(index)
}
