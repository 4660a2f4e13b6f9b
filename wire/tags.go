// Package wire implements svpack's Primitive Codec: the tagged,
// variable-width encoding for every scalar Value variant.
//
// Each function here writes or reads exactly one tag-plus-payload record.
// Composite framing (table array/hash counts, string-pool references vs
// pool bookkeeping) lives one layer up, in codec and strpool; this
// package only knows about bytes, widths, and tags.
package wire

// Tag bytes. Integer tags are laid out as two contiguous runs — unsigned
// widths u8..u52, then negative widths n8..n52 — so a tag's membership in
// either run can be checked with a single range comparison.
const (
	TagNil          byte = 0x00
	TagBoolFalse    byte = 0x01
	TagBoolTrue     byte = 0x02
	TagUint8        byte = 0x03
	TagUint16       byte = 0x04
	TagUint24       byte = 0x05
	TagUint32       byte = 0x06
	TagUint40       byte = 0x07
	TagUint48       byte = 0x08
	TagUint52       byte = 0x09
	TagNeg8         byte = 0x0A
	TagNeg16        byte = 0x0B
	TagNeg24        byte = 0x0C
	TagNeg32        byte = 0x0D
	TagNeg40        byte = 0x0E
	TagNeg48        byte = 0x0F
	TagNeg52        byte = 0x10
	TagDouble       byte = 0x11
	TagStringInline byte = 0x12
	TagStringRef    byte = 0x13
	TagBuffer       byte = 0x14
	TagTable        byte = 0x15

	minUintTag byte = TagUint8
	maxUintTag byte = TagUint52
	minNegTag  byte = TagNeg8
	maxNegTag  byte = TagNeg52
	maxKnownTag byte = TagTable
)

// IsUintTag reports whether tag is one of the unsigned integer widths.
func IsUintTag(tag byte) bool { return tag >= minUintTag && tag <= maxUintTag }

// IsNegTag reports whether tag is one of the negative integer widths.
func IsNegTag(tag byte) bool { return tag >= minNegTag && tag <= maxNegTag }

// IsIntTag reports whether tag is any Integer width, signed or not.
func IsIntTag(tag byte) bool { return IsUintTag(tag) || IsNegTag(tag) }

// IsKnownTag reports whether tag is one this codec version defines.
func IsKnownTag(tag byte) bool { return tag <= maxKnownTag }
