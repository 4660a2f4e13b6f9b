// Package endian provides the byte-order engine used to read and write the
// wire format's multi-byte integers and doubles.
//
// The wire format fixes little-endian byte order, so unlike a
// general-purpose binary toolkit this package does not expose byte-order
// detection or a big-endian engine — there is nothing in svpack that
// would use one. It exists as its own package,
// rather than calling encoding/binary directly from wire, so every
// multi-byte field in the codec goes through one named seam.
package endian

import "encoding/binary"

// Engine combines ByteOrder and AppendByteOrder so callers can both read
// fixed-size fields and append to a growing buffer through one value.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LE is the wire format's byte order.
var LE Engine = binary.LittleEndian
