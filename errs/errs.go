// Package errs defines the sentinel errors returned by svpack's encode and
// decode paths.
//
// Every error below corresponds to one of the codec's distinct failure
// kinds. Callers should use errors.Is against these sentinels rather
// than comparing error strings; functions that return them wrap
// additional context with fmt.Errorf("%w: ...", errs.ErrXxx, ...).
package errs

import "errors"

var (
	// ErrUnsupportedType is returned when a Value's runtime shape falls
	// outside the supported set, or when an Integer's magnitude exceeds
	// the wire format's 52-bit range.
	ErrUnsupportedType = errors.New("svpack: unsupported value type")

	// ErrDepthExceeded is returned when encoding or decoding a table
	// would recurse past the configured maximum depth.
	ErrDepthExceeded = errors.New("svpack: maximum recursion depth exceeded")

	// ErrSizeLimit is returned when a string, buffer, array, or hash
	// count would not fit in the format's 32-bit length fields.
	ErrSizeLimit = errors.New("svpack: length exceeds format size limit")

	// ErrTruncated is returned when the decoder runs past the end of
	// the input before a value is fully read.
	ErrTruncated = errors.New("svpack: truncated input")

	// ErrBadTag is returned when the decoder reads a tag byte it does
	// not recognize.
	ErrBadTag = errors.New("svpack: unknown tag byte")

	// ErrBadPoolIndex is returned when a string-pool reference points
	// past the pool's current high-water mark.
	ErrBadPoolIndex = errors.New("svpack: pool reference out of range")

	// ErrEntropyError is returned when Level-3 entropy decoding fails
	// its self-check or the underlying codec reports corruption.
	ErrEntropyError = errors.New("svpack: entropy stream failed self-check")

	// ErrTrailingGarbage is returned when a top-level decode finishes
	// before all input bytes were consumed.
	ErrTrailingGarbage = errors.New("svpack: trailing bytes after decoded value")

	// ErrInvalidHeader is returned when the leading header byte encodes
	// an unknown level or entropy algorithm.
	ErrInvalidHeader = errors.New("svpack: invalid header byte")

	// ErrEmptyInput is returned by Decompress and DetectLevel when given
	// a zero-length payload.
	ErrEmptyInput = errors.New("svpack: empty input")
)
