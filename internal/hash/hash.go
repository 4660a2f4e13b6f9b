// Package hash provides the digest used to self-check Level-3 entropy
// decoding.
//
// This format has no metric identifiers to hash; the algorithm instead
// digests the plaintext Level-2 byte stream before it's handed to an
// entropy codec, so the decoder can detect a corrupted or mismatched
// compressed payload rather than trust the inner codec's own framing.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 digest of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
