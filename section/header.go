// Package section encodes and decodes svpack's one-byte payload header.
//
// Every compressed payload starts with this header byte: the low two
// bits carry the compression level, and three more bits
// carry the Level-3 entropy algorithm when the level is Level3. The
// remaining bits are reserved and must be zero.
package section

import (
	"fmt"

	"github.com/kelindar/svpack/errs"
	"github.com/kelindar/svpack/format"
)

const (
	levelMask       = 0x03
	entropyAlgoMask = 0x1C
	entropyAlgoBit  = 2
	reservedMask    = ^byte(levelMask | entropyAlgoMask)
)

// Header is the decoded form of the leading header byte.
type Header struct {
	Level format.Level
	Algo  format.EntropyAlgo // only meaningful when Level == format.Level3
}

// Byte packs h into the single header byte written at the start of a
// compressed payload.
func (h Header) Byte() byte {
	b := byte(h.Level) & levelMask
	if h.Level == format.Level3 {
		b |= (byte(h.Algo) << entropyAlgoBit) & entropyAlgoMask
	}

	return b
}

// ParseHeader decodes the header byte b.
func ParseHeader(b byte) (Header, error) {
	if b&reservedMask != 0 {
		return Header{}, fmt.Errorf("%w: reserved bits set in header byte 0x%02x", errs.ErrInvalidHeader, b)
	}

	level := format.Level(b & levelMask)
	if !level.Valid() {
		return Header{}, fmt.Errorf("%w: unknown level %d in header byte 0x%02x", errs.ErrInvalidHeader, level, b)
	}

	h := Header{Level: level}
	if level == format.Level3 {
		algo := format.EntropyAlgo((b & entropyAlgoMask) >> entropyAlgoBit)
		if !algo.Valid() {
			return Header{}, fmt.Errorf("%w: unknown entropy algorithm %d in header byte 0x%02x", errs.ErrInvalidHeader, algo, b)
		}
		h.Algo = algo
	}

	return h, nil
}
