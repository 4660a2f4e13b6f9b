// Package strpool implements svpack's String Pool: the per-call,
// emit-order-indexed registry that lets Level 2 and Level 3
// collapse repeated strings and table keys into short back-references.
//
// Both sides stay single-pass. The encoder's Encoder registers every
// distinct string the first time it's seen and chooses, per occurrence,
// whichever of an inline emission or a reference costs fewer bytes. The
// decoder's Decoder never sees a separate pool table on the wire — it
// rebuilds the same ordered list by appending each StringInline payload
// as it's read.
package strpool

import (
	"fmt"

	"github.com/kelindar/svpack/errs"
	"github.com/kelindar/svpack/wire"
)

// Encoder tracks first-seen indices for strings emitted during one
// Compress call.
type Encoder struct {
	index    map[string]uint64
	next     uint64
	disabled bool
}

// NewEncoder creates an encoder-side pool. When disabled is true, Emit
// always writes an inline string and never registers or references —
// this is Level 1's behavior, and also what WithPoolDisabled asks of
// Levels 2 and 3.
func NewEncoder(disabled bool) *Encoder {
	e := &Encoder{disabled: disabled}
	if !disabled {
		e.index = make(map[string]uint64)
	}

	return e
}

// Emit writes s to w, either inline or as a pool reference, whichever is
// fewer bytes. Ties favor the reference.
func (e *Encoder) Emit(w *wire.Writer, s string) error {
	if e.disabled {
		return wire.WriteStringInline(w, s)
	}

	if idx, seen := e.index[s]; seen {
		if wire.RefCost(idx) <= wire.InlineCost(len(s)) {
			return wire.WriteStringRef(w, idx)
		}

		// The decoder appends every inline string to its list, so this
		// re-emission takes up a pool index as well.
		e.next++
		return wire.WriteStringInline(w, s)
	}

	idx := e.next
	e.next++
	e.index[s] = idx

	return wire.WriteStringInline(w, s)
}

// Decoder rebuilds the pool on the fly from the StringInline payloads it
// observes, in emit order, so a StringRef(k) always resolves against the
// list exactly as it stood when the encoder wrote that reference.
type Decoder struct {
	entries []string
}

// NewDecoder creates an empty decoder-side pool.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Observe records a decoded inline string's value at the next pool index.
// Must be called for every StringInline the decoder reads, in read order,
// regardless of compression level — harmless bookkeeping at Level 1,
// required at Levels 2 and 3.
func (d *Decoder) Observe(s string) {
	d.entries = append(d.entries, s)
}

// Resolve looks up the string a StringRef(index) refers to.
func (d *Decoder) Resolve(index uint64) (string, error) {
	if index >= uint64(len(d.entries)) {
		return "", fmt.Errorf("%w: index %d, pool has %d entries", errs.ErrBadPoolIndex, index, len(d.entries))
	}

	return d.entries[index], nil
}
