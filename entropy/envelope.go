package entropy

import (
	"fmt"

	fsst "github.com/axiomhq/fsst"

	"github.com/kelindar/svpack/errs"
	"github.com/kelindar/svpack/format"
	"github.com/kelindar/svpack/internal/hash"
	"github.com/kelindar/svpack/wire"
)

// Wrap compresses data with algo and frames it as:
//
//	[u* tableLen][tableBytes][u* decompressedLen][8-byte xxhash64][u* payloadLen][payload]
//
// tableBytes is only non-empty for EntropyFSST, where it holds the
// trained symbol table the decoder needs to reverse the encoding; the
// other three algorithms are self-describing and leave it empty.
//
// If algo is format.EntropyAuto, Wrap tries every format.AllEntropyAlgos
// entry and returns whichever produces the smallest envelope, along with
// which algorithm won.
func Wrap(data []byte, algo format.EntropyAlgo) (wrapped []byte, chosen format.EntropyAlgo, err error) {
	if algo != format.EntropyAuto {
		wrapped, err = wrapOne(data, algo)
		return wrapped, algo, err
	}

	var best []byte
	var bestAlgo format.EntropyAlgo
	for _, candidate := range format.AllEntropyAlgos {
		out, err := wrapOne(data, candidate)
		if err != nil {
			return nil, 0, err
		}
		if best == nil || len(out) < len(best) {
			best = out
			bestAlgo = candidate
		}
	}

	return best, bestAlgo, nil
}

func wrapOne(data []byte, algo format.EntropyAlgo) ([]byte, error) {
	var tableBytes, payload []byte
	var err error

	if algo == format.EntropyFSST {
		tbl := fsst.Train([][]byte{data})
		tableBytes, err = tbl.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("entropy: marshaling fsst table: %w", err)
		}
		payload = tbl.EncodeAll(data)
	} else {
		codec, cerr := codecFor(algo)
		if cerr != nil {
			return nil, cerr
		}
		payload, err = codec.Compress(data)
	}
	if err != nil {
		return nil, fmt.Errorf("entropy: %v compression: %w", algo, err)
	}

	w := wire.NewWriter()
	if err := wire.WriteUint(w, uint64(len(tableBytes))); err != nil {
		return nil, err
	}
	w.Write(tableBytes)
	if err := wire.WriteUint(w, uint64(len(data))); err != nil {
		return nil, err
	}
	var digest [8]byte
	putDigest(&digest, hash.Sum64(data))
	w.Write(digest[:])
	if err := wire.WriteUint(w, uint64(len(payload))); err != nil {
		return nil, err
	}
	w.Write(payload)

	return w.Take(), nil
}

// Unwrap reverses Wrap for the payload written under algo, verifying the
// xxhash64 self-check digest before returning the decompressed bytes.
func Unwrap(data []byte, algo format.EntropyAlgo) ([]byte, error) {
	r := wire.NewReader(data)

	tableLen, err := wire.ReadUint(r)
	if err != nil {
		return nil, err
	}
	tableBytes, ok := r.ReadN(int(tableLen))
	if !ok {
		return nil, errs.ErrTruncated
	}

	decompLen, err := wire.ReadUint(r)
	if err != nil {
		return nil, err
	}
	digestBytes, ok := r.ReadN(8)
	if !ok {
		return nil, errs.ErrTruncated
	}
	wantDigest := getDigest(digestBytes)

	payloadLen, err := wire.ReadUint(r)
	if err != nil {
		return nil, err
	}
	payload, ok := r.ReadN(int(payloadLen))
	if !ok {
		return nil, errs.ErrTruncated
	}

	var out []byte
	if algo == format.EntropyFSST {
		var tbl fsst.Table
		if err := tbl.UnmarshalBinary(tableBytes); err != nil {
			return nil, fmt.Errorf("%w: unmarshaling fsst table: %v", errs.ErrEntropyError, err)
		}
		out = tbl.DecodeAll(payload)
	} else {
		codec, cerr := codecFor(algo)
		if cerr != nil {
			return nil, cerr
		}
		out, err = codec.Decompress(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v decompression: %v", errs.ErrEntropyError, algo, err)
		}
	}

	if uint64(len(out)) != decompLen {
		return nil, fmt.Errorf("%w: decompressed length %d, envelope declared %d", errs.ErrEntropyError, len(out), decompLen)
	}
	if hash.Sum64(out) != wantDigest {
		return nil, fmt.Errorf("%w: xxhash64 mismatch", errs.ErrEntropyError)
	}
	if r.Remaining() != 0 {
		return nil, errs.ErrTrailingGarbage
	}

	return out, nil
}

func putDigest(b *[8]byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

func getDigest(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}

	return v
}
