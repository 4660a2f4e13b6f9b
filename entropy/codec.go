// Package entropy implements Level-3's generic byte-stream compression
// stage: it wraps the Level-2 encoded stream in a self-checking envelope
// compressed by one of several interchangeable codecs (the generic ones
// implement Codec in this file; FSST is handled in envelope.go), plus an
// "Auto" mode that tries every codec and keeps the smallest result.
package entropy

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/kelindar/svpack/format"
)

// Codec compresses and decompresses a single byte stream. The three
// generic implementations below are self-describing on decode — none of
// them need the original length recorded separately — which is why FSST,
// whose decode needs its learned symbol table, is handled outside this
// interface in envelope.go rather than forced to fit it.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

func codecFor(algo format.EntropyAlgo) (Codec, error) {
	switch algo {
	case format.EntropyLZ4:
		return lz4Codec{}, nil
	case format.EntropyS2:
		return s2Codec{}, nil
	case format.EntropyZstd:
		return zstdCodec{}, nil
	default:
		return nil, fmt.Errorf("entropy: %v has no generic Codec (handled specially)", algo)
	}
}

// lz4Codec uses the frame format rather than the raw block API: frames
// carry their own end-of-stream marker, so decoding needs no pre-sized
// buffer or retry loop.
type lz4Codec struct{}

func (lz4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (lz4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}

type s2Codec struct{}

func (s2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (s2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

type zstdCodec struct{}

func (zstdCodec) Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	return enc.EncodeAll(data, nil), nil
}

func (zstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return dec.DecodeAll(data, nil)
}
