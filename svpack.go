// Package svpack implements a structured-value compressor: a binary
// codec for dynamically-typed values (nil, bool, integer, double,
// string, buffer, and Lua-style array/hash tables) with three
// compression levels.
//
// Level 1 only adds the tag-plus-width framing described in the wire
// package, with every integer in its narrowest width. Level 2 layers in
// the string pool. Level 3 wraps a Level 2 stream in one of several generic
// entropy codecs, picking whichever is smallest.
//
//	data, err := svpack.Compress(v, format.Level2)
//	back, err := svpack.Decompress(data)
package svpack

import (
	"fmt"

	"github.com/kelindar/svpack/codec"
	"github.com/kelindar/svpack/entropy"
	"github.com/kelindar/svpack/errs"
	"github.com/kelindar/svpack/format"
	"github.com/kelindar/svpack/internal/options"
	"github.com/kelindar/svpack/section"
	"github.com/kelindar/svpack/value"
	"github.com/kelindar/svpack/wire"
)

// DefaultMaxDepth is the recursion bound applied to nested tables when no
// WithMaxDepth option is given.
const DefaultMaxDepth = 64

type config struct {
	maxDepth     int
	entropyAlgo  format.EntropyAlgo
	poolDisabled bool
}

func defaultConfig() *config {
	return &config{
		maxDepth:    DefaultMaxDepth,
		entropyAlgo: format.EntropyAuto,
	}
}

// Option configures Compress or Decompress.
type Option = options.Option[*config]

// WithMaxDepth overrides the default recursion bound for nested tables.
func WithMaxDepth(n int) Option {
	return options.NoError(func(c *config) { c.maxDepth = n })
}

// WithEntropyAlgo pins Level 3 to a single entropy algorithm instead of
// trying every candidate and keeping the smallest. Ignored at Level 1 and
// Level 2.
func WithEntropyAlgo(algo format.EntropyAlgo) Option {
	return options.NoError(func(c *config) { c.entropyAlgo = algo })
}

// WithPoolDisabled forces string handling to stay inline-only, as if no
// string pool existed. Integer widths are unaffected: every level uses
// the narrowest width.
func WithPoolDisabled() Option {
	return options.NoError(func(c *config) { c.poolDisabled = true })
}

// Stats reports the outcome of a Compress call, useful for monitoring
// save-file or network-payload sizes.
type Stats struct {
	Level          format.Level
	EntropyAlgo    format.EntropyAlgo // only meaningful when Level == format.Level3
	OriginalSize   int
	CompressedSize int
}

// Ratio returns CompressedSize / OriginalSize; values below 1.0 indicate
// a net size reduction.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the percentage of the original size Compress
// removed; it is negative when the payload came out larger.
func (s Stats) SpaceSavings() float64 {
	return (1 - s.Ratio()) * 100
}

// Compress encodes v at the given level and returns the framed payload.
func Compress(v value.Value, level format.Level, opts ...Option) ([]byte, error) {
	data, _, err := CompressStats(v, level, opts...)
	return data, err
}

// CompressStats is Compress plus a Stats report of the outcome.
func CompressStats(v value.Value, level format.Level, opts ...Option) ([]byte, Stats, error) {
	if !level.Valid() {
		return nil, Stats{}, fmt.Errorf("%w: level %d", errs.ErrInvalidHeader, level)
	}

	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, Stats{}, err
	}

	body := wire.NewWriter()
	enc := codec.NewEncoder(body, level, cfg.maxDepth, cfg.poolDisabled)
	if err := enc.EncodeValue(v); err != nil {
		body.Release()
		return nil, Stats{}, err
	}
	bodyBytes := body.Take()

	stats := Stats{Level: level, OriginalSize: len(bodyBytes)}

	if level != format.Level3 {
		hdr := section.Header{Level: level}
		out := make([]byte, 0, 1+len(bodyBytes))
		out = append(out, hdr.Byte())
		out = append(out, bodyBytes...)
		stats.CompressedSize = len(out)

		return out, stats, nil
	}

	wrapped, chosen, err := entropy.Wrap(bodyBytes, cfg.entropyAlgo)
	if err != nil {
		return nil, Stats{}, err
	}

	hdr := section.Header{Level: format.Level3, Algo: chosen}
	out := make([]byte, 0, 1+len(wrapped))
	out = append(out, hdr.Byte())
	out = append(out, wrapped...)

	stats.EntropyAlgo = chosen
	stats.CompressedSize = len(out)

	return out, stats, nil
}

// Decompress decodes a payload produced by Compress.
func Decompress(data []byte, opts ...Option) (value.Value, error) {
	if len(data) == 0 {
		return value.Value{}, errs.ErrEmptyInput
	}

	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return value.Value{}, err
	}

	hdr, err := section.ParseHeader(data[0])
	if err != nil {
		return value.Value{}, err
	}

	body := data[1:]
	if hdr.Level == format.Level3 {
		body, err = entropy.Unwrap(body, hdr.Algo)
		if err != nil {
			return value.Value{}, err
		}
	}

	r := wire.NewReader(body)
	dec := codec.NewDecoder(r, cfg.maxDepth)
	v, err := dec.DecodeValue()
	if err != nil {
		return value.Value{}, err
	}
	if r.Remaining() != 0 {
		return value.Value{}, errs.ErrTrailingGarbage
	}

	return v, nil
}

// DetectLevel reports the compression level of a payload without
// decoding its body, so a caller can decide whether to accept a Level 3
// stream before paying for a full decode.
func DetectLevel(data []byte) (format.Level, error) {
	if len(data) == 0 {
		return 0, errs.ErrEmptyInput
	}

	hdr, err := section.ParseHeader(data[0])
	if err != nil {
		return 0, err
	}

	return hdr.Level, nil
}
