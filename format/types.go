// Package format defines the small set of typed constants that appear in
// svpack's header byte: the compression level and the Level-3 entropy
// algorithm.
package format

// Level identifies which of the three compression levels produced a
// payload.
type Level uint8

const (
	// Level1 is structural encoding only: every value is framed with its
	// tag and narrowest width, strings are always inline.
	Level1 Level = 1
	// Level2 is Level1 plus the string pool.
	Level2 Level = 2
	// Level3 is Level2 followed by an entropy-wrapped byte stream.
	Level3 Level = 3
)

func (l Level) String() string {
	switch l {
	case Level1:
		return "Level1"
	case Level2:
		return "Level2"
	case Level3:
		return "Level3"
	default:
		return "Unknown"
	}
}

// Valid reports whether l is one of the three defined levels.
func (l Level) Valid() bool {
	return l == Level1 || l == Level2 || l == Level3
}

// EntropyAlgo identifies which generic byte-stream compressor wrapped a
// Level-3 payload. Only meaningful when the header's level is Level3.
type EntropyAlgo uint8

const (
	// EntropyAuto is not a wire value; it tells the encoder to try every
	// registered algorithm and keep the smallest result.
	EntropyAuto EntropyAlgo = 0
	// EntropyLZ4 is a sliding-window LZ77-family codec, the first
	// candidate EntropyAuto tries.
	EntropyLZ4 EntropyAlgo = 1
	// EntropyS2 is a Snappy-compatible, decode-optimized codec.
	EntropyS2 EntropyAlgo = 2
	// EntropyZstd is a higher-ratio codec, best on larger buffers.
	EntropyZstd EntropyAlgo = 3
	// EntropyFSST is a learned-symbol-table codec tuned for repetitive
	// structured text, such as the string-heavy payloads this format
	// targets.
	EntropyFSST EntropyAlgo = 4
)

func (a EntropyAlgo) String() string {
	switch a {
	case EntropyAuto:
		return "Auto"
	case EntropyLZ4:
		return "LZ4"
	case EntropyS2:
		return "S2"
	case EntropyZstd:
		return "Zstd"
	case EntropyFSST:
		return "FSST"
	default:
		return "Unknown"
	}
}

// Valid reports whether a is one of the wire-representable algorithms
// (EntropyAuto is an encoder-side request, not a wire value).
func (a EntropyAlgo) Valid() bool {
	switch a {
	case EntropyLZ4, EntropyS2, EntropyZstd, EntropyFSST:
		return true
	default:
		return false
	}
}

// AllEntropyAlgos lists every wire-representable algorithm, in the order
// the encoder tries them when asked to pick the smallest result.
var AllEntropyAlgos = []EntropyAlgo{EntropyLZ4, EntropyS2, EntropyZstd, EntropyFSST}
