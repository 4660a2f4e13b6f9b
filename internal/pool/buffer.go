// Package pool provides a pooled, growable byte buffer used as the
// encode-side scratch space for every Compress call.
//
// A single buffer tier is enough here: unlike a columnar time-series
// format writing many independently-sized payload sections, svpack
// produces exactly one framed byte stream per call, so there is no
// blob-vs-blob-set size split to pool separately.
package pool

import "sync"

const (
	// DefaultSize is the initial capacity handed out by the pool. Most
	// save-file/network-payload values compress well under this before
	// the first growth.
	DefaultSize = 4 * 1024

	// MaxThreshold is the largest buffer capacity retained in the pool;
	// larger buffers are discarded on Put rather than bloating the pool.
	MaxThreshold = 256 * 1024
)

// Buffer is a growable byte slice wrapper with an amortized growth
// strategy tuned for the small-to-medium payloads this codec produces.
type Buffer struct {
	B []byte
}

// New creates a Buffer with the given initial capacity.
func New(capacity int) *Buffer {
	return &Buffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the buffer's current contents.
func (b *Buffer) Bytes() []byte { return b.B }

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.B) }

// Reset empties the buffer while keeping its backing array.
func (b *Buffer) Reset() { b.B = b.B[:0] }

// Write appends data, growing the backing array if needed.
func (b *Buffer) Write(data []byte) {
	b.B = append(b.B, data...)
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) {
	b.B = append(b.B, c)
}

// Grow ensures the buffer has room for at least n more bytes without a
// reallocation, using a size-dependent growth factor: a fixed chunk for
// small buffers, a fraction of current capacity once the buffer is
// already large.
func (b *Buffer) Grow(n int) {
	available := cap(b.B) - len(b.B)
	if available >= n {
		return
	}

	growBy := DefaultSize
	if cap(b.B) > 4*DefaultSize {
		growBy = cap(b.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(b.B), len(b.B)+growBy)
	copy(newBuf, b.B)
	b.B = newBuf
}

var bufPool = sync.Pool{
	New: func() any { return New(DefaultSize) },
}

// Get retrieves a reset Buffer from the pool.
func Get() *Buffer {
	buf, _ := bufPool.Get().(*Buffer)
	return buf
}

// Put returns a Buffer to the pool, discarding it instead if it grew
// past MaxThreshold so one outsized payload doesn't bloat the pool for
// every subsequent call.
func Put(b *Buffer) {
	if b == nil {
		return
	}
	if cap(b.B) > MaxThreshold {
		return
	}
	b.Reset()
	bufPool.Put(b)
}
