package wire

import "github.com/kelindar/svpack/internal/pool"

// Writer accumulates the encoded byte stream for a single Compress call.
// It owns a pooled internal/pool.Buffer; callers must call Release when
// the encoded bytes are no longer needed, or Take to claim ownership of
// the final slice without returning the buffer to the pool.
type Writer struct {
	buf *pool.Buffer
}

// NewWriter returns a Writer backed by a freshly pooled buffer.
func NewWriter() *Writer {
	return &Writer{buf: pool.Get()}
}

// Bytes returns the bytes written so far. The slice is only valid until
// the next write or Release.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.buf.Len() }

// WriteByte appends a single byte.
func (w *Writer) WriteByte(b byte) {
	w.buf.Grow(1)
	w.buf.WriteByte(b)
}

// Write appends data.
func (w *Writer) Write(data []byte) {
	w.buf.Grow(len(data))
	w.buf.Write(data)
}

// Take returns a standalone copy of the written bytes and releases the
// internal buffer back to the pool.
func (w *Writer) Take() []byte {
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())
	pool.Put(w.buf)
	w.buf = nil

	return out
}

// Release returns the internal buffer to the pool without copying it.
// Only safe to call when the caller has no further use for Bytes().
func (w *Writer) Release() {
	if w.buf != nil {
		pool.Put(w.buf)
		w.buf = nil
	}
}

// Reader tracks a read-only position into a decode-side byte slice.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for sequential decoding.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current read offset.
func (r *Reader) Pos() int { return r.pos }

// Len returns the total input length.
func (r *Reader) Len() int { return len(r.data) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// ReadByte consumes and returns the next byte.
func (r *Reader) ReadByte() (byte, bool) {
	if r.pos >= len(r.data) {
		return 0, false
	}
	b := r.data[r.pos]
	r.pos++

	return b, true
}

// ReadN consumes and returns the next n bytes.
func (r *Reader) ReadN(n int) ([]byte, bool) {
	if r.pos+n > len(r.data) {
		return nil, false
	}
	out := r.data[r.pos : r.pos+n]
	r.pos += n

	return out, true
}
