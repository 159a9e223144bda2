package stream

import (
	"github.com/conspack-go/conspack/errs"
	"github.com/conspack-go/conspack/internal/pool"
)

// Buffer is a growable in-memory sink, the encode-side counterpart of
// cpk_output_t's buffer mode in the original C implementation. It owns a
// pool.ByteBuffer and grows it by doubling, never by a fixed chunk.
//
// A Buffer is not safe for concurrent use. Obtain one per encode call via
// NewBuffer or AcquireBuffer; release it with Release if acquired from the
// pool.
type Buffer struct {
	bb     *pool.ByteBuffer
	pooled bool
}

// NewBuffer creates a Buffer with the given starting capacity hint.
func NewBuffer(sizeHint int) *Buffer {
	return &Buffer{bb: pool.NewByteBuffer(sizeHint)}
}

// AcquireBuffer fetches a Buffer from the shared pool. Call Release when
// done to return it.
func AcquireBuffer() *Buffer {
	return &Buffer{bb: pool.Get(), pooled: true}
}

// Release returns a pooled Buffer to the shared pool. It is a no-op for
// buffers created with NewBuffer.
func (b *Buffer) Release() {
	if b.pooled {
		pool.Put(b.bb)
		b.bb = nil
	}
}

// Bytes returns the accumulated wire bytes. The slice is only valid until
// the next Write* call triggers a reallocation.
func (b *Buffer) Bytes() []byte {
	return b.bb.Bytes()
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return b.bb.Len()
}

// Reset clears the buffer for reuse without releasing its backing array.
func (b *Buffer) Reset() {
	b.bb.Reset()
}

func (b *Buffer) WriteUint8(v uint8) error {
	return b.bb.WriteByte(v)
}

func (b *Buffer) WriteUint16(v uint16) error {
	b.bb.Grow(2)
	b.bb.B = wireEndian.AppendUint16(b.bb.B, v)
	return nil
}

func (b *Buffer) WriteUint32(v uint32) error {
	b.bb.Grow(4)
	b.bb.B = wireEndian.AppendUint32(b.bb.B, v)
	return nil
}

func (b *Buffer) WriteUint64(v uint64) error {
	b.bb.Grow(8)
	b.bb.B = wireEndian.AppendUint64(b.bb.B, v)
	return nil
}

func (b *Buffer) WriteBytes(p []byte) error {
	_, err := b.bb.Write(p)
	return err
}

var _ Sink = (*Buffer)(nil)

// Reader is an in-memory source backed by a caller-owned byte slice; the
// decode-side counterpart of cpk_input_t's buffer mode. The underlying
// slice is never mutated or retained beyond the Reader's lifetime.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for sequential big-endian decoding.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos reports the current read cursor, the byte offset errors are stamped with.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining reports how many unread bytes are left.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

func (r *Reader) has(n int) bool {
	return r.Remaining() >= n
}

func (r *Reader) ReadUint8() (uint8, error) {
	if !r.has(1) {
		return 0, errs.ErrUnexpectedEOF
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

func (r *Reader) ReadUint16() (uint16, error) {
	if !r.has(2) {
		return 0, errs.ErrUnexpectedEOF
	}
	v := wireEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	if !r.has(4) {
		return 0, errs.ErrUnexpectedEOF
	}
	v := wireEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *Reader) ReadUint64() (uint64, error) {
	if !r.has(8) {
		return 0, errs.ErrUnexpectedEOF
	}
	v := wireEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

// ReadBytes returns a fresh copy of the next n bytes so the caller's Value
// tree never aliases the input slice.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	if !r.has(n) {
		return nil, errs.ErrUnexpectedEOF
	}
	out := make([]byte, n)
	copy(out, r.data[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

var _ Source = (*Reader)(nil)
