// Package stream implements the byte I/O layer of the conspack wire format:
// a growable in-memory sink/source and a raw io.Reader/io.Writer-backed
// sink/source, both exposing the read{8,16,32,64,bytes}/write{8,16,32,64,bytes}
// primitives the header and cpk packages build on.
//
// Multi-byte integers are always big-endian on the wire; stream uses
// endian.GetBigEndianEngine() rather than hand-rolled byte swaps.
package stream

import (
	"github.com/conspack-go/conspack/endian"
)

var wireEndian = endian.GetBigEndianEngine()

// Sink is the write side of the byte I/O layer. Implementations are Buffer
// (growable in-memory) and FD (wraps an io.Writer).
type Sink interface {
	WriteUint8(v uint8) error
	WriteUint16(v uint16) error
	WriteUint32(v uint32) error
	WriteUint64(v uint64) error
	WriteBytes(p []byte) error
}

// Source is the read side of the byte I/O layer. Implementations are
// Reader (wraps a []byte) and FD (wraps an io.Reader). Pos reports the
// current read cursor, used to stamp decode errors with a byte offset.
type Source interface {
	ReadUint8() (uint8, error)
	ReadUint16() (uint16, error)
	ReadUint32() (uint32, error)
	ReadUint64() (uint64, error)
	ReadBytes(n int) ([]byte, error)
	Pos() int
}
