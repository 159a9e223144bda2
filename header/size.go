package header

import (
	"github.com/conspack-go/conspack/errs"
	"github.com/conspack-go/conspack/format"
	"github.com/conspack-go/conspack/stream"
)

// SizeClassFor picks the narrowest size class that can hold n, n being a
// non-negative element/byte count. It never returns format.SizeReserved.
func SizeClassFor(n int) (uint8, error) {
	switch {
	case n < 0:
		return 0, errs.ErrNegativeSize
	case n <= 0xFF:
		return format.Size8, nil
	case n <= 0xFFFF:
		return format.Size16, nil
	case n <= 0xFFFFFFFF:
		return format.Size32, nil
	default:
		return 0, errs.ErrSizeTooLarge
	}
}

// WriteSize writes n to sink using the width named by class. Callers
// determine class via SizeClassFor and embed it in the governing header
// before calling WriteSize.
func WriteSize(sink stream.Sink, class uint8, n int) error {
	switch class {
	case format.Size8:
		return sink.WriteUint8(uint8(n))
	case format.Size16:
		return sink.WriteUint16(uint16(n))
	case format.Size32:
		return sink.WriteUint32(uint32(n))
	default:
		return errs.ErrBadSize
	}
}

// ReadSize reads a size value of the width named by class, as embedded in
// the low 2 bits of a previously-read header. Size class 3 is reserved and
// always rejected.
func ReadSize(src stream.Source, class uint8) (int, error) {
	switch class {
	case format.Size8:
		v, err := src.ReadUint8()
		return int(v), err
	case format.Size16:
		v, err := src.ReadUint16()
		return int(v), err
	case format.Size32:
		v, err := src.ReadUint32()
		return int(v), err
	default:
		return 0, errs.ErrBadSize
	}
}
