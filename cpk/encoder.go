// Package cpk implements the recursive encoder and decoder that realize
// the conspack wire format: Encoder.Encode walks a value.Value tree and
// writes bytes to a stream.Sink; Decoder.DecodeTree reads a stream.Source
// and rebuilds a value.Value tree, propagating the first error encountered
// as a value.Value of Kind format.KindError.
package cpk

import (
	"github.com/conspack-go/conspack/errs"
	"github.com/conspack-go/conspack/format"
	"github.com/conspack-go/conspack/header"
	"github.com/conspack-go/conspack/internal/options"
	"github.com/conspack-go/conspack/stream"
	"github.com/conspack-go/conspack/value"
)

// Encoder writes value.Value trees to a stream.Sink.
type Encoder struct {
	sink     stream.Sink
	resolver Resolver
}

// NewEncoder returns an Encoder writing to sink, configured by opts (see
// WithResolver).
func NewEncoder(sink stream.Sink, opts ...options.Option[*Encoder]) *Encoder {
	e := &Encoder{sink: sink}
	_ = options.Apply(e, opts...)
	return e
}

// Encode writes v and its entire owned subtree, in the fixed child order
// each compound kind uses. It never mutates v.
func (e *Encoder) Encode(v *value.Value) error {
	if v == nil {
		return errs.ErrNilValue
	}
	if v.IsError() {
		return errs.ErrBadType
	}

	switch v.Kind {
	case format.KindBool:
		return e.encodeBool(v)
	case format.KindNumber:
		return e.encodeNumber(v)
	case format.KindRational, format.KindComplex:
		return e.encodeNumberPair(v)
	case format.KindString:
		return e.encodeString(v)
	case format.KindContainer:
		return e.encodeContainer(v)
	case format.KindRef:
		return e.encodeRefTagIndex(v, format.RefByte, format.RefInlineMask)
	case format.KindTag:
		return e.encodeRefTagIndex(v, format.TagByte, format.TagInlineMask)
	case format.KindIndex:
		return e.encodeIndex(v)
	case format.KindRemoteRef:
		if err := e.sink.WriteUint8(format.RemoteRefByte); err != nil {
			return err
		}
		return e.Encode(v.Children[0])
	case format.KindCons:
		if err := e.sink.WriteUint8(format.ConsByte); err != nil {
			return err
		}
		if err := e.Encode(v.Car()); err != nil {
			return err
		}
		return e.Encode(v.Cdr())
	case format.KindPackage:
		if err := e.sink.WriteUint8(format.PackageByte); err != nil {
			return err
		}
		return e.Encode(v.Children[0])
	case format.KindSymbol:
		return e.encodeSymbol(v)
	default:
		return errs.ErrBadType
	}
}

func (e *Encoder) encodeBool(v *value.Value) error {
	h := format.BoolByte
	var payload uint8
	if v.BoolVal {
		h |= 0x01
		payload = 1
	}
	if err := e.sink.WriteUint8(h); err != nil {
		return err
	}
	return e.sink.WriteUint8(payload)
}

func (e *Encoder) encodeNumber(v *value.Value) error {
	h := format.NumberByte | v.NumKind.Subtype()
	if err := e.sink.WriteUint8(h); err != nil {
		return err
	}

	switch v.NumKind {
	case format.NumInt8, format.NumUInt8:
		return e.sink.WriteUint8(uint8(v.NumBits))
	case format.NumInt16, format.NumUInt16:
		return e.sink.WriteUint16(uint16(v.NumBits))
	case format.NumInt32, format.NumUInt32, format.NumSingleFloat:
		return e.sink.WriteUint32(uint32(v.NumBits))
	case format.NumInt64, format.NumUInt64, format.NumDoubleFloat:
		return e.sink.WriteUint64(v.NumBits)
	case format.NumInt128, format.NumUInt128:
		return e.sink.WriteBytes(v.Num128[:])
	default:
		return errs.ErrBadType
	}
}

// encodeNumberPair encodes Rational (numerator, denominator) or Complex
// (real, imaginary): one header byte, then both Number children in order,
// with no separate length.
func (e *Encoder) encodeNumberPair(v *value.Value) error {
	var subtype uint8
	if v.Kind == format.KindRational {
		subtype = format.Rational
	} else {
		subtype = format.ComplexNum
	}
	if err := e.sink.WriteUint8(format.NumberByte | subtype); err != nil {
		return err
	}
	if err := e.encodeNumberChild(v.Children[0]); err != nil {
		return err
	}
	return e.encodeNumberChild(v.Children[1])
}

// encodeNumberChild checks that a Rational/Complex child is a Number and
// encodes it in full, header byte included, by recursing into Encode.
func (e *Encoder) encodeNumberChild(child *value.Value) error {
	if _, err := value.RequireNumber(child); err != nil {
		return err
	}
	return e.Encode(child)
}

func (e *Encoder) encodeString(v *value.Value) error {
	class, err := header.SizeClassFor(len(v.Str))
	if err != nil {
		return err
	}
	if err := e.sink.WriteUint8(format.StringByte | class); err != nil {
		return err
	}
	if err := header.WriteSize(e.sink, class, len(v.Str)); err != nil {
		return err
	}
	return e.sink.WriteBytes(v.Str)
}

// encodeContainer writes the container header (subtype, size class, FIXED
// bit), the fixed element header byte if present, then each child. When a
// fixed header is present, children's own per-element headers are
// elided. v.Size is always len(v.Children); for Map/TypedMap the wire
// only declares the pair count, so the decoder can double it back to
// len(v.Children) on the way in (the inverse of that doubling happens
// here, not at the caller).
func (e *Encoder) encodeContainer(v *value.Value) error {
	if v.HasFixedHeader {
		for _, child := range v.Children {
			if child.Header != v.FixedHeader {
				return errs.ErrFixedHeaderMismatch
			}
		}
	}

	declaredSize := v.Size
	if v.ContainerSubtype.IsMap() {
		if v.Size%2 != 0 {
			return errs.ErrOddMapSize
		}
		declaredSize = v.Size / 2
	}

	class, err := header.SizeClassFor(declaredSize)
	if err != nil {
		return err
	}

	h := format.ContainerByte | v.ContainerSubtype.Wire() | class
	if v.HasFixedHeader {
		h |= format.ContainerFixed
	}
	if err := e.sink.WriteUint8(h); err != nil {
		return err
	}
	if err := header.WriteSize(e.sink, class, declaredSize); err != nil {
		return err
	}
	if v.HasFixedHeader {
		if err := e.sink.WriteUint8(v.FixedHeader); err != nil {
			return err
		}
	}

	for _, child := range v.Children {
		if v.HasFixedHeader {
			if err := e.encodeElidedHeader(child); err != nil {
				return err
			}
			continue
		}
		if err := e.Encode(child); err != nil {
			return err
		}
	}
	return nil
}

// encodeElidedHeader writes a fixed-header container element's payload
// without its leading header byte, since the container already wrote one
// shared header for all elements.
func (e *Encoder) encodeElidedHeader(child *value.Value) error {
	full := NewEncoder(stream.NewBuffer(8))
	if err := full.Encode(child); err != nil {
		return err
	}
	payload := full.sink.(*stream.Buffer).Bytes()
	if len(payload) == 0 || payload[0] != child.Header {
		return errs.ErrFixedHeaderMismatch
	}
	return e.sink.WriteBytes(payload[1:])
}

func (e *Encoder) encodeRefTagIndex(v *value.Value, base format.Header, inlineMask format.Header) error {
	if v.RefVal < 16 {
		return e.sink.WriteUint8(base | format.RefTagInline | uint8(v.RefVal))
	}
	class, err := header.SizeClassFor(int(v.RefVal))
	if err != nil {
		return err
	}
	if err := e.sink.WriteUint8(base | class); err != nil {
		return err
	}
	return header.WriteSize(e.sink, class, int(v.RefVal))
}

func (e *Encoder) encodeIndex(v *value.Value) error {
	class, err := header.SizeClassFor(int(v.RefVal))
	if err != nil {
		return err
	}
	if err := e.sink.WriteUint8(format.IndexByte | class); err != nil {
		return err
	}
	return header.WriteSize(e.sink, class, int(v.RefVal))
}

// encodeSymbol writes a Symbol. Wire order for a non-keyword Symbol is
// name then package, matching the read order in decoder.go's fillChildren
// (DESIGN.md, Open Question decisions item 4, records why); the Children
// slice itself stays in semantic [package, name] order.
func (e *Encoder) encodeSymbol(v *value.Value) error {
	h := format.SymbolByte
	if v.Keyword {
		h |= format.SymbolKeyword
	}
	if err := e.sink.WriteUint8(h); err != nil {
		return err
	}
	if v.Keyword {
		return e.Encode(v.Children[1])
	}
	if err := e.Encode(v.Children[1]); err != nil {
		return err
	}
	return e.Encode(v.Children[0])
}

// Encode is a package-level convenience wrapping NewEncoder(sink).Encode(v).
func Encode(v *value.Value, sink stream.Sink) error {
	return NewEncoder(sink).Encode(v)
}
