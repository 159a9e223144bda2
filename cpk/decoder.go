package cpk

import (
	"errors"

	"github.com/conspack-go/conspack/errs"
	"github.com/conspack-go/conspack/format"
	"github.com/conspack-go/conspack/header"
	"github.com/conspack-go/conspack/internal/options"
	"github.com/conspack-go/conspack/stream"
	"github.com/conspack-go/conspack/value"
)

// Decoder reads value.Value trees from a stream.Source.
type Decoder struct {
	src      stream.Source
	resolver Resolver
}

// NewDecoder returns a Decoder reading from src, configured by opts (see
// WithDecoderResolver).
func NewDecoder(src stream.Source, opts ...options.Option[*Decoder]) *Decoder {
	d := &Decoder{src: src}
	_ = options.Apply(d, opts...)
	return d
}

// DecodeTree returns a fully resolved tree. On failure it returns a
// value.Value of Kind format.KindError rather than a Go error: the first
// error encountered wins and any partially built parent is closed before
// the error Value is returned.
func (d *Decoder) DecodeTree() *value.Value {
	v, err := d.decodeTreeElement(false, 0)
	if err != nil {
		return d.errorValue(err)
	}
	return v
}

// DecodeOne populates a shell Value with exactly one node's header and
// scalar payload; it never recurses into children. When skipHeader is
// true, preHeader supplies the header byte (the fixed element header of
// a container), and no byte is consumed for it.
func (d *Decoder) DecodeOne(skipHeader bool, preHeader format.Header) (*value.Value, error) {
	return d.decodeOne(skipHeader, preHeader)
}

func (d *Decoder) decodeOne(skipHeader bool, preHeader format.Header) (*value.Value, error) {
	h := preHeader
	if !skipHeader {
		read, err := d.src.ReadUint8()
		if err != nil {
			return nil, err
		}
		h = read
	}

	kind, err := header.Classify(h)
	if err != nil {
		return nil, err
	}

	v := &value.Value{Kind: kind, Header: h}

	switch kind {
	case format.KindBool:
		b, err := d.src.ReadUint8()
		if err != nil {
			return nil, err
		}
		v.BoolVal = b != 0

	case format.KindNumber:
		subtype := format.NumberType(h)
		nk, ok := format.FromSubtype(subtype)
		if !ok {
			return nil, errs.ErrBadHeader
		}
		v.NumKind = nk
		if err := d.readNumberPayload(v); err != nil {
			return nil, err
		}

	case format.KindRational, format.KindComplex:
		// Scalar payload is empty; both children are filled by fillChildren.

	case format.KindString:
		size, err := header.ReadSize(d.src, format.SizeClass(h))
		if err != nil {
			return nil, err
		}
		b, err := d.src.ReadBytes(size)
		if err != nil {
			return nil, err
		}
		v.Str = b

	case format.KindContainer:
		size, err := header.ReadSize(d.src, format.SizeClass(h))
		if err != nil {
			return nil, err
		}
		subtype := format.ContainerSubtypeFromWire(format.ContainerSubtype(h))
		v.ContainerSubtype = subtype
		if subtype.IsMap() {
			size *= 2
		}
		v.Size = size
		if h&format.ContainerFixed != 0 {
			fh, err := d.src.ReadUint8()
			if err != nil {
				return nil, err
			}
			v.HasFixedHeader = true
			v.FixedHeader = fh
		}

	case format.KindRef, format.KindTag:
		base := format.RefByte
		if kind == format.KindTag {
			base = format.TagByte
		}
		if header.RefTagIsInline(h, base) {
			v.RefVal = uint32(header.InlineValue(h))
		} else {
			size, err := header.ReadSize(d.src, format.SizeClass(h))
			if err != nil {
				return nil, err
			}
			v.RefVal = uint32(size)
		}

	case format.KindIndex:
		size, err := header.ReadSize(d.src, format.SizeClass(h))
		if err != nil {
			return nil, err
		}
		v.RefVal = uint32(size)

	case format.KindSymbol:
		v.Keyword = h&format.SymbolKeyword != 0

	case format.KindRemoteRef, format.KindCons, format.KindPackage:
		// No scalar payload; children filled by fillChildren.

	default:
		return nil, errs.ErrBadHeader
	}

	return v, nil
}

func (d *Decoder) readNumberPayload(v *value.Value) error {
	switch v.NumKind {
	case format.NumInt8, format.NumUInt8:
		b, err := d.src.ReadUint8()
		if err != nil {
			return err
		}
		v.NumBits = uint64(b)
	case format.NumInt16, format.NumUInt16:
		b, err := d.src.ReadUint16()
		if err != nil {
			return err
		}
		v.NumBits = uint64(b)
	case format.NumInt32, format.NumUInt32, format.NumSingleFloat:
		b, err := d.src.ReadUint32()
		if err != nil {
			return err
		}
		v.NumBits = uint64(b)
	case format.NumInt64, format.NumUInt64, format.NumDoubleFloat:
		b, err := d.src.ReadUint64()
		if err != nil {
			return err
		}
		v.NumBits = b
	case format.NumInt128, format.NumUInt128:
		b, err := d.src.ReadBytes(16)
		if err != nil {
			return err
		}
		copy(v.Num128[:], b)
	default:
		return errs.ErrBadHeader
	}
	return nil
}

// decodeTreeElement runs decodeOne then, for compound kinds, recursively
// fills children in each compound kind's fixed order. On a child failure
// it closes whatever of the parent was already built and propagates the
// error.
func (d *Decoder) decodeTreeElement(skipHeader bool, preHeader format.Header) (*value.Value, error) {
	v, err := d.decodeOne(skipHeader, preHeader)
	if err != nil {
		return nil, err
	}

	if err := d.fillChildren(v); err != nil {
		_ = v.Close()
		return nil, err
	}
	return v, nil
}

func (d *Decoder) fillChildren(v *value.Value) error {
	switch v.Kind {
	case format.KindRemoteRef:
		inner, err := d.decodeTreeElement(false, 0)
		if err != nil {
			return err
		}
		v.Children = []*value.Value{inner}

	case format.KindCons:
		car, err := d.decodeTreeElement(false, 0)
		if err != nil {
			return err
		}
		cdr, err := d.decodeTreeElement(false, 0)
		if err != nil {
			_ = car.Close()
			return err
		}
		v.Children = []*value.Value{car, cdr}

	case format.KindRational, format.KindComplex:
		first, err := d.decodeTreeElement(false, 0)
		if err != nil {
			return err
		}
		if _, err := value.RequireNumber(first); err != nil {
			_ = first.Close()
			return err
		}
		second, err := d.decodeTreeElement(false, 0)
		if err != nil {
			_ = first.Close()
			return err
		}
		if _, err := value.RequireNumber(second); err != nil {
			_ = first.Close()
			_ = second.Close()
			return err
		}
		v.Children = []*value.Value{first, second}

	case format.KindContainer:
		children := make([]*value.Value, 0, v.Size)
		for i := 0; i < v.Size; i++ {
			var (
				child *value.Value
				err   error
			)
			if v.HasFixedHeader {
				child, err = d.decodeTreeElement(true, v.FixedHeader)
			} else {
				child, err = d.decodeTreeElement(false, 0)
			}
			if err != nil {
				for _, c := range children {
					_ = c.Close()
				}
				return err
			}
			children = append(children, child)
		}
		v.Children = children

	case format.KindPackage:
		name, err := d.decodeTreeElement(false, 0)
		if err != nil {
			return err
		}
		v.Children = []*value.Value{name}

	case format.KindSymbol:
		if v.Keyword {
			name, err := d.decodeTreeElement(false, 0)
			if err != nil {
				return err
			}
			v.Children = []*value.Value{nil, name}
			return nil
		}
		// Wire order is name, then package; Children keeps the semantic
		// [package, name] slot order regardless of read order.
		name, err := d.decodeTreeElement(false, 0)
		if err != nil {
			return err
		}
		pkg, err := d.decodeTreeElement(false, 0)
		if err != nil {
			_ = name.Close()
			return err
		}
		v.Children = []*value.Value{pkg, name}
	}
	return nil
}

// errorValue converts a Go sentinel error from errs into the synthetic
// Error Value, stamping it with the source's current read cursor.
func (d *Decoder) errorValue(err error) *value.Value {
	pos := d.src.Pos()
	kind := value.ErrKindBadType
	switch {
	case errors.Is(err, errs.ErrUnexpectedEOF):
		kind = value.ErrKindEOF
	case errors.Is(err, errs.ErrBadHeader):
		kind = value.ErrKindBadHeader
	case errors.Is(err, errs.ErrBadSize):
		kind = value.ErrKindBadSize
	case errors.Is(err, errs.ErrBadType):
		kind = value.ErrKindBadType
	}
	return value.NewError(kind, err.Error(), 0, pos)
}

// DecodeTree is a package-level convenience wrapping
// NewDecoder(src).DecodeTree().
func DecodeTree(src stream.Source) *value.Value {
	return NewDecoder(src).DecodeTree()
}
