// Package value defines Value, the tagged-sum in-memory representation of
// every decoded or to-be-encoded conspack node, and its recursive
// constructors and destructor.
//
// Value is a flat struct rather than an interface hierarchy: only the
// fields relevant to its Kind are populated, mirroring the tagged C union
// the wire format itself models. This keeps the cpk encoder/decoder free
// of type assertions and keeps zero-value Values inert.
package value

import (
	"github.com/conspack-go/conspack/errs"
	"github.com/conspack-go/conspack/format"
)

// ErrorKind identifies the error taxonomy: EOF, BadHeader, BadSize, BadType.
type ErrorKind uint8

const (
	ErrKindEOF ErrorKind = iota
	ErrKindBadHeader
	ErrKindBadSize
	ErrKindBadType
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindEOF:
		return "EOF"
	case ErrKindBadHeader:
		return "BadHeader"
	case ErrKindBadSize:
		return "BadSize"
	case ErrKindBadType:
		return "BadType"
	default:
		return "Unknown"
	}
}

// Value is the in-memory representation of one conspack node. Children are
// exclusively owned: a Value's Children slice (and nested Values reachable
// from it) belong to it alone, and Close walks the whole owned subtree
// exactly once.
type Value struct {
	Kind   format.Kind
	Header format.Header

	// Bool payload.
	BoolVal bool

	// Number payload. Scalar integers and float bit patterns up to 64
	// bits are carried in NumBits (reinterpreted by the accessors below);
	// 128-bit integers use Num128 instead.
	NumKind format.NumberKind
	NumBits uint64
	Num128  [16]byte

	// String payload. Never nil-terminated; len(Str) is the wire size.
	Str []byte

	// Container payload. Size is the already-doubled pair count for
	// Map/TypedMap; len(Children) == Size.
	ContainerSubtype format.ContainerSubtypeKind
	Size             int
	HasFixedHeader   bool
	FixedHeader      format.Header

	// Ref/Tag/Index payload.
	RefVal uint32

	// Symbol payload.
	Keyword bool

	// Children, meaning depends on Kind:
	//   RemoteRef: [0]=inner
	//   Cons:      [0]=car, [1]=cdr
	//   Rational:  [0]=numerator, [1]=denominator
	//   Complex:   [0]=real, [1]=imaginary
	//   Container: 0..Size-1 elements
	//   Package:   [0]=name
	//   Symbol:    [0]=package (nil if Keyword), [1]=name
	Children []*Value

	// Error payload (Kind == format.KindError).
	ErrKind          ErrorKind
	ErrMessage       string
	ErrOffendingByte byte
	ErrPos           int

	closed bool
}

// NewBool builds a Bool value.
func NewBool(v bool) *Value {
	h := format.BoolByte
	if v {
		h = format.BoolByte | 0x01
	}
	return &Value{Kind: format.KindBool, Header: h, BoolVal: v}
}

// NewInt constructs a signed integer Number of the given kind. k must be
// one of NumInt8/16/32/64.
func NewInt(k format.NumberKind, v int64) *Value {
	return &Value{
		Kind:    format.KindNumber,
		Header:  format.NumberByte | k.Subtype(),
		NumKind: k,
		NumBits: uint64(v),
	}
}

// NewUint constructs an unsigned integer Number of the given kind. k must
// be one of NumUInt8/16/32/64.
func NewUint(k format.NumberKind, v uint64) *Value {
	return &Value{
		Kind:    format.KindNumber,
		Header:  format.NumberByte | k.Subtype(),
		NumKind: k,
		NumBits: v,
	}
}

// NewInt128 constructs a 128-bit signed integer from 16 raw wire octets.
func NewInt128(raw [16]byte) *Value {
	return &Value{Kind: format.KindNumber, Header: format.NumberByte | format.Int128, NumKind: format.NumInt128, Num128: raw}
}

// NewUint128 constructs a 128-bit unsigned integer from 16 raw wire octets.
func NewUint128(raw [16]byte) *Value {
	return &Value{Kind: format.KindNumber, Header: format.NumberByte | format.UInt128, NumKind: format.NumUInt128, Num128: raw}
}

// NewSingleFloat constructs an IEEE-754 binary32 Number.
func NewSingleFloat(v float32) *Value {
	return &Value{
		Kind:    format.KindNumber,
		Header:  format.NumberByte | format.SingleFloat,
		NumKind: format.NumSingleFloat,
		NumBits: uint64(float32bits(v)),
	}
}

// NewDoubleFloat constructs an IEEE-754 binary64 Number.
func NewDoubleFloat(v float64) *Value {
	return &Value{
		Kind:    format.KindNumber,
		Header:  format.NumberByte | format.DoubleFloat,
		NumKind: format.NumDoubleFloat,
		NumBits: float64bits(v),
	}
}

// NewRational builds a Rational from two Number children. Both must be of
// Kind Number; callers that decode untrusted input should use BadType
// checking instead (see cpk), not this constructor.
func NewRational(numerator, denominator *Value) *Value {
	return &Value{
		Kind:     format.KindRational,
		Header:   format.NumberByte | format.Rational,
		Children: []*Value{numerator, denominator},
	}
}

// NewComplex builds a Complex from two Number children (real, imaginary).
func NewComplex(real, imag *Value) *Value {
	return &Value{
		Kind:     format.KindComplex,
		Header:   format.NumberByte | format.ComplexNum,
		Children: []*Value{real, imag},
	}
}

// NewString builds a String value from raw bytes; s is copied.
func NewString(s []byte) *Value {
	cp := make([]byte, len(s))
	copy(cp, s)
	return &Value{Kind: format.KindString, Header: format.StringByte, Str: cp}
}

// NewContainer builds a Container with the given subtype and children.
// Size is always set to len(children): for Map/TypedMap, children must
// already be the flattened key,value,key,value... pair sequence (twice
// the declared pair count), matching what the decoder produces after
// doubling the wire-declared count.
func NewContainer(subtype format.ContainerSubtypeKind, children []*Value, fixedHeader format.Header, hasFixed bool) *Value {
	return &Value{
		Kind:             format.KindContainer,
		Header:           format.ContainerByte | subtype.Wire(),
		ContainerSubtype: subtype,
		Size:             len(children),
		Children:         children,
		HasFixedHeader:   hasFixed,
		FixedHeader:      fixedHeader,
	}
}

// NewRef builds a Ref value. An inline header is used automatically when
// val < 16.
func NewRef(val uint32) *Value {
	return newRefTagIndex(format.KindRef, format.RefByte, val)
}

// NewTag builds a Tag value, inline when val < 16.
func NewTag(val uint32) *Value {
	return newRefTagIndex(format.KindTag, format.TagByte, val)
}

// NewIndex builds an Index value. Index has no inline form.
func NewIndex(val uint32) *Value {
	return &Value{Kind: format.KindIndex, Header: format.IndexByte, RefVal: val}
}

func newRefTagIndex(kind format.Kind, base format.Header, val uint32) *Value {
	h := base
	if val < 16 {
		h |= format.RefTagInline | uint8(val)
	}
	return &Value{Kind: kind, Header: h, RefVal: val}
}

// NewRemoteRef wraps inner as a RemoteRef.
func NewRemoteRef(inner *Value) *Value {
	return &Value{Kind: format.KindRemoteRef, Header: format.RemoteRefByte, Children: []*Value{inner}}
}

// NewCons builds a Cons cell.
func NewCons(car, cdr *Value) *Value {
	return &Value{Kind: format.KindCons, Header: format.ConsByte, Children: []*Value{car, cdr}}
}

// NewPackage wraps a name String as a Package.
func NewPackage(name *Value) *Value {
	return &Value{Kind: format.KindPackage, Header: format.PackageByte, Children: []*Value{name}}
}

// NewSymbol builds a non-keyword Symbol from a package and a name.
func NewSymbol(pkg, name *Value) *Value {
	return &Value{Kind: format.KindSymbol, Header: format.SymbolByte, Children: []*Value{pkg, name}}
}

// NewKeyword builds a keyword Symbol: its package child is implicit and
// absent from the wire.
func NewKeyword(name *Value) *Value {
	return &Value{Kind: format.KindSymbol, Header: format.SymbolByte | format.SymbolKeyword, Keyword: true, Children: []*Value{nil, name}}
}

// NewError builds the synthetic Error variant.
func NewError(kind ErrorKind, message string, offendingByte byte, pos int) *Value {
	return &Value{
		Kind:             format.KindError,
		ErrKind:          kind,
		ErrMessage:       message,
		ErrOffendingByte: offendingByte,
		ErrPos:           pos,
	}
}

// IsError reports whether v is the terminal Error variant. A nil Value is
// not an error; callers must still nil-check separately.
func (v *Value) IsError() bool {
	return v != nil && v.Kind == format.KindError
}

// Int64 reinterprets NumBits as the signed integer the Kind/NumKind imply.
// It is only meaningful when Kind == KindNumber and NumKind is an integer
// kind narrower than 128 bits.
func (v *Value) Int64() int64 {
	switch v.NumKind {
	case format.NumInt8:
		return int64(int8(v.NumBits))
	case format.NumInt16:
		return int64(int16(v.NumBits))
	case format.NumInt32:
		return int64(int32(v.NumBits))
	}
	return int64(v.NumBits)
}

// Uint64 reinterprets NumBits as an unsigned integer.
func (v *Value) Uint64() uint64 {
	return v.NumBits
}

// Float32 reinterprets NumBits as an IEEE-754 binary32 value.
func (v *Value) Float32() float32 {
	return float32frombits(uint32(v.NumBits))
}

// Float64 reinterprets NumBits as an IEEE-754 binary64 value.
func (v *Value) Float64() float64 {
	return float64frombits(v.NumBits)
}

// Car returns a Cons's first child.
func (v *Value) Car() *Value { return v.Children[0] }

// Cdr returns a Cons's second child.
func (v *Value) Cdr() *Value { return v.Children[1] }

// Close recursively releases v and every Value it owns. It is safe to
// call more than once: the second and later calls are no-ops, satisfying
// idempotent destroy without requiring callers to track
// whether a tree was already freed.
func (v *Value) Close() error {
	if v == nil || v.closed {
		return nil
	}
	v.closed = true
	for _, child := range v.Children {
		if child == nil {
			continue
		}
		if err := child.Close(); err != nil {
			return err
		}
	}
	v.Children = nil
	v.Str = nil
	return nil
}

// RequireNumber returns v unchanged if it is a Number, else a BadType
// error. Used by the decoder when assembling Rational/Complex children.
func RequireNumber(v *Value) (*Value, error) {
	if v == nil || v.Kind != format.KindNumber {
		return nil, errs.ErrBadType
	}
	return v, nil
}
