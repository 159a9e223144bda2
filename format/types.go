// Package format defines the wire-level constants for the conspack binary
// format: header bytes and masks, size classes, and the per-kind subtype
// codes embedded in header low bits.
//
// Nothing in this package reads or writes bytes; it only names the bit
// layout that header and cpk interpret.
package format

// Header is a raw wire header byte. Its bit layout selects a Kind and,
// depending on Kind, embeds further sub-fields (size class, subtype,
// inline payload, container flags).
type Header = uint8

// Header byte values and masks, per the wire format.
//
// Classification must test in this order: RemoteRef exact byte, then
// Ref/Tag/Index by their top-3-bit patterns, then the 0x80 block exact
// bytes, then the top-nibble family. See Classify in header/classify.go.
const (
	BoolByte      Header = 0x00
	BoolMask      Header = 0xFE
	NumberByte    Header = 0x10
	NumberMask    Header = 0xF0
	ContainerByte Header = 0x20
	ContainerMask Header = 0xE0
	StringByte    Header = 0x40
	StringMask    Header = 0xFC
	RefByte       Header = 0x60
	RefMask       Header = 0xFC
	RefInlineMask Header = 0xF0
	RemoteRefByte Header = 0x64
	RemoteRefMask Header = 0xFF
	TagByte       Header = 0xE0
	TagMask       Header = 0xFC
	TagInlineMask Header = 0xF0
	ConsByte      Header = 0x80
	ConsMask      Header = 0xFF
	PackageByte   Header = 0x81
	PackageMask   Header = 0xFF
	SymbolByte    Header = 0x82
	SymbolMask    Header = 0xFE
	IndexByte     Header = 0xA0
	IndexMask     Header = 0xE0
)

// Size class bits (low 2 bits of String/Ref/Tag/Index/Container headers).
const (
	Size8        uint8 = 0x00
	Size16       uint8 = 0x01
	Size32       uint8 = 0x02
	SizeReserved uint8 = 0x03
	SizeMask     uint8 = 0x03
)

// Container subtype bits (bits 3-4) and flags (bit 2).
const (
	ContainerVector   uint8 = 0x00
	ContainerList     uint8 = 0x08
	ContainerMapKind  uint8 = 0x10
	ContainerTMap     uint8 = 0x18
	ContainerTypeMask uint8 = 0x18
	ContainerFixed    uint8 = 0x04
)

// Ref/Tag inline flag and Symbol keyword flag.
const (
	RefTagInline  uint8 = 0x10
	SymbolKeyword uint8 = 0x01
)

// Number subtype codes (low nibble of a Number header).
const (
	Int8        uint8 = 0x0
	Int16       uint8 = 0x1
	Int32       uint8 = 0x2
	Int64       uint8 = 0x3
	UInt8       uint8 = 0x4
	UInt16      uint8 = 0x5
	UInt32      uint8 = 0x6
	UInt64      uint8 = 0x7
	SingleFloat uint8 = 0x8
	DoubleFloat uint8 = 0x9
	Int128      uint8 = 0xA
	UInt128     uint8 = 0xB
	ComplexNum  uint8 = 0xC
	Rational    uint8 = 0xF

	NumberTypeMask uint8 = 0x0F
)

// NumberType returns the numeric subtype embedded in a Number header's low
// nibble.
func NumberType(h Header) uint8 {
	return h & NumberTypeMask
}

// ContainerSubtype returns the container subtype embedded in a Container
// header's bits 3-4.
func ContainerSubtype(h Header) uint8 {
	return h & ContainerTypeMask
}

// SizeClass returns the size class embedded in a header's low 2 bits.
func SizeClass(h Header) uint8 {
	return h & SizeMask
}
