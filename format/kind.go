package format

// Kind identifies which Value variant a decoded or in-memory node holds.
// It is distinct from the raw wire Header: several headers collapse to the
// same Kind (e.g. every Ref header, inline or sized, is KindRef), and Kind
// also names the synthetic Error variant that has no single wire header.
type Kind uint8

const (
	KindBool Kind = iota
	KindNumber
	KindRational
	KindComplex
	KindString
	KindContainer
	KindRef
	KindTag
	KindIndex
	KindRemoteRef
	KindCons
	KindPackage
	KindSymbol
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindRational:
		return "Rational"
	case KindComplex:
		return "Complex"
	case KindString:
		return "String"
	case KindContainer:
		return "Container"
	case KindRef:
		return "Ref"
	case KindTag:
		return "Tag"
	case KindIndex:
		return "Index"
	case KindRemoteRef:
		return "RemoteRef"
	case KindCons:
		return "Cons"
	case KindPackage:
		return "Package"
	case KindSymbol:
		return "Symbol"
	case KindError:
		return "Error"
	default:
		return "Unknown"
	}
}

// NumberKind identifies the scalar representation of a Number value.
type NumberKind uint8

const (
	NumInt8 NumberKind = iota
	NumInt16
	NumInt32
	NumInt64
	NumUInt8
	NumUInt16
	NumUInt32
	NumUInt64
	NumSingleFloat
	NumDoubleFloat
	NumInt128
	NumUInt128
)

func (n NumberKind) String() string {
	switch n {
	case NumInt8:
		return "Int8"
	case NumInt16:
		return "Int16"
	case NumInt32:
		return "Int32"
	case NumInt64:
		return "Int64"
	case NumUInt8:
		return "UInt8"
	case NumUInt16:
		return "UInt16"
	case NumUInt32:
		return "UInt32"
	case NumUInt64:
		return "UInt64"
	case NumSingleFloat:
		return "SingleFloat"
	case NumDoubleFloat:
		return "DoubleFloat"
	case NumInt128:
		return "Int128"
	case NumUInt128:
		return "UInt128"
	default:
		return "Unknown"
	}
}

// ByteWidth returns the on-wire scalar width of n, in bytes. Rational and
// Complex are not NumberKind values: they are represented as two nested
// Number children instead of a scalar payload.
func (n NumberKind) ByteWidth() int {
	switch n {
	case NumInt8, NumUInt8:
		return 1
	case NumInt16, NumUInt16:
		return 2
	case NumInt32, NumUInt32, NumSingleFloat:
		return 4
	case NumInt64, NumUInt64, NumDoubleFloat:
		return 8
	case NumInt128, NumUInt128:
		return 16
	default:
		return 0
	}
}

// FromSubtype maps a wire number subtype nibble to a NumberKind, reporting
// ok=false for Complex/Rational (not scalar) or an unrecognized nibble.
func FromSubtype(subtype uint8) (NumberKind, bool) {
	switch subtype {
	case Int8:
		return NumInt8, true
	case Int16:
		return NumInt16, true
	case Int32:
		return NumInt32, true
	case Int64:
		return NumInt64, true
	case UInt8:
		return NumUInt8, true
	case UInt16:
		return NumUInt16, true
	case UInt32:
		return NumUInt32, true
	case UInt64:
		return NumUInt64, true
	case SingleFloat:
		return NumSingleFloat, true
	case DoubleFloat:
		return NumDoubleFloat, true
	case Int128:
		return NumInt128, true
	case UInt128:
		return NumUInt128, true
	default:
		return 0, false
	}
}

// Subtype returns the wire nibble for n.
func (n NumberKind) Subtype() uint8 {
	switch n {
	case NumInt8:
		return Int8
	case NumInt16:
		return Int16
	case NumInt32:
		return Int32
	case NumInt64:
		return Int64
	case NumUInt8:
		return UInt8
	case NumUInt16:
		return UInt16
	case NumUInt32:
		return UInt32
	case NumUInt64:
		return UInt64
	case NumSingleFloat:
		return SingleFloat
	case NumDoubleFloat:
		return DoubleFloat
	case NumInt128:
		return Int128
	case NumUInt128:
		return UInt128
	default:
		return 0
	}
}

// ContainerSubtypeKind identifies the four container flavors.
type ContainerSubtypeKind uint8

const (
	ContainerKindVector ContainerSubtypeKind = iota
	ContainerKindList
	ContainerKindMap
	ContainerKindTypedMap
)

func (c ContainerSubtypeKind) String() string {
	switch c {
	case ContainerKindVector:
		return "Vector"
	case ContainerKindList:
		return "List"
	case ContainerKindMap:
		return "Map"
	case ContainerKindTypedMap:
		return "TypedMap"
	default:
		return "Unknown"
	}
}

// Wire returns the wire subtype bits for c.
func (c ContainerSubtypeKind) Wire() uint8 {
	switch c {
	case ContainerKindVector:
		return ContainerVector
	case ContainerKindList:
		return ContainerList
	case ContainerKindMap:
		return ContainerMapKind
	case ContainerKindTypedMap:
		return ContainerTMap
	default:
		return ContainerVector
	}
}

// IsMap reports whether c carries key/value pairs (so its declared element
// count must be doubled on decode).
func (c ContainerSubtypeKind) IsMap() bool {
	return c == ContainerKindMap || c == ContainerKindTypedMap
}

// ContainerSubtypeFromWire maps the wire subtype bits to a ContainerSubtypeKind.
func ContainerSubtypeFromWire(bits uint8) ContainerSubtypeKind {
	switch bits {
	case ContainerList:
		return ContainerKindList
	case ContainerMapKind:
		return ContainerKindMap
	case ContainerTMap:
		return ContainerKindTypedMap
	default:
		return ContainerKindVector
	}
}
