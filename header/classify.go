// Package header classifies wire header bytes into format.Kind values and
// codes/decodes the size-class length prefix shared by String, Ref, Tag,
// Index, and Container headers.
//
// Classification order matters: several header byte patterns overlap (a
// Ref header's top 6 bits can coincide with other families once the low
// size-class bits are masked off), so Classify tests the narrowest,
// most specific patterns first. This mirrors cpk_decode_header in the
// original C decoder.
package header

import (
	"github.com/conspack-go/conspack/errs"
	"github.com/conspack-go/conspack/format"
)

// Classify determines which Kind a raw header byte belongs to. It does not
// consume or interpret sub-fields beyond identifying the family; callers
// use the format package's NumberType/ContainerSubtype/SizeClass helpers
// (or the inline readers below) afterward.
func Classify(h format.Header) (format.Kind, error) {
	// RemoteRef is a single exact byte (0x64), tested first per the
	// decoder's documented precedence even though it does not collide
	// with the Ref/Tag/Index mask tests below.
	if h == format.RemoteRefByte {
		return format.KindRemoteRef, nil
	}

	if h&format.RefMask == format.RefByte {
		return format.KindRef, nil
	}
	if h&format.RefInlineMask == format.RefByte|format.RefTagInline {
		return format.KindRef, nil
	}
	if h&format.TagMask == format.TagByte {
		return format.KindTag, nil
	}
	if h&format.TagInlineMask == format.TagByte|format.RefTagInline {
		return format.KindTag, nil
	}
	if h&format.IndexMask == format.IndexByte {
		return format.KindIndex, nil
	}

	// The 0x80 block (Cons/Package/Symbol) is exact-byte or exact-mask,
	// tested before the coarser top-nibble families below.
	switch {
	case h == format.ConsByte:
		return format.KindCons, nil
	case h == format.PackageByte:
		return format.KindPackage, nil
	case h&format.SymbolMask == format.SymbolByte:
		return format.KindSymbol, nil
	}

	switch {
	case h&format.BoolMask == format.BoolByte:
		return format.KindBool, nil
	case h&format.NumberMask == format.NumberByte:
		if format.NumberType(h) == format.Rational {
			return format.KindRational, nil
		}
		if format.NumberType(h) == format.ComplexNum {
			return format.KindComplex, nil
		}
		return format.KindNumber, nil
	case h&format.ContainerMask == format.ContainerByte:
		return format.KindContainer, nil
	case h&format.StringMask == format.StringByte:
		return format.KindString, nil
	}

	return 0, errs.ErrBadHeader
}

// RefTagIsInline reports whether a Ref/Tag header encodes its value inline
// in the low 4 bits (rather than as a following sized integer).
func RefTagIsInline(h format.Header, base format.Header) bool {
	return h&format.RefInlineMask == base|format.RefTagInline
}

// InlineValue extracts the inline 4-bit payload from a Ref/Tag header.
func InlineValue(h format.Header) uint8 {
	return h & 0x0F
}
