// Package explain renders a decoded value.Value tree to a readable
// s-expression-like string, grounded on libconspack's explain.c: every
// node is wrapped in parentheses, tagged with a leading keyword token
// (":number", ":string", ":cons", ...), and children are rendered
// depth-first in the same order the Data Model's child-order table fixes
// for decoding.
//
// explain depends only on the value package, never on cpk: it walks
// whatever tree it is handed, decoded or hand-built.
package explain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/conspack-go/conspack/format"
	"github.com/conspack-go/conspack/value"
)

// Explain renders v as a parenthesized string. A nil v renders as "()".
func Explain(v *value.Value) string {
	var sb strings.Builder
	writeValue(&sb, v)
	return sb.String()
}

func writeValue(sb *strings.Builder, v *value.Value) {
	if v == nil {
		sb.WriteString("()")
		return
	}

	sb.WriteByte('(')
	switch v.Kind {
	case format.KindBool:
		writeBool(sb, v)
	case format.KindNumber:
		writeNumber(sb, v)
	case format.KindRational:
		writeRationalOrComplex(sb, ":rational", v)
	case format.KindComplex:
		writeRationalOrComplex(sb, ":complex", v)
	case format.KindString:
		writeString(sb, v)
	case format.KindContainer:
		writeContainer(sb, v)
	case format.KindRef:
		writeRefLike(sb, ":ref", v)
	case format.KindTag:
		writeRefLike(sb, ":tag", v)
	case format.KindIndex:
		writeRefLike(sb, ":index", v)
	case format.KindRemoteRef:
		sb.WriteString(":rref ")
		writeValue(sb, v.Children[0])
	case format.KindCons:
		sb.WriteString(":cons ")
		writeValue(sb, v.Car())
		sb.WriteByte(' ')
		writeValue(sb, v.Cdr())
	case format.KindPackage:
		sb.WriteString(":package ")
		writeValue(sb, v.Children[0])
	case format.KindSymbol:
		writeSymbol(sb, v)
	case format.KindError:
		writeError(sb, v)
	default:
		sb.WriteString("Bad header: ")
		sb.WriteString(strconv.Itoa(int(v.Header)))
	}
	sb.WriteByte(')')
}

func writeBool(sb *strings.Builder, v *value.Value) {
	sb.WriteString(":boolean ")
	if v.BoolVal {
		sb.WriteString("t")
	} else {
		sb.WriteString("nil")
	}
}

func writeNumber(sb *strings.Builder, v *value.Value) {
	sb.WriteString(":number ")
	switch v.NumKind {
	case format.NumInt8:
		fmt.Fprintf(sb, ":int8 %d", int8(v.NumBits))
	case format.NumUInt8:
		fmt.Fprintf(sb, ":uint8 %d", uint8(v.NumBits))
	case format.NumInt16:
		fmt.Fprintf(sb, ":int16 %d", int16(v.NumBits))
	case format.NumUInt16:
		fmt.Fprintf(sb, ":uint16 %d", uint16(v.NumBits))
	case format.NumInt32:
		fmt.Fprintf(sb, ":int32 %d", int32(v.NumBits))
	case format.NumUInt32:
		fmt.Fprintf(sb, ":uint32 %d", uint32(v.NumBits))
	case format.NumInt64:
		fmt.Fprintf(sb, ":int64 %d", v.Int64())
	case format.NumUInt64:
		fmt.Fprintf(sb, ":uint64 %d", v.Uint64())
	case format.NumSingleFloat:
		fmt.Fprintf(sb, ":single-float %.7f", v.Float32())
	case format.NumDoubleFloat:
		fmt.Fprintf(sb, ":double-float %.16g", v.Float64())
	case format.NumInt128:
		fmt.Fprintf(sb, ":int128 %x", v.Num128)
	case format.NumUInt128:
		fmt.Fprintf(sb, ":uint128 %x", v.Num128)
	default:
		sb.WriteString("??")
	}
}

// writeRationalOrComplex renders Rational/Complex. The original's
// explain_number had a stray `=` in place of `==` in the Complex branch
// (noted as a likely bug in the wire contract's design notes); it has no
// observable effect on output and is not reproduced here regardless.
func writeRationalOrComplex(sb *strings.Builder, tag string, v *value.Value) {
	sb.WriteString(":number ")
	sb.WriteString(tag)
	sb.WriteByte(' ')
	writeValue(sb, v.Children[0])
	sb.WriteByte(' ')
	writeValue(sb, v.Children[1])
}

func writeString(sb *strings.Builder, v *value.Value) {
	sb.WriteString(":string \"")
	sb.Write(v.Str)
	sb.WriteByte('"')
}

func writeContainer(sb *strings.Builder, v *value.Value) {
	switch v.ContainerSubtype {
	case format.ContainerKindVector:
		sb.WriteString(":vector")
	case format.ContainerKindList:
		sb.WriteString(":list")
	case format.ContainerKindMap:
		sb.WriteString(":map")
	case format.ContainerKindTypedMap:
		sb.WriteString(":tmap")
	}
	for _, child := range v.Children {
		sb.WriteByte(' ')
		writeValue(sb, child)
	}
}

func writeRefLike(sb *strings.Builder, tag string, v *value.Value) {
	sb.WriteString(tag)
	fmt.Fprintf(sb, " %d", v.RefVal)
}

func writeSymbol(sb *strings.Builder, v *value.Value) {
	sb.WriteString(":symbol ")
	if v.Keyword {
		sb.WriteString(":keyword")
	} else {
		writeValue(sb, v.Children[0])
	}
	sb.WriteByte(' ')
	writeValue(sb, v.Children[1])
}

func writeError(sb *strings.Builder, v *value.Value) {
	fmt.Fprintf(sb, ":error %s %q pos=%d", v.ErrKind, v.ErrMessage, v.ErrPos)
}
