package cpk

import (
	"github.com/conspack-go/conspack/errs"
	"github.com/conspack-go/conspack/format"
	"github.com/conspack-go/conspack/internal/options"
	"github.com/conspack-go/conspack/value"
)

func refTagIndexValue(kind format.Kind, key uint32) *value.Value {
	switch kind {
	case format.KindTag:
		return value.NewTag(key)
	case format.KindIndex:
		return value.NewIndex(key)
	default:
		return value.NewRef(key)
	}
}

// Resolver is the optional hook for Ref/Tag/Index interning: the codec's
// contract is that it emits and consumes opaque u32 keys, and the
// surrounding application owns the id-to-object mapping. Encoder/Decoder
// never require one: round-tripping opaque keys works without it. A
// Resolver only adds convenience constructors/accessors for callers that
// want to work with names instead of raw keys.
type Resolver interface {
	// Key returns the interned key for name under the given Kind
	// (KindRef, KindTag, or KindIndex each have an independent namespace).
	Key(kind format.Kind, name string) uint32
	// Resolve reverses Key, reporting ok=false for an unknown key.
	Resolve(kind format.Kind, key uint32) (string, bool)
}

// WithResolver attaches r to an Encoder so EncodeNamed can turn a name into
// a Ref/Tag/Index value before encoding it.
func WithResolver(r Resolver) options.Option[*Encoder] {
	return options.NoError(func(e *Encoder) { e.resolver = r })
}

// WithDecoderResolver attaches r to a Decoder so DecodeName can turn a
// decoded Ref/Tag/Index value back into its interned name.
func WithDecoderResolver(r Resolver) options.Option[*Decoder] {
	return options.NoError(func(d *Decoder) { d.resolver = r })
}

// EncodeNamed interns name under kind via the configured Resolver and
// encodes the resulting Ref/Tag/Index value. It returns ErrNilResolver if
// no Resolver was attached.
func (e *Encoder) EncodeNamed(kind format.Kind, name string) error {
	if e.resolver == nil {
		return errs.ErrNilResolver
	}
	key := e.resolver.Key(kind, name)
	return e.Encode(refTagIndexValue(kind, key))
}

// DecodeName decodes one Ref/Tag/Index value and resolves its key back to
// a name via the configured Resolver. ok is false when the key is unknown
// to the Resolver (not itself a decode error).
func (d *Decoder) DecodeName() (name string, ok bool, err error) {
	if d.resolver == nil {
		return "", false, errs.ErrNilResolver
	}
	v, derr := d.decodeTreeElement(false, 0)
	if derr != nil {
		return "", false, derr
	}
	name, ok = d.resolver.Resolve(v.Kind, v.RefVal)
	return name, ok, nil
}
