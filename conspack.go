// Package conspack implements the conspack binary serialization format: a
// tagged-header wire encoding for a Lisp-family dynamic data model
// (booleans, numbers, strings, containers, cons cells, packages, symbols,
// and ref/tag/index interning placeholders).
//
// Encode writes a value tree to a sink, Decode reads one from a source,
// and a decoded tree is released with Value.Close. Most callers only need
// this file; the header, value, and cpk packages are exported for callers
// building custom sinks/sources or inspecting the tree directly.
package conspack

import (
	"github.com/conspack-go/conspack/cpk"
	"github.com/conspack-go/conspack/stream"
	"github.com/conspack-go/conspack/value"
)

// Value is the in-memory representation of a decoded or to-be-encoded
// node; re-exported so callers need not import the value package directly
// for the common case.
type Value = value.Value

// Encode writes v to an in-memory buffer and returns the resulting bytes.
func Encode(v *Value) ([]byte, error) {
	buf := stream.NewBuffer(64)
	if err := cpk.Encode(v, buf); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// EncodeTo writes v to sink directly, for callers who already own a
// stream.Sink (a pooled stream.Buffer, or a stream.FD wrapping a file).
func EncodeTo(v *Value, sink stream.Sink) error {
	return cpk.Encode(v, sink)
}

// Decode parses data into a Value tree. The returned Value is never nil;
// on failure it is the terminal Error variant (check IsError before use).
func Decode(data []byte) *Value {
	return cpk.DecodeTree(stream.NewReader(data))
}

// DecodeFrom reads one Value tree from src directly, for callers who
// already own a stream.Source (a stream.FD wrapping a file, for instance).
func DecodeFrom(src stream.Source) *Value {
	return cpk.DecodeTree(src)
}

// Free deep-closes v and everything it owns. It is safe to call on an
// error Value or more than once.
func Free(v *Value) error {
	return v.Close()
}
