// Package errs collects the sentinel errors returned across conspack's
// packages: callers match with errors.Is. The codec returns these values
// unwrapped; a decode failure's byte position is carried by the Error
// Value that cpk builds from them.
package errs

import "errors"

// Decode errors. A truncated read surfaces ErrUnexpectedEOF, an
// unclassifiable header byte surfaces ErrBadHeader, a reserved size class
// surfaces ErrBadSize, and a compound whose child violates its kind
// constraint surfaces ErrBadType.
var (
	ErrUnexpectedEOF = errors.New("conspack: unexpected end of input")
	ErrBadHeader     = errors.New("conspack: unclassifiable header byte")
	ErrBadSize       = errors.New("conspack: reserved size class")
	ErrBadType       = errors.New("conspack: child value has wrong kind")
)

// Construction and usage errors, not part of the wire error taxonomy.
var (
	ErrNegativeSize        = errors.New("conspack: size must be non-negative")
	ErrSizeTooLarge        = errors.New("conspack: size exceeds 32 bits")
	ErrNilValue            = errors.New("conspack: nil value")
	ErrNilResolver         = errors.New("conspack: no resolver configured")
	ErrFixedHeaderMismatch = errors.New("conspack: element header does not match container's fixed header")
	ErrOddMapSize          = errors.New("conspack: map/typed-map container must have an even number of children")
)
