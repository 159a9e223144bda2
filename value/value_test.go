package value

import (
	"testing"

	"github.com/conspack-go/conspack/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBool(t *testing.T) {
	f := NewBool(false)
	assert.Equal(t, format.KindBool, f.Kind)
	assert.Equal(t, format.Header(0x00), f.Header)

	tr := NewBool(true)
	assert.Equal(t, format.Header(0x01), tr.Header)
}

func TestNewIntRoundTripsBits(t *testing.T) {
	v := NewInt(format.NumInt8, -1)
	assert.Equal(t, format.KindNumber, v.Kind)
	assert.Equal(t, format.NumberByte|format.Int8, v.Header)
	assert.Equal(t, int64(-1), v.Int64())
}

func TestNewDoubleFloat(t *testing.T) {
	v := NewDoubleFloat(100.0)
	assert.Equal(t, format.NumberByte|format.DoubleFloat, v.Header)
	assert.Equal(t, 100.0, v.Float64())
}

func TestNewSingleFloat(t *testing.T) {
	v := NewSingleFloat(1.5)
	assert.Equal(t, float32(1.5), v.Float32())
}

func TestNewString(t *testing.T) {
	v := NewString([]byte("hello"))
	assert.Equal(t, "hello", string(v.Str))

	// Mutating the source slice must not affect the stored value.
	src := []byte("abc")
	v2 := NewString(src)
	src[0] = 'z'
	assert.Equal(t, "abc", string(v2.Str))
}

func TestNewRefInlineVsSized(t *testing.T) {
	inline := NewRef(5)
	assert.Equal(t, format.RefByte|format.RefTagInline|0x05, inline.Header)

	sized := NewRef(200)
	assert.Equal(t, format.RefByte, sized.Header)
	assert.Equal(t, uint32(200), sized.RefVal)
}

func TestNewTagInline(t *testing.T) {
	v := NewTag(0)
	assert.Equal(t, format.TagByte|format.RefTagInline, v.Header)
}

func TestNewIndexHasNoInlineForm(t *testing.T) {
	v := NewIndex(3)
	assert.Equal(t, format.IndexByte, v.Header)
	assert.Equal(t, uint32(3), v.RefVal)
}

func TestNewCons(t *testing.T) {
	car := NewInt(format.NumInt8, 1)
	cdr := NewString([]byte("x"))
	c := NewCons(car, cdr)
	assert.Same(t, car, c.Car())
	assert.Same(t, cdr, c.Cdr())
}

func TestNewKeyword_PackageChildIsNil(t *testing.T) {
	name := NewString([]byte("foo"))
	kw := NewKeyword(name)
	assert.True(t, kw.Keyword)
	assert.Nil(t, kw.Children[0])
	assert.Same(t, name, kw.Children[1])
	assert.Equal(t, format.SymbolByte|format.SymbolKeyword, kw.Header)
}

func TestNewContainer_Vector(t *testing.T) {
	children := []*Value{
		NewInt(format.NumInt8, 0),
		NewInt(format.NumInt8, 1),
		NewInt(format.NumInt8, 2),
	}
	c := NewContainer(format.ContainerKindVector, children, 0, false)
	assert.Equal(t, 3, c.Size)
	assert.False(t, c.HasFixedHeader)
}

func TestNewContainer_FixedHeader(t *testing.T) {
	fh := format.NumberByte | format.Int8
	children := []*Value{
		NewInt(format.NumInt8, 0),
		NewInt(format.NumInt8, 1),
	}
	c := NewContainer(format.ContainerKindVector, children, fh, true)
	assert.True(t, c.HasFixedHeader)
	assert.Equal(t, fh, c.FixedHeader)
}

func TestClose_Idempotent(t *testing.T) {
	inner := NewCons(NewInt(format.NumInt8, 1), NewInt(format.NumInt8, 2))
	require.NoError(t, inner.Close())
	require.NoError(t, inner.Close())
	assert.Nil(t, inner.Children)
}

func TestClose_VisitsNilChildrenSafely(t *testing.T) {
	kw := NewKeyword(NewString([]byte("x")))
	assert.NotPanics(t, func() {
		require.NoError(t, kw.Close())
	})
}

func TestIsError(t *testing.T) {
	e := NewError(ErrKindEOF, "unexpected end of input", 0x00, 1)
	assert.True(t, e.IsError())
	assert.False(t, NewBool(true).IsError())
	var nilv *Value
	assert.False(t, nilv.IsError())
}

func TestRequireNumber(t *testing.T) {
	n := NewInt(format.NumInt8, 1)
	got, err := RequireNumber(n)
	require.NoError(t, err)
	assert.Same(t, n, got)

	_, err = RequireNumber(NewString([]byte("x")))
	assert.Error(t, err)
}
