package header

import (
	"testing"

	"github.com/conspack-go/conspack/errs"
	"github.com/conspack-go/conspack/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Bool(t *testing.T) {
	k, err := Classify(0x00)
	require.NoError(t, err)
	assert.Equal(t, format.KindBool, k)

	k, err = Classify(0x01)
	require.NoError(t, err)
	assert.Equal(t, format.KindBool, k)
}

func TestClassify_Number(t *testing.T) {
	k, err := Classify(0x14) // Number | UInt8
	require.NoError(t, err)
	assert.Equal(t, format.KindNumber, k)
}

func TestClassify_NumberRationalComplex(t *testing.T) {
	k, err := Classify(format.NumberByte | format.Rational)
	require.NoError(t, err)
	assert.Equal(t, format.KindRational, k)

	k, err = Classify(format.NumberByte | format.ComplexNum)
	require.NoError(t, err)
	assert.Equal(t, format.KindComplex, k)
}

func TestClassify_Container(t *testing.T) {
	k, err := Classify(format.ContainerByte | format.ContainerList | format.Size8)
	require.NoError(t, err)
	assert.Equal(t, format.KindContainer, k)
}

func TestClassify_String(t *testing.T) {
	k, err := Classify(format.StringByte | format.Size16)
	require.NoError(t, err)
	assert.Equal(t, format.KindString, k)
}

func TestClassify_RemoteRefExactByte(t *testing.T) {
	k, err := Classify(format.RemoteRefByte)
	require.NoError(t, err)
	assert.Equal(t, format.KindRemoteRef, k)
}

func TestClassify_RefSizedAndInline(t *testing.T) {
	k, err := Classify(format.RefByte | format.Size8)
	require.NoError(t, err)
	assert.Equal(t, format.KindRef, k)

	k, err = Classify(format.RefByte | format.RefTagInline | 0x05)
	require.NoError(t, err)
	assert.Equal(t, format.KindRef, k)
}

func TestClassify_TagSizedAndInline(t *testing.T) {
	k, err := Classify(format.TagByte | format.Size32)
	require.NoError(t, err)
	assert.Equal(t, format.KindTag, k)

	k, err = Classify(format.TagByte | format.RefTagInline | 0x03)
	require.NoError(t, err)
	assert.Equal(t, format.KindTag, k)
}

func TestClassify_Index(t *testing.T) {
	k, err := Classify(format.IndexByte | format.Size8)
	require.NoError(t, err)
	assert.Equal(t, format.KindIndex, k)
}

func TestClassify_ConsPackageSymbol(t *testing.T) {
	k, err := Classify(format.ConsByte)
	require.NoError(t, err)
	assert.Equal(t, format.KindCons, k)

	k, err = Classify(format.PackageByte)
	require.NoError(t, err)
	assert.Equal(t, format.KindPackage, k)

	k, err = Classify(format.SymbolByte)
	require.NoError(t, err)
	assert.Equal(t, format.KindSymbol, k)

	k, err = Classify(format.SymbolByte | format.SymbolKeyword)
	require.NoError(t, err)
	assert.Equal(t, format.KindSymbol, k)
}

func TestClassify_RemoteRefPrecedesRefMask(t *testing.T) {
	// 0x64 must classify as RemoteRef, not be swallowed by a Ref/Tag test.
	k, err := Classify(0x64)
	require.NoError(t, err)
	assert.Equal(t, format.KindRemoteRef, k)
}

func TestClassify_Unrecognized(t *testing.T) {
	_, err := Classify(0x05)
	assert.ErrorIs(t, err, errs.ErrBadHeader)
}

func TestInlineValue(t *testing.T) {
	h := format.RefByte | format.RefTagInline | 0x07
	assert.True(t, RefTagIsInline(h, format.RefByte))
	assert.Equal(t, uint8(0x07), InlineValue(h))
}
