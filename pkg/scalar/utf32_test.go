package scalar

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidalcode/unichar/pkg/encoding"
)

func TestValidateUTF32(t *testing.T) {
	valid := []byte{0x41, 0x00, 0x00, 0x00} // U+0041, LE
	res := ValidateUTF32(valid, encoding.LittleEndian)
	require.True(t, res.OK())

	tooLarge := []byte{0x00, 0x00, 0x11, 0x00} // U+110000, LE
	res = ValidateUTF32(tooLarge, encoding.LittleEndian)
	require.Equal(t, encoding.TOO_LARGE, res.Error)
	require.Equal(t, uint64(0), res.Input)

	surrogate := []byte{0x00, 0xD8, 0x00, 0x00} // U+D800, LE
	res = ValidateUTF32(surrogate, encoding.LittleEndian)
	require.Equal(t, encoding.SURROGATE, res.Error)
}

func TestLengthUTF32To(t *testing.T) {
	cp := []byte{0x41, 0x00, 0x00, 0x00} // U+0041, LE
	require.Equal(t, uint64(1), LengthUTF32To(encoding.UTF8, cp, encoding.LittleEndian))
	require.Equal(t, uint64(1), LengthUTF32To(encoding.UTF16, cp, encoding.LittleEndian))

	nonBMP := []byte{0x00, 0xF6, 0x01, 0x00} // U+1F600, LE
	require.Equal(t, uint64(2), LengthUTF32To(encoding.UTF16, nonBMP, encoding.LittleEndian))
	require.Equal(t, uint64(4), LengthUTF32To(encoding.UTF8, nonBMP, encoding.LittleEndian))
}

func TestConvertUTF32ToUTF8(t *testing.T) {
	nonBMP := []byte{0x00, 0xF6, 0x01, 0x00} // U+1F600, LE
	out := make([]byte, 4)
	res := ConvertUTF32(encoding.UTF8, encoding.DEFAULT, nonBMP, encoding.LittleEndian, out, encoding.NativeEndian)
	require.True(t, res.OK())
	require.Equal(t, []byte{0xF0, 0x9F, 0x98, 0x80}, out)
}

func TestConvertUTF32ToUTF16SurrogatePair(t *testing.T) {
	nonBMP := []byte{0x00, 0xF6, 0x01, 0x00} // U+1F600, LE
	out := make([]byte, 4)
	res := ConvertUTF32(encoding.UTF16LE, encoding.DEFAULT, nonBMP, encoding.LittleEndian, out, encoding.NativeEndian)
	require.True(t, res.OK())
	require.Equal(t, []byte{0x3D, 0xD8, 0x00, 0xDE}, out)
}

func TestConvertUTF32InvalidSurrogate(t *testing.T) {
	src := []byte{0x00, 0xD8, 0x00, 0x00} // U+D800, LE
	out := make([]byte, 4)
	res := ConvertUTF32(encoding.UTF8, encoding.DEFAULT, src, encoding.LittleEndian, out, encoding.NativeEndian)
	require.Equal(t, encoding.SURROGATE, res.Error)
}
