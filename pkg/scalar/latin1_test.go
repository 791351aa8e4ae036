package scalar

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidalcode/unichar/pkg/encoding"
)

func TestValidateLatin1(t *testing.T) {
	src := []byte{0x00, 0x7F, 0x80, 0xFF}
	res := ValidateLatin1(src, false)
	require.True(t, res.OK())
	require.Equal(t, uint64(len(src)), res.Input)

	res = ValidateLatin1(src, true)
	require.Equal(t, encoding.TOO_LARGE, res.Error)
	require.Equal(t, uint64(2), res.Input)
}

func TestLengthLatin1To(t *testing.T) {
	src := []byte{'a', 'b', 0x80, 0xFF}
	require.Equal(t, uint64(4), LengthLatin1To(encoding.LATIN1, src))
	require.Equal(t, uint64(4), LengthLatin1To(encoding.UTF16, src))
	require.Equal(t, uint64(4), LengthLatin1To(encoding.UTF32, src))
	require.Equal(t, uint64(6), LengthLatin1To(encoding.UTF8, src)) // two non-ascii bytes each cost +1
}

func TestConvertLatin1ToUTF8(t *testing.T) {
	src := []byte{'a', 0x80, 0xFF}
	out := make([]byte, LengthLatin1To(encoding.UTF8, src))
	res := ConvertLatin1(encoding.UTF8, encoding.DEFAULT, src, out, encoding.NativeEndian)
	require.True(t, res.OK())
	require.Equal(t, []byte{'a', 0xC2, 0x80, 0xC3, 0xBF}, out[:res.Output])
}

func TestConvertLatin1ToUTF16(t *testing.T) {
	src := []byte{'a', 0xFF}
	out := make([]byte, len(src)*2)
	res := ConvertLatin1(encoding.UTF16, encoding.DEFAULT, src, out, encoding.LittleEndian)
	require.True(t, res.OK())
	require.Equal(t, []byte{'a', 0x00, 0xFF, 0x00}, out)
}

func TestConvertLatin1ToUTF32(t *testing.T) {
	src := []byte{'a'}
	out := make([]byte, 4)
	res := ConvertLatin1(encoding.UTF32, encoding.DEFAULT, src, out, encoding.BigEndian)
	require.True(t, res.OK())
	require.Equal(t, []byte{0, 0, 0, 'a'}, out)
}

func TestConvertLatin1Identity(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5}
	out := make([]byte, len(src))
	res := ConvertLatin1(encoding.LATIN1, encoding.DEFAULT, src, out, encoding.NativeEndian)
	require.True(t, res.OK())
	require.Equal(t, src, out)
}
