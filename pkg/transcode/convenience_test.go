package transcode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidalcode/unichar/pkg/encoding"
)

func TestConvertToBytesSizesItsOwnBuffer(t *testing.T) {
	src := []byte("Hello, \xe4\xb8\xad\xe6\x96\x87!")
	out, res := ConvertToBytes(encoding.UTF8, encoding.UTF16LE, encoding.DEFAULT, src, encoding.NativeEndian, encoding.NativeEndian)
	require.True(t, res.OK())
	require.Equal(t, int(res.Output)*encoding.UTF16LE.CodeUnitWidth(), len(out))
}

func TestConvertToString(t *testing.T) {
	src := []byte{0x48, 0, 0x65, 0, 0x6C, 0, 0x6C, 0, 0x6F, 0} // "Hello" UTF16LE
	s, res := ConvertToString(encoding.UTF16LE, encoding.DEFAULT, src, encoding.NativeEndian)
	require.True(t, res.OK())
	require.Equal(t, "Hello", s)
}

func TestConvertToStringMalformed(t *testing.T) {
	src := []byte{0xC0, 0x80} // overlong NUL
	_, res := ConvertToString(encoding.UTF8, encoding.DEFAULT, src, encoding.NativeEndian)
	require.Equal(t, encoding.OVERLONG, res.Error)
}

func TestConvertToBytesWithOption(t *testing.T) {
	src := []byte("Hello, \xe4\xb8\xad\xe6\x96\x87!")
	opt := encoding.Option{SourceEndian: encoding.NativeEndian, DestEndian: encoding.NativeEndian}
	out, res := ConvertToBytesWithOption(encoding.UTF8, encoding.UTF16LE, encoding.DEFAULT, src, opt)
	want, wantRes := ConvertToBytes(encoding.UTF8, encoding.UTF16LE, encoding.DEFAULT, src, opt.SourceEndian, opt.DestEndian)
	require.True(t, res.OK())
	require.Equal(t, wantRes, res)
	require.Equal(t, want, out)
}

func TestConvertWithOption(t *testing.T) {
	src := []byte{0x3D, 0xD8, 0x00, 0xDE} // U+1F600 surrogate pair, LE
	opt := encoding.Option{SourceEndian: encoding.LittleEndian, DestEndian: encoding.NativeEndian}
	out := make([]byte, 4)
	res := ConvertWithOption(encoding.UTF16LE, encoding.UTF8, encoding.DEFAULT, src, out, opt)
	require.True(t, res.OK())
	require.Equal(t, []byte{0xF0, 0x9F, 0x98, 0x80}, out)
}
