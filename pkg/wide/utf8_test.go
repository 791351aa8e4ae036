package wide

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidalcode/unichar/pkg/encoding"
	"github.com/tidalcode/unichar/pkg/scalar"
)

func longMixedUTF8() []byte {
	var b bytes.Buffer
	b.WriteString(string(bytes.Repeat([]byte{'a'}, Stride*2))) // pure-ASCII blocks
	b.WriteString("\xe4\xb8\xad\xe6\x96\x87")                  // 中文
	b.WriteString(string(bytes.Repeat([]byte{'b'}, Stride)))
	b.WriteString("\xf0\x9f\x98\x80") // U+1F600
	b.WriteString(string(bytes.Repeat([]byte{'c'}, 10)))        // short tail
	return b.Bytes()
}

func TestValidateUTF8WideMatchesScalarOnValid(t *testing.T) {
	src := longMixedUTF8()
	wantRes := scalar.ValidateUTF8(src)
	gotRes := ValidateUTF8(src)
	require.Equal(t, wantRes, gotRes)
	require.True(t, gotRes.OK())
}

func TestValidateUTF8WideLocatesErrorPastStride(t *testing.T) {
	src := append(bytes.Repeat([]byte{'a'}, Stride+5), 0x80)
	wantRes := scalar.ValidateUTF8(src)
	gotRes := ValidateUTF8(src)
	require.Equal(t, wantRes, gotRes)
	require.Equal(t, encoding.TOO_LONG, gotRes.Error)
	require.Equal(t, uint64(Stride+5), gotRes.Input)
}

func TestConvertUTF8WideMatchesScalar(t *testing.T) {
	src := longMixedUTF8()
	for _, dst := range []encoding.Encoding{encoding.UTF8, encoding.LATIN1, encoding.UTF16LE, encoding.UTF32} {
		wantLen := scalar.LengthUTF8To(dst, src)
		wantOut := make([]byte, wantLen*uint64(dst.CodeUnitWidth()))
		wantRes := scalar.ConvertUTF8(dst, encoding.DEFAULT, src, wantOut, encoding.LittleEndian)

		gotOut := make([]byte, wantLen*uint64(dst.CodeUnitWidth()))
		gotRes := ConvertUTF8(dst, encoding.DEFAULT, src, gotOut, encoding.LittleEndian)

		require.Equal(t, wantRes, gotRes, "dst=%v", dst)
		require.Equal(t, wantOut, gotOut, "dst=%v", dst)
	}
}
