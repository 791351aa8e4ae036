package wide

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidalcode/unichar/pkg/encoding"
)

func TestExpand8To16(t *testing.T) {
	block := []byte{'a', 0xFF}
	out := make([]byte, 4)
	Expand8To16(out, block, encoding.LittleEndian)
	require.Equal(t, []byte{'a', 0x00, 0xFF, 0x00}, out)

	Expand8To16(out, block, encoding.BigEndian)
	require.Equal(t, []byte{0x00, 'a', 0x00, 0xFF}, out)
}

func TestExpand8To32(t *testing.T) {
	block := []byte{'a'}
	out := make([]byte, 4)
	Expand8To32(out, block, encoding.LittleEndian)
	require.Equal(t, []byte{'a', 0, 0, 0}, out)

	Expand8To32(out, block, encoding.BigEndian)
	require.Equal(t, []byte{0, 0, 0, 'a'}, out)
}

func TestExpand16To32(t *testing.T) {
	block := []byte{'a', 0x00} // U+0061, LE
	out := make([]byte, 4)
	Expand16To32(out, block, encoding.LittleEndian, encoding.LittleEndian)
	require.Equal(t, []byte{'a', 0, 0, 0}, out)

	Expand16To32(out, block, encoding.LittleEndian, encoding.BigEndian)
	require.Equal(t, []byte{0, 0, 0, 'a'}, out)
}
