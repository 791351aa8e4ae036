package scalar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPureASCIILane(t *testing.T) {
	require.True(t, pureASCIILane(0x0001020304050607))
	require.False(t, pureASCIILane(0x0001020304858607))
}

func TestNotASCIIMask(t *testing.T) {
	// byte 0 (LSB) and byte 2 have the high bit set.
	lane := uint64(0x00_00_00_00_00_80_00_80)
	mask := notASCIIMask(lane)
	require.Equal(t, uint8(0b0000_0101), mask)

	require.Equal(t, uint8(0), notASCIIMask(0x0001020304050607))
}

func TestReadLane8(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	require.Equal(t, uint64(0x0807060504030201), readLane8(b, 0))
}

func TestPureBMPLane16(t *testing.T) {
	// Four ASCII code units, little-endian 16-bit lanes: 'A','B','C','D'.
	ascii := uint64(0x0044004300420041)
	require.True(t, pureBMPLane16(ascii))

	withHigh := uint64(0x0044FF430042FF41)
	require.False(t, pureBMPLane16(withHigh))
}
