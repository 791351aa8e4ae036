package scalar

import "github.com/tidalcode/unichar/pkg/encoding"

// ValidateLatin1 is trivially true for every byte sequence (every byte is a
// valid code point in [0, 0xFF]) unless pureASCIIOnly is set, in which case
// any byte >= 0x80 is reported with TOO_LARGE at its offset — the "is this
// plausibly ASCII" short-circuit the spec's length/convert fast paths use.
func ValidateLatin1(src []byte, pureASCIIOnly bool) encoding.Result {
	if !pureASCIIOnly {
		return encoding.Result{Error: encoding.NONE, Input: uint64(len(src))}
	}
	i := 0
	for i+laneWidth <= len(src) {
		if !pureASCIILane(readLane8(src, i)) {
			break
		}
		i += laneWidth
	}
	for ; i < len(src); i++ {
		if src[i] >= 0x80 {
			return encoding.Result{Error: encoding.TOO_LARGE, Input: uint64(i)}
		}
	}
	return encoding.Result{Error: encoding.NONE, Input: uint64(len(src))}
}

// LengthLatin1To predicts the dst code-unit count for a LATIN1 source.
func LengthLatin1To(dst encoding.Encoding, src []byte) uint64 {
	switch dst {
	case encoding.LATIN1:
		return uint64(len(src))
	case encoding.UTF16, encoding.UTF16LE, encoding.UTF16BE, encoding.UTF32:
		return uint64(len(src))
	case encoding.UTF8:
		n := uint64(len(src))
		for _, b := range src {
			if b >= 0x80 {
				n++
			}
		}
		return n
	default:
		return 0
	}
}

// ConvertLatin1 transcodes src (one LATIN1 byte per code point) into dst.
// LATIN1 can always represent every one of its own code points in any of the
// four destination encodings, so this path never produces TOO_LARGE.
func ConvertLatin1(dst encoding.Encoding, policy encoding.ProcessPolicy, src []byte, out []byte, destEndian encoding.Endian) encoding.Result {
	destEndian = destEndian.Resolve()
	o := 0
	switch dst {
	case encoding.LATIN1:
		o = copy(out, src)
	case encoding.UTF8:
		for _, b := range src {
			if b < 0x80 {
				out[o] = b
				o++
			} else {
				out[o] = 0xC0 | (b >> 6)
				out[o+1] = 0x80 | (b & 0x3F)
				o += 2
			}
		}
	case encoding.UTF16, encoding.UTF16LE, encoding.UTF16BE:
		endian := destEndian
		if fixed, ok := encoding.FixedEndianOf(dst); ok {
			endian = fixed
		}
		for _, b := range src {
			PutU16(out[o*2:], uint16(b), endian)
			o++
		}
	case encoding.UTF32:
		for _, b := range src {
			PutU32(out[o*4:], uint32(b), destEndian)
			o++
		}
	}
	return encoding.Result{Error: encoding.NONE, Input: uint64(len(src)), Output: uint64(o)}
}
