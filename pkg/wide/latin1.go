package wide

import "github.com/tidalcode/unichar/pkg/encoding"

// ConvertLatin1ToUTF8 transcodes all of src (LATIN1) into out (UTF-8),
// Stride bytes at a time, taking the pure-ASCII fast path (a straight copy)
// whenever a whole block is 7-bit clean and falling back to
// CompressLatin1ToUTF8 otherwise. Returns the number of bytes written.
func ConvertLatin1ToUTF8(out, src []byte) int {
	o := 0
	i := 0
	for i+Stride <= len(src) {
		block := src[i : i+Stride]
		if IsPureASCII64(block) {
			o += copy(out[o:], block)
		} else {
			o += CompressLatin1ToUTF8(out[o:], block)
		}
		i += Stride
	}
	if i < len(src) {
		tail := src[i:]
		if IsPureASCII64(tail) {
			o += copy(out[o:], tail)
		} else {
			o += CompressLatin1ToUTF8(out[o:], tail)
		}
	}
	return o
}

// ConvertLatin1ToUTF16 transcodes src (LATIN1) into out (UTF-16, destEndian)
// by zero-extending every byte, Stride bytes at a time.
func ConvertLatin1ToUTF16(out, src []byte, destEndian encoding.Endian) {
	i := 0
	for i < len(src) {
		end := i + Stride
		if end > len(src) {
			end = len(src)
		}
		block := src[i:end]
		Expand8To16(out[i*2:], block, destEndian)
		i = end
	}
}

// ConvertLatin1ToUTF32 transcodes src (LATIN1) into out (UTF-32, destEndian)
// by zero-extending every byte, Stride bytes at a time.
func ConvertLatin1ToUTF32(out, src []byte, destEndian encoding.Endian) {
	i := 0
	for i < len(src) {
		end := i + Stride
		if end > len(src) {
			end = len(src)
		}
		block := src[i:end]
		Expand8To32(out[i*4:], block, destEndian)
		i = end
	}
}

// ValidatePureASCII reports the offset of the first byte >= 0x80 in src, or
// -1 if src is entirely 7-bit ASCII. Stride bytes at a time via SignMask64.
func ValidatePureASCII(src []byte) int {
	i := 0
	for i+Stride <= len(src) {
		if mask := SignMask64(src[i : i+Stride]); mask != 0 {
			return i + FirstNonASCII(mask)
		}
		i += Stride
	}
	if i < len(src) {
		if mask := SignMask64(src[i:]); mask != 0 {
			return i + FirstNonASCII(mask)
		}
	}
	return -1
}
