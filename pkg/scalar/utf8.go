package scalar

import "github.com/tidalcode/unichar/pkg/encoding"

// utf8SeqLen classifies a leading byte's length by its top bits, using the
// same 16-entry-by-high-nibble shape as the teacher's LUT validators
// (examples/tagvalidate's 256-entry bool table, narrowed here to the 16
// possible high nibbles of a leading byte). 0 means "not a leading byte"
// (a 10xxxxxx continuation byte).
var utf8SeqLen = [16]uint8{
	0: 1, 1: 1, 2: 1, 3: 1, 4: 1, 5: 1, 6: 1, 7: 1, // 0xxxxxxx
	8: 0, 9: 0, 0xA: 0, 0xB: 0, // 10xxxxxx: continuation
	0xC: 2, 0xD: 2, // 110xxxxx
	0xE: 3, // 1110xxxx
	0xF: 4, // 11110xxx (and invalid 11111xxx, rejected below)
}

// lookaheadASCII is the tunable for the scalar ASCII look-ahead mentioned in
// spec.md's Open Questions as present in one of the two original scalar
// UTF-8 files and absent in the other. When on, ValidateUTF8 skips whole
// pure-ASCII 8-byte lanes, one branch per lane, before its first decode.
// The resync after each decoded sequence uses the same lane check whatever
// this is set to. Default on.
const lookaheadASCII = true

// IsContinuation reports whether b has the 10xxxxxx shape.
func IsContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// DecodeResult carries one decoded code point plus how many source bytes it
// consumed, or an error kind if decoding failed at the sequence's first byte.
type DecodeResult struct {
	Cp      rune
	Width   int
	Err     encoding.ErrorKind
}

// DecodeOne decodes the UTF-8 sequence starting at src[i]. It assumes
// src[i] exists; it does not assume any particular amount of trailing data.
func DecodeOne(src []byte, i int) DecodeResult {
	b0 := src[i]
	if b0 < 0x80 {
		return DecodeResult{Cp: rune(b0), Width: 1}
	}
	if IsContinuation(b0) {
		return DecodeResult{Err: encoding.TOO_LONG}
	}
	n := int(utf8SeqLen[b0>>4])
	if n == 0 {
		return DecodeResult{Err: encoding.HEADER_BITS}
	}
	if b0 >= 0xF8 {
		// 11111xxx shares the 0xF high nibble with 11110xxx but is not a
		// valid leading byte.
		return DecodeResult{Err: encoding.HEADER_BITS}
	}
	if n == 1 {
		// unreachable: b0 < 0x80 already handled above, but keep the table
		// authoritative rather than special-casing.
		return DecodeResult{Cp: rune(b0), Width: 1}
	}
	if i+n > len(src) {
		return DecodeResult{Err: encoding.TOO_SHORT}
	}
	for k := 1; k < n; k++ {
		if !IsContinuation(src[i+k]) {
			return DecodeResult{Err: encoding.TOO_SHORT}
		}
	}
	var cp rune
	var minCp rune
	switch n {
	case 2:
		cp = rune(b0&0x1F)<<6 | rune(src[i+1]&0x3F)
		minCp = 0x80
	case 3:
		cp = rune(b0&0x0F)<<12 | rune(src[i+1]&0x3F)<<6 | rune(src[i+2]&0x3F)
		minCp = 0x800
	case 4:
		cp = rune(b0&0x07)<<18 | rune(src[i+1]&0x3F)<<12 | rune(src[i+2]&0x3F)<<6 | rune(src[i+3]&0x3F)
		minCp = 0x10000
	}
	if cp < minCp {
		return DecodeResult{Err: encoding.OVERLONG}
	}
	if n == 3 && cp >= 0xD800 && cp <= 0xDFFF {
		return DecodeResult{Err: encoding.SURROGATE}
	}
	if n == 4 && cp > 0x10FFFF {
		return DecodeResult{Err: encoding.TOO_LARGE}
	}
	return DecodeResult{Cp: cp, Width: n}
}

// RewindToLeadingByte walks backward from offset (at most 4 bytes, the
// longest possible UTF-8 sequence) to find the start of the sequence that
// contains it. Used by the wide engine: when its bulk validator rejects a
// chunk, it reports the byte offset where it noticed the problem, which may
// be a continuation byte mid-sequence rather than the leading byte
// spec.md §7 requires be reported.
func RewindToLeadingByte(src []byte, offset int) int {
	start := offset
	limit := offset - 4
	if limit < 0 {
		limit = 0
	}
	for start > limit && IsContinuation(src[start]) {
		start--
	}
	return start
}

// ValidateUTF8 walks src left to right, ASCII-fast-laning 8 bytes at a time,
// and returns the first ill-formed sequence's leading-byte offset and kind.
func ValidateUTF8(src []byte) encoding.Result {
	i := 0
	n := len(src)
	for i+laneWidth <= n {
		if lookaheadASCII && pureASCIILane(readLane8(src, i)) {
			i += laneWidth
			continue
		}
		break
	}
	for i < n {
		d := DecodeOne(src, i)
		if d.Err != encoding.NONE {
			return encoding.Result{Error: d.Err, Input: uint64(i)}
		}
		i += d.Width
		// Resync into the ASCII fast lane whenever possible.
		for i+laneWidth <= n && pureASCIILane(readLane8(src, i)) {
			i += laneWidth
		}
	}
	return encoding.Result{Error: encoding.NONE, Input: uint64(n)}
}

// LengthUTF8To predicts the number of dst code units required to hold src
// (a UTF-8 byte stream) once converted. Unspecified but finite if src is not
// well-formed.
func LengthUTF8To(dst encoding.Encoding, src []byte) uint64 {
	switch dst {
	case encoding.UTF8:
		return uint64(len(src))
	case encoding.LATIN1, encoding.UTF32:
		var n uint64
		for _, b := range src {
			if !IsContinuation(b) {
				n++
			}
		}
		return n
	case encoding.UTF16, encoding.UTF16LE, encoding.UTF16BE:
		var n uint64
		for _, b := range src {
			if IsContinuation(b) {
				continue
			}
			n++
			if b >= 0xF0 {
				n++ // non-BMP code point needs a surrogate pair
			}
		}
		return n
	default:
		return 0
	}
}

// ConvertUTF8 transcodes src (UTF-8) into dst, honouring policy. destEndian
// is consulted only when dst is UTF16/UTF32 (native order).
func ConvertUTF8(dst encoding.Encoding, policy encoding.ProcessPolicy, src []byte, out []byte, destEndian encoding.Endian) encoding.Result {
	destEndian = destEndian.Resolve()
	w := dst.CodeUnitWidth()
	i, o := 0, 0 // o counts dst code units; out is indexed at o*w
	n := len(src)

	emitFail := func(err encoding.ErrorKind, inputOff int) encoding.Result {
		r := encoding.Result{Error: err}
		if policy.ReportError {
			r.Input = uint64(inputOff)
		}
		if policy.WriteAllCorrect {
			r.Output = uint64(o)
		}
		return r
	}

	for i < n {
		d := DecodeOne(src, i)
		if d.Err != encoding.NONE && !policy.AssumeCorrect {
			return emitFail(d.Err, i)
		}
		if d.Err != encoding.NONE {
			// AssumeCorrect + malformed input: stop without writing further,
			// memory-safe but otherwise unspecified.
			return encoding.Result{Error: encoding.NONE, Input: uint64(i), Output: uint64(o)}
		}
		written, tooLarge := EmitCodePoint(d.Cp, dst, out[o*w:], destEndian)
		if tooLarge {
			return emitFail(encoding.TOO_LARGE, i)
		}
		o += written
		i += d.Width
	}
	return encoding.Result{Error: encoding.NONE, Input: uint64(n), Output: uint64(o)}
}

// EmitCodePoint writes cp into out in the dst encoding, returning the number
// of dst code units written and whether cp could not be represented.
func EmitCodePoint(cp rune, dst encoding.Encoding, out []byte, destEndian encoding.Endian) (written int, tooLarge bool) {
	switch dst {
	case encoding.UTF8:
		return EncodeUTF8(cp, out), false
	case encoding.LATIN1:
		if cp > 0xFF {
			return 0, true
		}
		out[0] = byte(cp)
		return 1, false
	case encoding.UTF32:
		PutU32(out, uint32(cp), destEndian)
		return 1, false
	case encoding.UTF16, encoding.UTF16LE, encoding.UTF16BE:
		endian := destEndian
		if fixed, ok := encoding.FixedEndianOf(dst); ok {
			endian = fixed
		}
		if cp <= 0xFFFF {
			PutU16(out, uint16(cp), endian)
			return 1, false
		}
		cp -= 0x10000
		hi := uint16(0xD800 + (cp >> 10))
		lo := uint16(0xDC00 + (cp & 0x3FF))
		PutU16(out, hi, endian)
		PutU16(out[2:], lo, endian)
		return 2, false
	default:
		return 0, true
	}
}

// EncodeUTF8 writes cp as UTF-8 into out and returns the byte count.
func EncodeUTF8(cp rune, out []byte) int {
	switch {
	case cp < 0x80:
		out[0] = byte(cp)
		return 1
	case cp < 0x800:
		out[0] = 0xC0 | byte(cp>>6)
		out[1] = 0x80 | byte(cp&0x3F)
		return 2
	case cp < 0x10000:
		out[0] = 0xE0 | byte(cp>>12)
		out[1] = 0x80 | byte((cp>>6)&0x3F)
		out[2] = 0x80 | byte(cp&0x3F)
		return 3
	default:
		out[0] = 0xF0 | byte(cp>>18)
		out[1] = 0x80 | byte((cp>>12)&0x3F)
		out[2] = 0x80 | byte((cp>>6)&0x3F)
		out[3] = 0x80 | byte(cp&0x3F)
		return 4
	}
}
