package scalar

import "github.com/tidalcode/unichar/pkg/encoding"

// IsHighSurrogate / IsLowSurrogate classify a UTF-16 code unit already read
// in host order (endian has already been applied by the caller).
func IsHighSurrogate(u uint16) bool { return u&0xFC00 == 0xD800 }
func IsLowSurrogate(u uint16) bool  { return u&0xFC00 == 0xDC00 }
func IsSurrogate(u uint16) bool     { return u&0xF800 == 0xD800 }

// ValidateUTF16 walks src (srcEndian code units) and returns the offset (in
// code units) and kind of the first malformed sequence: a lone high
// surrogate (no following low surrogate, or end of input) or a lone low
// surrogate.
func ValidateUTF16(src []byte, srcEndian encoding.Endian) encoding.Result {
	srcEndian = srcEndian.Resolve()
	n := len(src) / 2
	for i := 0; i < n; i++ {
		u := GetU16(src[i*2:], srcEndian)
		if !IsSurrogate(u) {
			continue
		}
		if IsLowSurrogate(u) {
			return encoding.Result{Error: encoding.SURROGATE, Input: uint64(i)}
		}
		// high surrogate: must be followed by a low surrogate
		if i+1 >= n {
			return encoding.Result{Error: encoding.TOO_SHORT, Input: uint64(i)}
		}
		next := GetU16(src[(i+1)*2:], srcEndian)
		if !IsLowSurrogate(next) {
			return encoding.Result{Error: encoding.SURROGATE, Input: uint64(i)}
		}
		i++ // consumed the pair
	}
	return encoding.Result{Error: encoding.NONE, Input: uint64(n)}
}

// LengthUTF16To predicts the dst code-unit count for src (UTF-16 code
// units in srcEndian order).
func LengthUTF16To(dst encoding.Encoding, src []byte, srcEndian encoding.Endian) uint64 {
	srcEndian = srcEndian.Resolve()
	n := len(src) / 2
	switch dst {
	case encoding.UTF16, encoding.UTF16LE, encoding.UTF16BE:
		return uint64(n)
	case encoding.LATIN1:
		return uint64(n) // exact count only once converted; see convert-time check
	case encoding.UTF32:
		var count uint64
		for i := 0; i < n; i++ {
			u := GetU16(src[i*2:], srcEndian)
			if !IsLowSurrogate(u) {
				count++
			}
		}
		return count
	case encoding.UTF8:
		var count uint64
		for i := 0; i < n; i++ {
			w := GetU16(src[i*2:], srcEndian)
			switch {
			case w <= 0x7F:
				count += 1
			case w <= 0x7FF:
				count += 2
			case w >= 0xD800 && w <= 0xDFFF:
				count += 2 // each surrogate half contributes 2 bytes (4 total per pair)
			default:
				count += 3
			}
		}
		return count
	default:
		return 0
	}
}

// ConvertUTF16 transcodes src (srcEndian UTF-16) into dst.
func ConvertUTF16(dst encoding.Encoding, policy encoding.ProcessPolicy, src []byte, srcEndian encoding.Endian, out []byte, destEndian encoding.Endian) encoding.Result {
	srcEndian = srcEndian.Resolve()
	destEndian = destEndian.Resolve()
	n := len(src) / 2
	w := dst.CodeUnitWidth()
	o := 0 // counts dst code units; out is indexed at o*w

	emitFail := func(err encoding.ErrorKind, unitOff int) encoding.Result {
		r := encoding.Result{Error: err}
		if policy.ReportError {
			r.Input = uint64(unitOff)
		}
		if policy.WriteAllCorrect {
			r.Output = uint64(o)
		}
		return r
	}

	i := 0
	for i < n {
		u := GetU16(src[i*2:], srcEndian)
		var cp rune
		width := 1
		if IsSurrogate(u) {
			if IsLowSurrogate(u) {
				if !policy.AssumeCorrect {
					return emitFail(encoding.SURROGATE, i)
				}
				cp = rune(u)
			} else {
				if i+1 >= n {
					if !policy.AssumeCorrect {
						return emitFail(encoding.TOO_SHORT, i)
					}
					return encoding.Result{Error: encoding.NONE, Input: uint64(i), Output: uint64(o)}
				}
				low := GetU16(src[(i+1)*2:], srcEndian)
				if !IsLowSurrogate(low) {
					if !policy.AssumeCorrect {
						return emitFail(encoding.SURROGATE, i)
					}
					cp = rune(u)
				} else {
					cp = (rune(u-0xD800) << 10) + rune(low-0xDC00) + 0x10000
					width = 2
				}
			}
		} else {
			cp = rune(u)
		}

		written, tooLarge := EmitUTF16CodePoint(cp, dst, out[o*w:], destEndian)
		if tooLarge {
			return emitFail(encoding.TOO_LARGE, i)
		}
		o += written
		i += width
	}
	return encoding.Result{Error: encoding.NONE, Input: uint64(n), Output: uint64(o)}
}

func EmitUTF16CodePoint(cp rune, dst encoding.Encoding, out []byte, destEndian encoding.Endian) (written int, tooLarge bool) {
	switch dst {
	case encoding.LATIN1:
		if cp > 0xFF {
			return 0, true
		}
		out[0] = byte(cp)
		return 1, false
	case encoding.UTF8:
		return EncodeUTF8(cp, out), false
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
		// cp was reassembled from a source surrogate pair; re-split it into
		// a destination surrogate pair rather than truncating it into one
		// code unit.
		split := cp - 0x10000
		hi := uint16(0xD800 + (split >> 10))
		lo := uint16(0xDC00 + (split & 0x3FF))
		PutU16(out, hi, endian)
		PutU16(out[2:], lo, endian)
		return 2, false
	default:
		return 0, true
	}
}

// FlipEndian16 byte-swaps every 16-bit code unit of src into out. Used both
// as the UTF16LE<->UTF16BE convert path and as the standalone FlipEndian
// entry point (spec.md §6).
func FlipEndian16(src []byte, out []byte) {
	n := len(src) / 2
	for i := 0; i < n; i++ {
		out[i*2] = src[i*2+1]
		out[i*2+1] = src[i*2]
	}
}
