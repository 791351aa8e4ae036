package scalar

import "github.com/tidalcode/unichar/pkg/encoding"

// ValidateUTF32 walks src (srcEndian 32-bit code units) and returns the
// offset (in code units) and kind of the first unit that is not a valid
// Unicode scalar value: outside [0, 0x10FFFF] or inside the surrogate range.
func ValidateUTF32(src []byte, srcEndian encoding.Endian) encoding.Result {
	srcEndian = srcEndian.Resolve()
	n := len(src) / 4
	for i := 0; i < n; i++ {
		u := GetU32(src[i*4:], srcEndian)
		if u > 0x10FFFF {
			return encoding.Result{Error: encoding.TOO_LARGE, Input: uint64(i)}
		}
		if u >= 0xD800 && u <= 0xDFFF {
			return encoding.Result{Error: encoding.SURROGATE, Input: uint64(i)}
		}
	}
	return encoding.Result{Error: encoding.NONE, Input: uint64(n)}
}

// LengthUTF32To predicts the dst code-unit count for src (UTF-32 code units
// in srcEndian order). As with the UTF-16 engine, the LATIN1 prediction is
// the unit count; any unit > 0xFF is flagged as TOO_LARGE at convert time.
func LengthUTF32To(dst encoding.Encoding, src []byte, srcEndian encoding.Endian) uint64 {
	srcEndian = srcEndian.Resolve()
	n := len(src) / 4
	switch dst {
	case encoding.UTF32:
		return uint64(n)
	case encoding.LATIN1:
		return uint64(n)
	case encoding.UTF16, encoding.UTF16LE, encoding.UTF16BE:
		var count uint64
		for i := 0; i < n; i++ {
			u := GetU32(src[i*4:], srcEndian)
			count++
			if u > 0xFFFF {
				count++
			}
		}
		return count
	case encoding.UTF8:
		var count uint64
		for i := 0; i < n; i++ {
			u := GetU32(src[i*4:], srcEndian)
			switch {
			case u <= 0x7F:
				count++
			case u <= 0x7FF:
				count += 2
			case u <= 0xFFFF:
				count += 3
			default:
				count += 4
			}
		}
		return count
	default:
		return 0
	}
}

// ConvertUTF32 transcodes src (srcEndian UTF-32) into dst, reusing
// EmitCodePoint so every destination encoding shares one emission path with
// the UTF-8 engine.
func ConvertUTF32(dst encoding.Encoding, policy encoding.ProcessPolicy, src []byte, srcEndian encoding.Endian, out []byte, destEndian encoding.Endian) encoding.Result {
	srcEndian = srcEndian.Resolve()
	destEndian = destEndian.Resolve()
	n := len(src) / 4
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

	for i := 0; i < n; i++ {
		u := GetU32(src[i*4:], srcEndian)
		cp := rune(u)
		if !policy.AssumeCorrect {
			if u > 0x10FFFF {
				return emitFail(encoding.TOO_LARGE, i)
			}
			if u >= 0xD800 && u <= 0xDFFF {
				return emitFail(encoding.SURROGATE, i)
			}
		}
		written, tooLarge := EmitCodePoint(cp, dst, out[o*w:], destEndian)
		if tooLarge {
			return emitFail(encoding.TOO_LARGE, i)
		}
		o += written
	}
	return encoding.Result{Error: encoding.NONE, Input: uint64(n), Output: uint64(o)}
}
