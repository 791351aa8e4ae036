package wide

import (
	"github.com/tidalcode/unichar/pkg/encoding"
	"github.com/tidalcode/unichar/pkg/scalar"
)

// ValidateUTF16 is the bulk validator of spec.md §4.5.5: it fast-skips
// whole Stride-byte blocks whose units are all 7-bit ASCII
// (PureBMPMask16 == 0) and falls back to scalar.IsSurrogate-driven
// pair checking, unit by unit, for everything else.
func ValidateUTF16(src []byte, srcEndian encoding.Endian) encoding.Result {
	srcEndian = srcEndian.Resolve()
	srcLE := srcEndian == encoding.LittleEndian
	n := len(src) / 2
	i := 0
	for i*2+Stride <= len(src) && PureBMPMask16(src[i*2:i*2+Stride], srcLE) == 0 {
		i += Stride / 2
	}
	for i < n {
		u := scalar.GetU16(src[i*2:], srcEndian)
		if !scalar.IsSurrogate(u) {
			i++
			for i*2+Stride <= len(src) && PureBMPMask16(src[i*2:i*2+Stride], srcLE) == 0 {
				i += Stride / 2
			}
			continue
		}
		if scalar.IsLowSurrogate(u) {
			return encoding.Result{Error: encoding.SURROGATE, Input: uint64(i)}
		}
		if i+1 >= n {
			return encoding.Result{Error: encoding.TOO_SHORT, Input: uint64(i)}
		}
		next := scalar.GetU16(src[(i+1)*2:], srcEndian)
		if !scalar.IsLowSurrogate(next) {
			return encoding.Result{Error: encoding.SURROGATE, Input: uint64(i)}
		}
		i += 2
	}
	return encoding.Result{Error: encoding.NONE, Input: uint64(n)}
}

// ConvertUTF16 transcodes src (srcEndian UTF-16) into dst, fast-skipping
// all-ASCII Stride-byte blocks for UTF-16/UTF-32 destinations (an
// Expand16To32/byte-flip/copy as dst requires) and falling back to scalar.ConvertUTF16's surrogate-pair
// logic one unit (or pair) at a time for everything else.
func ConvertUTF16(dst encoding.Encoding, policy encoding.ProcessPolicy, src []byte, srcEndian encoding.Endian, out []byte, destEndian encoding.Endian) encoding.Result {
	srcEndian = srcEndian.Resolve()
	destEndian = destEndian.Resolve()
	srcLE := srcEndian == encoding.LittleEndian
	n := len(src) / 2
	w := dst.CodeUnitWidth()
	i, o := 0, 0 // o counts dst code units; out is indexed at o*w

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

	emitPureBlock := func(block []byte) {
		switch dst {
		case encoding.UTF32:
			Expand16To32(out[o*4:], block, srcEndian, destEndian)
			o += len(block) / 2
		case encoding.UTF16, encoding.UTF16LE, encoding.UTF16BE:
			dstEndian := destEndian
			if fixed, ok := encoding.FixedEndianOf(dst); ok {
				dstEndian = fixed
			}
			if (dstEndian == encoding.BigEndian) == (srcEndian == encoding.BigEndian) {
				copy(out[o*2:], block)
			} else {
				ByteFlip64(out[o*2:], block)
			}
			o += len(block) / 2
		default:
			// LATIN1/UTF8 take no block-level fast path here
			// (pureBlockEligible is false for them); every unit goes through
			// the per-unit path below.
		}
	}

	pureBlockEligible := dst == encoding.UTF32 || dst.IsWide16()

	for i*2+Stride <= len(src) && PureBMPMask16(src[i*2:i*2+Stride], srcLE) == 0 && pureBlockEligible {
		block := src[i*2 : i*2+Stride]
		emitPureBlock(block)
		i += Stride / 2
	}

	for i < n {
		u := scalar.GetU16(src[i*2:], srcEndian)
		var cp rune
		width := 1
		if scalar.IsSurrogate(u) {
			if scalar.IsLowSurrogate(u) {
				if !policy.AssumeCorrect {
					return emitFail(encoding.SURROGATE, i)
				}
				cp = rune(u)
			} else if i+1 >= n {
				if !policy.AssumeCorrect {
					return emitFail(encoding.TOO_SHORT, i)
				}
				return encoding.Result{Error: encoding.NONE, Input: uint64(i), Output: uint64(o)}
			} else {
				low := scalar.GetU16(src[(i+1)*2:], srcEndian)
				if !scalar.IsLowSurrogate(low) {
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

		written, tooLarge := scalar.EmitUTF16CodePoint(cp, dst, out[o*w:], destEndian)
		if tooLarge {
			return emitFail(encoding.TOO_LARGE, i)
		}
		o += written
		i += width

		if pureBlockEligible {
			for i*2+Stride <= len(src) && PureBMPMask16(src[i*2:i*2+Stride], srcLE) == 0 {
				emitPureBlock(src[i*2 : i*2+Stride])
				i += Stride / 2
			}
		}
	}
	return encoding.Result{Error: encoding.NONE, Input: uint64(n), Output: uint64(o)}
}
