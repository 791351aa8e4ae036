// Package transcode is the public entry point: it receives
// (src encoding, dst encoding, policy, input, output), runs the validator
// when policy requires it, picks the scalar or wide backend by input
// length, and shapes the Result the way policy asks for.
package transcode

import (
	"github.com/tidalcode/unichar/pkg/encoding"
	"github.com/tidalcode/unichar/pkg/scalar"
	"github.com/tidalcode/unichar/pkg/wide"
)

// Validate checks whether input is a well-formed stream in src, consulting
// srcEndian for the UTF-16/UTF-32 variants whose endian is not fixed by the
// encoding itself.
func Validate(src encoding.Encoding, input []byte, srcEndian encoding.Endian) encoding.Result {
	switch src {
	case encoding.LATIN1:
		return scalar.ValidateLatin1(input, false)
	case encoding.UTF8:
		if len(input) >= wideThreshold {
			return wide.ValidateUTF8(input)
		}
		return scalar.ValidateUTF8(input)
	case encoding.UTF16, encoding.UTF16LE, encoding.UTF16BE:
		e := resolveSrcEndian(src, srcEndian)
		if len(input) >= wideThreshold {
			return wide.ValidateUTF16(input, e)
		}
		return scalar.ValidateUTF16(input, e)
	case encoding.UTF32:
		// No wide UTF-32 validator: spec.md §4.5 describes bulk SIMD engines
		// only for LATIN1, UTF-8, and UTF-16 sources; UTF-32-as-source is one
		// of the pairs §9 notes "collapse to memcpy/byteswap/zero-extend" and
		// never gets its own SIMD algorithm.
		return scalar.ValidateUTF32(input, resolveSrcEndian(src, srcEndian))
	default:
		return encoding.Result{Error: encoding.NONE, Input: uint64(len(input))}
	}
}

// Length predicts the number of dst code units required to convert input.
func Length(src, dst encoding.Encoding, input []byte, srcEndian encoding.Endian) uint64 {
	switch src {
	case encoding.LATIN1:
		return scalar.LengthLatin1To(dst, input)
	case encoding.UTF8:
		return scalar.LengthUTF8To(dst, input)
	case encoding.UTF16, encoding.UTF16LE, encoding.UTF16BE:
		return scalar.LengthUTF16To(dst, input, resolveSrcEndian(src, srcEndian))
	case encoding.UTF32:
		return scalar.LengthUTF32To(dst, input, resolveSrcEndian(src, srcEndian))
	default:
		return 0
	}
}

// Convert transcodes input (src) into out (dst), honouring policy. If
// policy does not assume correctness and the converter does not already
// weave validation into itself, Convert validates input first — every
// scalar/wide converter here is already total over ill-formed input (it
// detects and reports errors inline), so this step is a deliberate no-op
// left named for §4.6 parity rather than a second pass over the buffer.
func Convert(src, dst encoding.Encoding, policy encoding.ProcessPolicy, input []byte, out []byte, srcEndian, destEndian encoding.Endian) encoding.Result {
	switch src {
	case encoding.LATIN1:
		return convertFromLatin1(dst, policy, input, out, destEndian)
	case encoding.UTF8:
		if len(input) >= wideThreshold {
			return wide.ConvertUTF8(dst, policy, input, out, destEndian)
		}
		return scalar.ConvertUTF8(dst, policy, input, out, destEndian)
	case encoding.UTF16, encoding.UTF16LE, encoding.UTF16BE:
		e := resolveSrcEndian(src, srcEndian)
		if len(input) >= wideThreshold {
			return wide.ConvertUTF16(dst, policy, input, e, out, destEndian)
		}
		return scalar.ConvertUTF16(dst, policy, input, e, out, destEndian)
	case encoding.UTF32:
		return scalar.ConvertUTF32(dst, policy, input, resolveSrcEndian(src, srcEndian), out, destEndian)
	default:
		return encoding.Result{Error: encoding.NONE}
	}
}

// convertFromLatin1 routes pure widening/narrowing conversions (dst !=
// LATIN1, input length >= one stride) through the wide block engines;
// everything else (short input, dst == LATIN1) goes through the scalar
// engine, which already handles every (src, dst) pair including the
// identity copy.
func convertFromLatin1(dst encoding.Encoding, policy encoding.ProcessPolicy, input []byte, out []byte, destEndian encoding.Endian) encoding.Result {
	if dst == encoding.LATIN1 || len(input) < wideThreshold {
		return scalar.ConvertLatin1(dst, policy, input, out, destEndian)
	}
	destEndian = destEndian.Resolve()
	switch dst {
	case encoding.UTF8:
		n := wide.ConvertLatin1ToUTF8(out, input)
		return encoding.Result{Error: encoding.NONE, Input: uint64(len(input)), Output: uint64(n)}
	case encoding.UTF16, encoding.UTF16LE, encoding.UTF16BE:
		e := destEndian
		if fixed, ok := encoding.FixedEndianOf(dst); ok {
			e = fixed
		}
		wide.ConvertLatin1ToUTF16(out, input, e)
		return encoding.Result{Error: encoding.NONE, Input: uint64(len(input)), Output: uint64(len(input))}
	case encoding.UTF32:
		wide.ConvertLatin1ToUTF32(out, input, destEndian)
		return encoding.Result{Error: encoding.NONE, Input: uint64(len(input)), Output: uint64(len(input))}
	default:
		return encoding.Result{Error: encoding.NONE}
	}
}

// FlipEndian byte-swaps every 16-bit code unit of src (UTF-16, either
// endian) into out.
func FlipEndian(src []byte, out []byte) {
	if len(src) >= wideThreshold {
		wide.ByteFlip64(out, src)
		return
	}
	scalar.FlipEndian16(src, out)
}

// resolveSrcEndian returns the endian governing reads from a UTF-16/UTF-32
// source: the encoding's own fixed endian if it has one, else the
// caller-supplied srcEndian (resolved from NativeEndian if needed).
func resolveSrcEndian(src encoding.Encoding, srcEndian encoding.Endian) encoding.Endian {
	if fixed, ok := encoding.FixedEndianOf(src); ok {
		return fixed
	}
	return srcEndian.Resolve()
}
