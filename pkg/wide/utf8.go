package wide

import (
	"github.com/tidalcode/unichar/pkg/encoding"
	"github.com/tidalcode/unichar/pkg/scalar"
)

// ValidateUTF8 is the bulk validator of spec.md §4.5.3: it fast-skips
// whole Stride-byte blocks that are pure ASCII (SignMask64 == 0) and, for
// everything else, decodes sequence by sequence using the exact same
// scalar.DecodeOne the reference engine uses. Because every resync point
// this loop ever stops at is either the very start of src or the end of a
// just-decoded sequence, it is always already a leading-byte offset — in
// the rare case a caller has adjusted i by hand before calling in (a
// custom partial-block resume, say), RewindToLeadingByte defends against
// starting mid-sequence, exactly as spec.md §4.3.1 describes for the
// fast-path/rewind relationship.
func ValidateUTF8(src []byte) encoding.Result {
	i := 0
	n := len(src)
	for i+Stride <= n && IsPureASCII64(src[i:i+Stride]) {
		i += Stride
	}
	if i < n {
		i = scalar.RewindToLeadingByte(src, i)
	}
	for i < n {
		d := scalar.DecodeOne(src, i)
		if d.Err != encoding.NONE {
			return encoding.Result{Error: d.Err, Input: uint64(i)}
		}
		i += d.Width
		for i+Stride <= n && IsPureASCII64(src[i:i+Stride]) {
			i += Stride
		}
	}
	return encoding.Result{Error: encoding.NONE, Input: uint64(n)}
}

// ConvertUTF8 transcodes src (UTF-8) into dst, fast-skipping pure-ASCII
// Stride-byte blocks (a straight copy, or a zero-extend for wider
// destinations) and decoding everything else sequence by sequence via
// scalar.DecodeOne/EmitCodePoint — the same "load block, branch on purity,
// emit fast or full path, advance" skeleton every engine in spec.md §4.5
// follows.
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

	emitASCIIBlock := func(block []byte) {
		switch dst {
		case encoding.UTF8, encoding.LATIN1:
			o += copy(out[o:], block)
		case encoding.UTF16, encoding.UTF16LE, encoding.UTF16BE:
			Expand8To16(out[o*2:], block, resolveDestEndian(dst, destEndian))
			o += len(block)
		case encoding.UTF32:
			Expand8To32(out[o*4:], block, destEndian)
			o += len(block)
		}
	}

	for i+Stride <= n {
		block := src[i : i+Stride]
		if IsPureASCII64(block) {
			emitASCIIBlock(block)
			i += Stride
			continue
		}
		break
	}

	for i < n {
		d := scalar.DecodeOne(src, i)
		if d.Err != encoding.NONE && !policy.AssumeCorrect {
			return emitFail(d.Err, i)
		}
		if d.Err != encoding.NONE {
			return encoding.Result{Error: encoding.NONE, Input: uint64(i), Output: uint64(o)}
		}
		written, tooLarge := scalar.EmitCodePoint(d.Cp, dst, out[o*w:], destEndian)
		if tooLarge {
			return emitFail(encoding.TOO_LARGE, i)
		}
		o += written
		i += d.Width

		for i+Stride <= n && IsPureASCII64(src[i:i+Stride]) {
			emitASCIIBlock(src[i : i+Stride])
			i += Stride
		}
	}
	return encoding.Result{Error: encoding.NONE, Input: uint64(n), Output: uint64(o)}
}

// resolveDestEndian returns the endian that governs writes to a UTF-16
// destination: the encoding's own fixed endian if it has one, else the
// caller-supplied destEndian.
func resolveDestEndian(dst encoding.Encoding, destEndian encoding.Endian) encoding.Endian {
	if fixed, ok := encoding.FixedEndianOf(dst); ok {
		return fixed
	}
	return destEndian
}
