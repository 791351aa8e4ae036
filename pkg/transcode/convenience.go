package transcode

import "github.com/tidalcode/unichar/pkg/encoding"

// ConvertToBytes sizes its own destination buffer via Length and returns an
// owned slice plus the Result — the "into-owned-string" convenience
// overload spec.md §3's Lifetimes note describes, adapted to Go's []byte
// rather than a null-terminated owned string.
func ConvertToBytes(src, dst encoding.Encoding, policy encoding.ProcessPolicy, input []byte, srcEndian, destEndian encoding.Endian) ([]byte, encoding.Result) {
	n := Length(src, dst, input, srcEndian)
	out := make([]byte, n*uint64(dst.CodeUnitWidth()))
	res := Convert(src, dst, policy, input, out, srcEndian, destEndian)
	return out[:res.Output*uint64(dst.CodeUnitWidth())], res
}

// ConvertToString is ConvertToBytes specialised to a UTF-8 destination,
// returning a Go string built from the converted bytes.
func ConvertToString(src encoding.Encoding, policy encoding.ProcessPolicy, input []byte, srcEndian encoding.Endian) (string, encoding.Result) {
	out, res := ConvertToBytes(src, encoding.UTF8, policy, input, srcEndian, encoding.NativeEndian)
	return string(out), res
}

// ConvertWithOption is Convert with its endian parameters bundled into a
// single encoding.Option, for callers (cmd/unichar's flag parsing, chiefly)
// that already hold source/dest endian as one value resolved once up front
// rather than as two loose arguments threaded through every call.
func ConvertWithOption(src, dst encoding.Encoding, policy encoding.ProcessPolicy, input, out []byte, opt encoding.Option) encoding.Result {
	return Convert(src, dst, policy, input, out, opt.SourceEndian, opt.DestEndian)
}

// ConvertToBytesWithOption is ConvertToBytes with its endian parameters
// bundled into an encoding.Option; see ConvertWithOption.
func ConvertToBytesWithOption(src, dst encoding.Encoding, policy encoding.ProcessPolicy, input []byte, opt encoding.Option) ([]byte, encoding.Result) {
	return ConvertToBytes(src, dst, policy, input, opt.SourceEndian, opt.DestEndian)
}
