package encoding

// Result is the uniform record every validate/length/convert operation
// produces. Input is the count of source code units consumed before
// stopping (or, on success, the full source length); Output is the count of
// destination code units written (populated only when the governing
// ProcessPolicy asks for it).
//
// Invariant: Error == NONE iff Input equals the source length and Output
// equals the predicted destination length.
type Result struct {
	Error  ErrorKind
	Input  uint64
	Output uint64
}

// OK reports whether r represents unqualified success.
func (r Result) OK() bool {
	return r.Error == NONE
}

// Option carries the handful of call-site parameters convert/validate need
// beyond (src, dst, policy): the endian of a native-order UTF-16 source or
// destination.
type Option struct {
	// SourceEndian is consulted whenever the source encoding is UTF16 or
	// UTF32 (native order); ignored for UTF16LE/UTF16BE/other encodings.
	SourceEndian Endian
	// DestEndian is consulted whenever the destination encoding is UTF16 or
	// UTF32 (native order).
	DestEndian Endian
}
