package encoding

import "unsafe"

// nativeEndian is resolved once at init time by inspecting the byte layout
// of a known uint16, the same unsafe-free-of-syscalls trick used throughout
// the standard library's internal/byteorder tests. We deliberately avoid a
// runtime.GOARCH switch: it would need updating for every new port, whereas
// this check is self-maintaining.
var nativeEndian = func() Endian {
	var x uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&x))
	if b[0] == 1 {
		return LittleEndian
	}
	return BigEndian
}()
