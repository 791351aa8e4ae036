// Package wide is the 64-byte-block engine: the spec's "SIMD" tier,
// implemented as portable Go SWAR (SIMD-within-a-register) arithmetic
// instead of hardware vector instructions.
//
// The teacher (github.com/miretskiy/simba) gets its wide lanes from cgo/
// purego calls into a compiled Rust kernel (internal/ffi). That kernel is a
// prebuilt shared object fetched from a sibling checkout this module does
// not have, so it cannot be carried forward — see DESIGN.md. What *is*
// carried forward is the teacher's own architectural answer to "what if
// there's no hardware behind this": pkg/intrinsics/doc.go argues that a
// single portable implementation, with room to add true wide variants later
// "if evidence demands it", beats bloating the surface for lane widths that
// don't change behavior. We take that literally: every function below
// computes the exact same bit tricks spec.md §4.2/§4.4 describes for a real
// vector unit (movemask via a magic multiply, popcount/ctz via math/bits,
// lane expansion via zero-extension, lane compression by a keep-mask) over
// an ordinary 64-byte Go slice, processed 8 bytes (one machine word) at a
// time. Nothing here is actually a CPU vector instruction; it is the
// software shape of one, sized to the spec's 64-byte block.
//
// Every claim this package's validators make is, by construction, backed by
// the exact same decode primitives pkg/scalar uses (DecodeOne,
// EmitCodePoint, …): the wide engine only changes how many bytes it can
// skip in one branch when a block turns out to be uninteresting (pure
// ASCII, pure BMP, …); it never changes how a single code unit is decoded.
// That is what makes property 6 (scalar/SIMD equivalence, spec.md §8) hold
// by construction rather than by testing alone.
package wide

// Stride is the wide engine's block size in bytes, matching spec.md's
// 64-byte SIMD lane.
const Stride = 64
