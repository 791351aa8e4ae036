// Package cpufeature reports which wide-SIMD tier the host hardware would
// support, for diagnostics and logging only. pkg/wide's block engine is
// portable Go SWAR (see pkg/wide's doc comment) and never branches on any
// of this; the report exists purely so a caller — the CLI's slog line, a
// metrics exporter — can record what hardware *could* have backed the wide
// path, the same way a production transcoder would note which backend
// served a request.
package cpufeature

import "golang.org/x/sys/cpu"

// Tier names the widest hardware vector tier detected on the current host.
// It never gates correctness or dispatch; pkg/transcode picks scalar vs.
// wide purely by input length (see pkg/transcode/threshold.go).
type Tier uint8

const (
	// TierNone means no tier beyond plain scalar instructions was detected.
	TierNone Tier = iota
	// TierSSE means the host has at least a 128-bit vector unit
	// (SSE4.1/NEON-class).
	TierSSE
	// TierAVX2 means the host has at least a 256-bit vector unit.
	TierAVX2
	// TierAVX512 means the host has a 512-bit vector unit — the class the
	// spec's SIMD engines target (spec.md §1, "AVX-512 / Icelake class").
	TierAVX512
)

func (t Tier) String() string {
	switch t {
	case TierSSE:
		return "sse/neon"
	case TierAVX2:
		return "avx2"
	case TierAVX512:
		return "avx512"
	default:
		return "none"
	}
}

// Detect reports the widest vector tier the current process's hardware
// supports, purely for diagnostics: pkg/wide's 64-byte block engine is
// identical Go code regardless of what this reports.
func Detect() Tier {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL:
		return TierAVX512
	case cpu.X86.HasAVX2:
		return TierAVX2
	case cpu.X86.HasSSE41:
		return TierSSE
	case cpu.ARM64.HasASIMD:
		return TierSSE
	default:
		return TierNone
	}
}

// Summary renders a one-line description suitable for a startup log line:
// the detected hardware tier, plus a note that the wide engine runs in
// software regardless (spec.md §9's "SIMD availability" note: an
// implementer without 512-bit SIMD may ship a narrower tier, or scalar
// only — this module always ships the portable-SWAR wide tier).
func Summary() string {
	return "hardware tier " + Detect().String() + " (wide path: portable software, not hardware-dependent)"
}
