package main

import (
	"fmt"
	"strings"

	"github.com/tidalcode/unichar/pkg/encoding"
)

// parseEncoding accepts the lowercase names encoding.Encoding.String() uses,
// so --from/--to flags round-trip with whatever the engine itself reports in
// a Result/log line.
func parseEncoding(s string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "latin1":
		return encoding.LATIN1, nil
	case "utf8":
		return encoding.UTF8, nil
	case "utf16":
		return encoding.UTF16, nil
	case "utf16le":
		return encoding.UTF16LE, nil
	case "utf16be":
		return encoding.UTF16BE, nil
	case "utf32":
		return encoding.UTF32, nil
	default:
		return 0, fmt.Errorf("unknown encoding %q (want one of latin1, utf8, utf16, utf16le, utf16be, utf32)", s)
	}
}

// parseEndian accepts "le"/"be"/"native" for the --source-endian and
// --dest-endian flags, which matter only when the corresponding encoding is
// the native-order UTF16/UTF32 (spec.md §6).
func parseEndian(s string) (encoding.Endian, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "native":
		return encoding.NativeEndian, nil
	case "le", "little":
		return encoding.LittleEndian, nil
	case "be", "big":
		return encoding.BigEndian, nil
	default:
		return 0, fmt.Errorf("unknown endian %q (want le, be, or native)", s)
	}
}

// parsePolicy maps the CLI's --policy flag to one of spec.md §3's named
// ProcessPolicy presets.
func parsePolicy(s string) (encoding.ProcessPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return encoding.DEFAULT, nil
	case "write-all-correct-1":
		return encoding.WriteAllCorrect1, nil
	case "write-all-correct-2":
		return encoding.WriteAllCorrect2, nil
	case "assume-valid":
		return encoding.AssumeValid, nil
	case "result-only":
		return encoding.ResultOnly, nil
	default:
		return encoding.ProcessPolicy{}, fmt.Errorf("unknown policy %q (want default, write-all-correct-1, write-all-correct-2, assume-valid, or result-only)", s)
	}
}
