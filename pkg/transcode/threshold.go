package transcode

import "github.com/tidalcode/unichar/pkg/wide"

// wideThreshold is the input length (in bytes) at or above which the
// dispatcher routes through pkg/wide instead of pkg/scalar. Unlike the
// teacher's crc32Threshold — calibrated against a measured FFI call-overhead
// break-even point — this one has no call-overhead to amortize (pkg/wide is
// plain Go, inlined the same as pkg/scalar); it exists purely so inputs
// shorter than one Stride never pay for a block loop that can't complete a
// single full iteration. Setting it to exactly one stride is therefore the
// natural choice, not a tuned constant.
const wideThreshold = wide.Stride
