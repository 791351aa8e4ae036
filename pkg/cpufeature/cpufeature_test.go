package cpufeature

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectReturnsAKnownTier(t *testing.T) {
	tier := Detect()
	switch tier {
	case TierNone, TierSSE, TierAVX2, TierAVX512:
		// ok
	default:
		t.Fatalf("unexpected tier: %v", tier)
	}
}

func TestSummaryMentionsSoftwarePath(t *testing.T) {
	s := Summary()
	require.True(t, strings.Contains(s, "wide path: portable software"))
}

func TestTierString(t *testing.T) {
	require.Equal(t, "none", TierNone.String())
	require.Equal(t, "sse/neon", TierSSE.String())
	require.Equal(t, "avx2", TierAVX2.String())
	require.Equal(t, "avx512", TierAVX512.String())
}
