package crawler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorstKeyIsAllInf(t *testing.T) {
	k := worstKey()
	require.Equal(t, math.MaxInt, k.maxTrans)
	require.Equal(t, math.MaxInt, k.imbalance)
	require.Equal(t, math.MaxInt, k.maxSpan)
	require.True(t, math.IsInf(k.stdDev, 1))
}

func TestIsBetterMaxSpanOrdering(t *testing.T) {
	best := candidateKey{maxTrans: 3, imbalance: 2, maxSpan: 5, stdDev: 1.0}

	require.True(t, isBetter(MaxSpan, candidateKey{maxTrans: 2, imbalance: 9, maxSpan: 9, stdDev: 9}, best))
	require.False(t, isBetter(MaxSpan, candidateKey{maxTrans: 4, imbalance: 0, maxSpan: 0, stdDev: 0}, best))
	require.True(t, isBetter(MaxSpan, candidateKey{maxTrans: 3, imbalance: 1, maxSpan: 9, stdDev: 9}, best))
	require.True(t, isBetter(MaxSpan, candidateKey{maxTrans: 3, imbalance: 2, maxSpan: 4, stdDev: 9}, best))
	require.False(t, isBetter(MaxSpan, best, best))
}

func TestIsBetterStdDevOnlyIgnoresMaxSpan(t *testing.T) {
	best := candidateKey{maxTrans: 3, imbalance: 2, maxSpan: 5, stdDev: 1.0}
	cand := candidateKey{maxTrans: 3, imbalance: 2, maxSpan: 100, stdDev: 0.5}

	require.True(t, isBetter(StdDevOnly, cand, best))
	require.False(t, isBetter(StdDevOnly, candidateKey{maxTrans: 3, imbalance: 2, maxSpan: 0, stdDev: 1.0}, best))
}

func TestIsBetterStdDevTiebreakUsesMaxSpanFirst(t *testing.T) {
	best := candidateKey{maxTrans: 3, imbalance: 2, maxSpan: 5, stdDev: 1.0}
	better := candidateKey{maxTrans: 3, imbalance: 2, maxSpan: 4, stdDev: 9.0}
	tie := candidateKey{maxTrans: 3, imbalance: 2, maxSpan: 5, stdDev: 0.5}

	require.True(t, isBetter(StdDevTiebreak, better, best))
	require.True(t, isBetter(StdDevTiebreak, tie, best))
	require.False(t, isBetter(StdDevTiebreak, best, best))
}
