package crawler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/victimofleisure/BalaGrayIter/numeral"
)

func TestIncrementTransOnlyDiffingPlaces(t *testing.T) {
	b := []int{3, 3}
	prev := numeral.Unpack(b, 0)
	next := numeral.Unpack(b, 1) // differs only in place 0

	out := incrementTrans(frameCount{}, prev, next, 2)
	require.Equal(t, 1, out[0])
	require.Equal(t, 0, out[1])
}

func TestImbalanceAndMaxTrans(t *testing.T) {
	trans := frameCount{5, 2, 8}
	imb, mt := imbalanceAndMaxTrans(trans, 3)
	require.Equal(t, 6, imb)
	require.Equal(t, 8, mt)
}

func TestImbalanceAndMaxTransSinglePlace(t *testing.T) {
	trans := frameCount{7}
	imb, mt := imbalanceAndMaxTrans(trans, 1)
	require.Equal(t, 0, imb)
	require.Equal(t, 7, mt)
}

func TestSpanAndStdDevConstantSpanIsZeroStdDev(t *testing.T) {
	// B=(2,2): a 4-cycle visiting every numeral, transitioning exactly one
	// place per step, each place changing every other step: span == places
	// for every completed and wrap-joined span, so stddev must be exactly 0.
	b := []int{2, 2}
	path := []numeral.Digits{
		numeral.Unpack(b, 0),
		numeral.Unpack(b, 1),
		numeral.Unpack(b, 3),
		numeral.Unpack(b, 2),
	}
	ms, sd := spanAndStdDev(path, 2)
	require.Equal(t, 2, ms)
	require.InDelta(t, 0.0, sd, 1e-9)
}

func digitsOf(d ...int8) numeral.Digits {
	var out numeral.Digits
	copy(out[:], d)
	return out
}

func TestSpanAndStdDevWrapTransitionKeepsFirstSpanTerm(t *testing.T) {
	// The standard 3-bit reflected Gray cycle (set code 0x222, B=(2,2,2)).
	// Place 0's wrap edge transitions, so its first and last runs must
	// both contribute a deviation term rather than being folded into one
	// composite span; hand-traced expected stddev is 1.0.
	path := []numeral.Digits{
		digitsOf(0, 0, 0),
		digitsOf(0, 0, 1),
		digitsOf(0, 1, 1),
		digitsOf(0, 1, 0),
		digitsOf(1, 1, 0),
		digitsOf(1, 1, 1),
		digitsOf(1, 0, 1),
		digitsOf(1, 0, 0),
	}
	ms, sd := spanAndStdDev(path, 3)
	require.Equal(t, 4, ms)
	require.InDelta(t, 1.0, sd, 1e-9)
}
