package winner_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/victimofleisure/BalaGrayIter/winner"
)

func TestNewDefensiveCopy(t *testing.T) {
	numerals := []int{0, 1, 3, 2}
	w := winner.New(0x22, 2, 4, 0, 2, 2, 0, false, true, numerals)

	numerals[0] = 99 // mutate caller's backing array
	require.Equal(t, []int{0, 1, 3, 2}, w.Numerals(), "Winner must not alias caller's slice")
}

func TestNumeralsReturnsCopy(t *testing.T) {
	w := winner.New(0x22, 2, 4, 0, 2, 2, 0, false, true, []int{0, 1, 3, 2})
	got := w.Numerals()
	got[0] = 42
	require.Equal(t, []int{0, 1, 3, 2}, w.Numerals(), "mutating a returned copy must not affect the Winner")
}

func TestEqual(t *testing.T) {
	a := winner.New(0x22, 2, 4, 0, 2, 2, 0, false, true, []int{0, 1, 3, 2})
	b := winner.New(0x22, 2, 4, 0, 2, 2, 0, false, true, []int{0, 1, 3, 2})
	require.True(t, a.Equal(b))

	c := winner.New(0x22, 2, 4, 0, 2, 2, 0, false, true, []int{0, 1, 2, 3})
	require.False(t, a.Equal(c))
}

func TestEqualIgnoresStdDevWhenNotTracked(t *testing.T) {
	a := winner.New(0x22, 2, 4, 0, 2, 2, 1.23, false, true, []int{0, 1, 3, 2})
	b := winner.New(0x22, 2, 4, 0, 2, 2, 9.87, false, true, []int{0, 1, 3, 2})
	require.True(t, a.Equal(b), "StdDev must be ignored when TrackStdDev is false")
}
