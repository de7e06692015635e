package numeral_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/victimofleisure/BalaGrayIter/numeral"
)

func TestPackUnpackBijection(t *testing.T) {
	b := []int{2, 3, 4}
	n := 1
	for _, r := range b {
		n *= r
	}

	seen := make(map[numeral.Digits]bool, n)
	for i := 0; i < n; i++ {
		d := numeral.Unpack(b, i)
		require.False(t, seen[d], "unpack produced a duplicate digit tuple")
		seen[d] = true
		require.Equal(t, i, numeral.Pack(b, d), "pack(unpack(i)) must equal i")
	}
	require.Len(t, seen, n)
}

func TestPackUnpackAllDigitsInverse(t *testing.T) {
	b := []int{3, 2}
	for d0 := 0; d0 < b[0]; d0++ {
		for d1 := 0; d1 < b[1]; d1++ {
			var d numeral.Digits
			d[0], d[1] = int8(d0), int8(d1)
			idx := numeral.Pack(b, d)
			got := numeral.Unpack(b, idx)
			require.Equal(t, d[0], got[0])
			require.Equal(t, d[1], got[1])
		}
	}
}

func TestDiffPlaces(t *testing.T) {
	var a, c numeral.Digits
	a[0], a[1], a[2] = 1, 2, 3
	c[0], c[1], c[2] = 1, 0, 3
	require.Equal(t, 1, numeral.DiffPlaces(a, c, 3))
	require.True(t, numeral.Equal(a, a, 3))
	require.False(t, numeral.Equal(a, c, 3))
}
