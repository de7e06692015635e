package setcode

import "github.com/victimofleisure/BalaGrayIter/numeral"

// Decode translates a set code into its place count and radix vector.
//
// code must be nonzero. Its hex digits are consumed least-significant
// nibble first, so the lowest nibble becomes B[0]. Decode fails if more
// than numeral.MaxPlaces nibbles are present, or if any nibble is below 2
// (the smallest usable radix).
//
// Complexity: O(places), places <= numeral.MaxPlaces.
func Decode(code uint32) (places int, radices []int, err error) {
	if code == 0 {
		return 0, nil, wrapf("Decode", ErrZeroCode)
	}

	radices = make([]int, 0, numeral.MaxPlaces)
	var nibble uint32
	for code != 0 {
		if len(radices) == numeral.MaxPlaces {
			return 0, nil, wrapf("Decode", ErrTooManyPlaces)
		}
		nibble = code & 0xF
		if nibble < 2 {
			return 0, nil, wrapf("Decode", ErrRadixTooSmall)
		}
		radices = append(radices, int(nibble))
		code >>= 4
	}

	return len(radices), radices, nil
}

// Encode is the inverse of Decode: it packs a radix vector back into its
// hex set code, most significant place last. Encode does not validate
// radices[i]; callers that round-trip through Decode already know they
// are in [2,15].
func Encode(radices []int) uint32 {
	var (
		code uint32
		i    int
	)
	for i = len(radices) - 1; i >= 0; i-- {
		code = code<<4 | uint32(radices[i])
	}

	return code
}
