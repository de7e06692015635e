package numeral

// MaxPlaces is the largest number of places a radix vector may have (§3).
const MaxPlaces = 8

// Digits holds one numeral's place values. Only the first Places entries
// are meaningful; the rest are always zero.
type Digits [MaxPlaces]int8

// Pack computes the linear index of d under radix vector b:
//
//	I(d) = d_0 + d_1*b_0 + d_2*b_0*b_1 + ...
//
// b and d must have the same effective length (places); Pack reads
// exactly len(b) entries from d and ignores the rest.
func Pack(b []int, d Digits) int {
	var (
		index  int
		stride = 1
		i      int
	)
	for i = 0; i < len(b); i++ {
		index += int(d[i]) * stride
		stride *= b[i]
	}

	return index
}

// Unpack computes the numeral whose linear index under radix vector b is i.
// It is the exact inverse of Pack: Unpack(b, Pack(b, d)) == d for any
// in-range d, and Pack(b, Unpack(b, i)) == i for any i in [0, N).
func Unpack(b []int, i int) Digits {
	var (
		d Digits
		j int
	)
	for j = 0; j < len(b); j++ {
		d[j] = int8(i % b[j])
		i /= b[j]
	}

	return d
}

// Equal reports whether two numerals agree on the first places digits.
func Equal(a, c Digits, places int) bool {
	var i int
	for i = 0; i < places; i++ {
		if a[i] != c[i] {
			return false
		}
	}

	return true
}

// DiffPlaces returns the number of places at which a and c differ, among
// the first places digits. Gray neighbors are exactly the pairs for which
// this returns 1.
func DiffPlaces(a, c Digits, places int) int {
	var (
		n int
		i int
	)
	for i = 0; i < places; i++ {
		if a[i] != c[i] {
			n++
		}
	}

	return n
}
