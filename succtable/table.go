package succtable

import "github.com/victimofleisure/BalaGrayIter/numeral"

// MaxNumerals is the largest numeral count a crawler can search: two
// 64-bit words, minus one bit of headroom (§3).
const MaxNumerals = 127

// Table is the dense Gray-successor table G plus the metadata the
// crawler needs to address it without a multiply.
type Table struct {
	N           int   // numeral count
	K           int   // out-degree: sum(b_i - 1), identical for every row
	StrideShift int   // row stride is 1 << StrideShift
	Rows        []int // flat N * (1<<StrideShift) table; padding entries are never read
	WrapMask    uint64
	WrapOK      bool // true iff every successor of numeral 0 has index < 64
}

// rowLen returns 1 << StrideShift, the padded row width.
func (t *Table) rowLen() int { return 1 << uint(t.StrideShift) }

// At returns the column-th successor of numeral index i. Callers must
// keep col < t.K; padding columns are never populated and must never be
// consulted (§3).
func (t *Table) At(i, col int) int {
	return t.Rows[i<<uint(t.StrideShift)+col]
}

// stride1Shift returns the smallest s with (1<<s) >= k.
func stride1Shift(k int) int {
	shift := 0
	for (1 << uint(shift)) < k {
		shift++
	}

	return shift
}

// Build constructs the successor table for radix vector b, per §3/§4.3.
//
// Preconditions enforced here:
//   - 2 <= len(b) <= numeral.MaxPlaces.
//   - every b_i in [2,15].
//   - N = product(b_i) <= MaxNumerals.
//
// WrapOK reports whether every successor of numeral 0 is < 64, which is
// required for the crawler's wrap-prediction optimization; Build itself
// never fails solely because WrapOK is false — callers that require wrap
// prediction check WrapOK and fail with ErrCapacityExceeded themselves.
func Build(b []int) (*Table, error) {
	places := len(b)
	if places < 2 || places > numeral.MaxPlaces {
		return nil, wrapf("Build", ErrInvalidPlaceCount)
	}

	n := 1
	k := 0
	for _, r := range b {
		if r < 2 {
			return nil, wrapf("Build", ErrRadixTooSmall)
		}
		if r > 15 {
			return nil, wrapf("Build", ErrRadixTooLarge)
		}
		n *= r
		k += r - 1
		if n > MaxNumerals {
			return nil, wrapf("Build", ErrCapacityExceeded)
		}
	}

	shift := stride1Shift(k)
	t := &Table{
		N:           n,
		K:           k,
		StrideShift: shift,
		Rows:        make([]int, n<<uint(shift)),
	}

	var (
		i, col, place, v int
		d                numeral.Digits
	)
	for i = 0; i < n; i++ {
		d = numeral.Unpack(b, i)
		col = 0
		for place = 0; place < places; place++ {
			for v = 0; v < b[place]; v++ {
				if v == int(d[place]) {
					continue
				}
				neighbor := d
				neighbor[place] = int8(v)
				t.Rows[i*t.rowLen()+col] = numeral.Pack(b, neighbor)
				col++
			}
		}
	}

	t.WrapMask, t.WrapOK = buildWrapMask(t)

	return t, nil
}

// buildWrapMask ORs in 1<<s for every successor s of numeral 0. It
// reports WrapOK=false (and an incomplete mask) the moment a successor
// index reaches 64 or beyond, since such a configuration cannot use the
// wrap-prediction optimization (§3).
func buildWrapMask(t *Table) (mask uint64, ok bool) {
	var col, s int
	for col = 0; col < t.K; col++ {
		s = t.At(0, col)
		if s >= 64 {
			return mask, false
		}
		mask |= 1 << uint(s)
	}

	return mask, true
}
