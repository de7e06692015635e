package winner

// Winner is the immutable result of one balanced-Gray-code search.
//
// Fields follow §4.7's fixed order, which §6's serialization format
// depends on: SetCode, Places, BaseSum, Imbalance, MaxTrans, MaxSpan,
// StdDev (meaningful only if TrackStdDev), Proven, then the cycle.
type Winner struct {
	SetCode     uint32
	Places      int
	BaseSum     int
	Imbalance   int
	MaxTrans    int
	MaxSpan     int
	StdDev      float64
	TrackStdDev bool
	Proven      bool

	numerals []int // length N; the winning Hamiltonian cycle, in visit order
}

// New constructs a Winner, taking a defensive copy of numerals so the
// caller's backing array can be reused afterward.
func New(setCode uint32, places, baseSum, imbalance, maxTrans, maxSpan int,
	stdDev float64, trackStdDev, proven bool, numerals []int) Winner {
	w := Winner{
		SetCode:     setCode,
		Places:      places,
		BaseSum:     baseSum,
		Imbalance:   imbalance,
		MaxTrans:    maxTrans,
		MaxSpan:     maxSpan,
		StdDev:      stdDev,
		TrackStdDev: trackStdDev,
		Proven:      proven,
	}
	if len(numerals) > 0 {
		w.numerals = make([]int, len(numerals))
		copy(w.numerals, numerals)
	}

	return w
}

// Numerals returns a copy of the winning cycle, in visit order
// (Numerals()[0] is always numeral index 0 per §4.4's starting state).
func (w Winner) Numerals() []int {
	if len(w.numerals) == 0 {
		return nil
	}
	out := make([]int, len(w.numerals))
	copy(out, w.numerals)

	return out
}

// N returns the cycle length (0 for an empty/unpopulated Winner).
func (w Winner) N() int { return len(w.numerals) }

// Equal reports structural equality, matching §4.7's "equality is
// structural" requirement.
func (w Winner) Equal(other Winner) bool {
	if w.SetCode != other.SetCode || w.Places != other.Places ||
		w.BaseSum != other.BaseSum || w.Imbalance != other.Imbalance ||
		w.MaxTrans != other.MaxTrans || w.MaxSpan != other.MaxSpan ||
		w.TrackStdDev != other.TrackStdDev || w.Proven != other.Proven {
		return false
	}
	if w.TrackStdDev && w.StdDev != other.StdDev {
		return false
	}
	if len(w.numerals) != len(other.numerals) {
		return false
	}
	for i := range w.numerals {
		if w.numerals[i] != other.numerals[i] {
			return false
		}
	}

	return true
}
