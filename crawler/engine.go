package crawler

import (
	"bufio"
	"os"

	"github.com/victimofleisure/BalaGrayIter/control"
	"github.com/victimofleisure/BalaGrayIter/internal/metrics"
	"github.com/victimofleisure/BalaGrayIter/numeral"
	"github.com/victimofleisure/BalaGrayIter/succtable"
	"github.com/victimofleisure/BalaGrayIter/winner"
)

// engine holds all search data and policy for one Calc invocation. A
// dedicated struct (rather than closures) keeps dependencies explicit
// and hot-path state predictable.
type engine struct {
	b      []int
	places int
	n      int
	k      int
	opts   Options
	table  *succtable.Table
	cancel *control.CancelFlag

	used mask128

	numerals []int            // numerals[i]: numeral chosen at depth i
	digits   []numeral.Digits // digits[i]: unpacked numerals[i]
	trans    []frameCount     // trans[i]: cumulative (non-wrap) counts after reaching depth i
	cols     []int            // cols[i]: next column to try at depth i

	bestKey      candidateKey
	bestNumerals []int
	haveBest     bool

	logWriter *bufio.Writer
	logFile   *os.File
}

// Calc runs the search described in §4.4 over radix vector b, per the
// given options, and returns the best Winner found. cancel may be nil,
// meaning the search always runs to completion.
//
// Calc returns an error (and no winner) on invalid input or if the
// per-search log file cannot be opened; in both cases no search work is
// performed. Otherwise it always returns a Winner: Proven is true iff
// the search exhausted its (possibly pruned) tree, false if cancel was
// observed first.
func Calc(b []int, opts Options, cancel *control.CancelFlag) (winner.Winner, error) {
	places := len(b)
	if places < 2 || places > numeral.MaxPlaces {
		return winner.Winner{}, wrapf("Calc", ErrInvalidPlaceCount)
	}
	baseSum := 0
	for _, r := range b {
		if r < 2 {
			return winner.Winner{}, wrapf("Calc", ErrRadixTooSmall)
		}
		if r > 15 {
			return winner.Winner{}, wrapf("Calc", ErrRadixTooLarge)
		}
		baseSum += r
	}

	table, err := succtable.Build(b)
	if err != nil {
		return winner.Winner{}, err
	}

	resolved := opts.resolved()
	if resolved.WrapPredict && !table.WrapOK {
		return winner.Winner{}, wrapf("Calc", ErrCapacityExceeded)
	}

	e := &engine{
		b:        b,
		places:   places,
		n:        table.N,
		k:        table.K,
		opts:     resolved,
		table:    table,
		cancel:   cancel,
		numerals: make([]int, table.N),
		digits:   make([]numeral.Digits, table.N),
		trans:    make([]frameCount, table.N),
		cols:     make([]int, table.N),
		bestKey:  worstKey(),
	}

	if resolved.LogPath != "" {
		e.logFile, err = os.Create(resolved.LogPath)
		if err != nil {
			return winner.Winner{}, wrapf("Calc", ErrIoFailure)
		}
		defer e.logFile.Close()
		e.logWriter = bufio.NewWriter(e.logFile)
		defer e.logWriter.Flush()
	}

	proven := e.run()

	var w winner.Winner
	if e.haveBest {
		w = winner.New(0, places, baseSum, e.bestKey.imbalance, e.bestKey.maxTrans,
			e.bestKey.maxSpan, e.bestKey.stdDev, resolved.OptMode != MaxSpan, proven, e.bestNumerals)
	} else {
		w = winner.New(0, places, 0, 0, 0, 0, 0, false, proven, nil)
	}

	return w, nil
}

// run executes the iterative DFS. It returns true iff the search
// exhausted its tree (proven), false if cancellation was observed.
func (e *engine) run() bool {
	var zero numeral.Digits // digits of numeral 0, all zero

	e.numerals[0] = 0
	e.digits[0] = zero
	e.used.set(0)

	depth := 1
	if e.opts.StartDepth == 2 {
		one := numeral.Unpack(e.b, 1)
		e.numerals[1] = 1
		e.digits[1] = one
		e.trans[1] = incrementTrans(frameCount{}, zero, one, e.places)
		e.used.set(1)
		depth = 2
	}
	startDepth := depth
	e.cols[depth] = 0

	for {
		if e.cancel != nil && e.cancel.IsSet() {
			return false
		}

		if e.cols[depth] >= e.k {
			if depth == startDepth {
				return true
			}
			depth--
			e.used.clear(e.numerals[depth])
			continue
		}

		col := e.cols[depth]
		e.cols[depth]++
		metrics.NodesVisitedTotal.Inc()

		prev := e.numerals[depth-1]
		c := e.table.At(prev, col)
		if e.used.test(c) {
			continue
		}
		if e.opts.WrapPredict && depth < e.n-1 {
			after := e.used
			after.set(c)
			if after.wrapExhausted(e.table.WrapMask) {
				continue
			}
		}

		cDigits := numeral.Unpack(e.b, c)
		newTrans := incrementTrans(e.trans[depth-1], e.digits[depth-1], cDigits, e.places)

		if depth < e.n-1 {
			imb, mt := imbalanceAndMaxTrans(newTrans, e.places)
			if mt > e.opts.PruneMaxTrans || imb > e.opts.PruneImbalance {
				continue
			}
			e.used.set(c)
			e.numerals[depth] = c
			e.digits[depth] = cDigits
			e.trans[depth] = newTrans
			depth++
			e.cols[depth] = 0
			continue
		}

		// Leaf: depth == n-1. Close the cycle back to numeral 0.
		if !e.opts.WrapPredict && numeral.DiffPlaces(cDigits, zero, e.places) != 1 {
			continue
		}
		wrapTrans := incrementTrans(newTrans, cDigits, zero, e.places)
		imb, mt := imbalanceAndMaxTrans(wrapTrans, e.places)

		e.numerals[depth] = c
		e.digits[depth] = cDigits
		ms, sd := spanAndStdDev(e.digits, e.places)

		cand := candidateKey{maxTrans: mt, imbalance: imb, maxSpan: ms, stdDev: sd}
		if isBetter(e.opts.OptMode, cand, e.bestKey) {
			e.recordBest(cand)
		}
	}
}

// recordBest commits a new incumbent: copies the current path into
// bestNumerals, invokes the OnNewBest hook, and appends a log entry.
func (e *engine) recordBest(cand candidateKey) {
	e.bestKey = cand
	e.haveBest = true

	if e.bestNumerals == nil {
		e.bestNumerals = make([]int, e.n)
	}
	copy(e.bestNumerals, e.numerals)

	trackStdDev := e.opts.OptMode != MaxSpan

	if e.opts.OnNewBest != nil {
		w := winner.New(0, e.places, 0, cand.imbalance, cand.maxTrans, cand.maxSpan,
			cand.stdDev, trackStdDev, false, e.bestNumerals)
		e.opts.OnNewBest(w)
	}

	if e.logWriter != nil {
		if err := writeLogEntry(e.logWriter, e.b, e.places, cand.imbalance, cand.maxTrans,
			cand.maxSpan, trackStdDev, cand.stdDev, e.bestNumerals); err != nil {
			e.opts.Logger.Error("crawler: failed to write log entry", "error", err)
			e.logWriter = nil // report once; do not retry on every subsequent best
		}
	}
}
