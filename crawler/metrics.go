package crawler

import (
	"math"

	"github.com/victimofleisure/BalaGrayIter/numeral"
)

// incrementTrans returns a copy of prev with place i incremented for
// every place at which prevDigits and nextDigits differ (§4.4 step 4;
// also reused for the wrap-step increment in step 6).
func incrementTrans(prev frameCount, prevDigits, nextDigits numeral.Digits, places int) frameCount {
	out := prev
	var i int
	for i = 0; i < places; i++ {
		if prevDigits[i] != nextDigits[i] {
			out[i]++
		}
	}

	return out
}

// imbalanceAndMaxTrans returns max-min and max over the first `places`
// entries of trans (§4.5).
func imbalanceAndMaxTrans(trans frameCount, places int) (imbalance, maxTrans int) {
	lo, hi := trans[0], trans[0]
	var i int
	for i = 1; i < places; i++ {
		if trans[i] < lo {
			lo = trans[i]
		}
		if trans[i] > hi {
			hi = trans[i]
		}
	}

	return hi - lo, hi
}

// spanAndStdDev computes max-span and the standard deviation of span
// lengths for the full cycle path (length N, path[0] is numeral index 0),
// per §4.5's scan-and-wrap-join accumulation policy.
//
// Every completed span observed during the forward scan counts toward the
// sum of squared deviations except the first one per place, which is held
// in firstSpan until the wrap step. At the wrap edge, a place that
// transitions contributes two terms (the trailing span and the untouched
// firstSpan); a place that doesn't transition merges the trailing span
// into firstSpan and contributes that merged span once. See §9's Open
// Questions.
func spanAndStdDev(path []numeral.Digits, places int) (maxSpan int, stdDev float64) {
	n := len(path)
	span := make([]int, places)
	firstSpan := make([]int, places)
	var i int
	for i = 0; i < places; i++ {
		span[i] = 1
	}

	var (
		t     int
		sumSq float64
		delta float64
		ideal = float64(places)
	)
	for t = 1; t < n; t++ {
		for i = 0; i < places; i++ {
			if path[t][i] != path[t-1][i] {
				if span[i] > maxSpan {
					maxSpan = span[i]
				}
				if firstSpan[i] == 0 {
					firstSpan[i] = span[i]
				} else {
					delta = float64(span[i]) - ideal
					sumSq += delta * delta
				}
				span[i] = 1
			} else {
				span[i]++
			}
		}
	}

	for i = 0; i < places; i++ {
		if path[n-1][i] != path[0][i] {
			if span[i] > maxSpan {
				maxSpan = span[i]
			}
			delta = float64(span[i]) - ideal
			sumSq += delta * delta
		} else {
			firstSpan[i] += span[i]
			if firstSpan[i] > maxSpan {
				maxSpan = firstSpan[i]
			}
		}
		delta = float64(firstSpan[i]) - ideal
		sumSq += delta * delta
	}

	return maxSpan, math.Sqrt(sumSq / float64(n))
}
