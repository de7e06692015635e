package crawler

import (
	"bufio"
	"fmt"

	"github.com/victimofleisure/BalaGrayIter/numeral"
)

// LogFileName returns the canonical per-search log file name for a set
// code, "BalaGray <CODE>.txt" with CODE in uppercase hex (§6).
func LogFileName(setCode uint32) string {
	return fmt.Sprintf("BalaGray %X.txt", setCode)
}

// writeLogEntry appends one "new best" entry to w, per §6's format:
// a summary line, then P lines of N space-separated digits (row=place,
// column=step), then a blank line.
func writeLogEntry(w *bufio.Writer, b []int, places int, imbalance, maxTrans, maxSpan int,
	trackStdDev bool, stdDev float64, numerals []int) error {
	var err error
	if trackStdDev {
		_, err = fmt.Fprintf(w, "balance = %d, maxtrans = %d, maxspan = %d, stddev = %g\n",
			imbalance, maxTrans, maxSpan, stdDev)
	} else {
		_, err = fmt.Fprintf(w, "balance = %d, maxtrans = %d, maxspan = %d\n",
			imbalance, maxTrans, maxSpan)
	}
	if err != nil {
		return err
	}

	var (
		place, step int
		d           numeral.Digits
	)
	for place = 0; place < places; place++ {
		for step = 0; step < len(numerals); step++ {
			if step > 0 {
				if err = w.WriteByte(' '); err != nil {
					return err
				}
			}
			d = numeral.Unpack(b, numerals[step])
			if _, err = fmt.Fprintf(w, "%d", d[place]); err != nil {
				return err
			}
		}
		if err = w.WriteByte('\n'); err != nil {
			return err
		}
	}

	_, err = w.WriteString("\n")

	return err
}
