package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/victimofleisure/BalaGrayIter/winner"
)

// recordSize returns the number of whitespace-separated fields a winner
// record carries ahead of its numeral list, per §6: setcode, places,
// baseSum, imbalance, maxtrans, maxspan, [stddev], proven, N.
func recordSize(trackStdDev bool) int {
	if trackStdDev {
		return 9
	}

	return 8
}

// WriteWinnerList writes the §6 winner-list format: a header of
// "<sizeof-winner> <count>" followed by one record per winner.
func WriteWinnerList(w io.Writer, winners []winner.Winner, trackStdDev bool) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d %d\n", recordSize(trackStdDev), len(winners)); err != nil {
		return wrapf("WriteWinnerList", err)
	}

	for _, win := range winners {
		if err := writeRecord(bw, win, trackStdDev); err != nil {
			return wrapf("WriteWinnerList", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return wrapf("WriteWinnerList", err)
	}

	return nil
}

func writeRecord(bw *bufio.Writer, win winner.Winner, trackStdDev bool) error {
	proven := 0
	if win.Proven {
		proven = 1
	}

	if _, err := fmt.Fprintf(bw, "%x %d %d %d %d %d", win.SetCode, win.Places, win.BaseSum,
		win.Imbalance, win.MaxTrans, win.MaxSpan); err != nil {
		return err
	}
	if trackStdDev {
		if _, err := fmt.Fprintf(bw, " %g", win.StdDev); err != nil {
			return err
		}
	}

	numerals := win.Numerals()
	if _, err := fmt.Fprintf(bw, " %d %d", proven, len(numerals)); err != nil {
		return err
	}
	for _, n := range numerals {
		if _, err := fmt.Fprintf(bw, " %x", n); err != nil {
			return err
		}
	}

	_, err := bw.WriteString("\n")

	return err
}

// ReadWinnerList reads the §6 winner-list format, verifying the header's
// record-size field against trackStdDev before parsing any record (the
// schema sanity gate). On mismatch it returns ErrSchemaMismatch and a
// nil list without attempting to parse further.
func ReadWinnerList(r io.Reader, trackStdDev bool) ([]winner.Winner, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	size, err := nextInt(sc)
	if err != nil {
		return nil, wrapf("ReadWinnerList", ErrMalformedRecord)
	}
	count, err := nextInt(sc)
	if err != nil {
		return nil, wrapf("ReadWinnerList", ErrMalformedRecord)
	}
	if size != recordSize(trackStdDev) {
		return nil, wrapf("ReadWinnerList", ErrSchemaMismatch)
	}

	winners := make([]winner.Winner, 0, count)
	for i := 0; i < count; i++ {
		w, err := readRecord(sc, trackStdDev)
		if err != nil {
			return nil, wrapf("ReadWinnerList", err)
		}
		winners = append(winners, w)
	}

	return winners, nil
}

func readRecord(sc *bufio.Scanner, trackStdDev bool) (winner.Winner, error) {
	setCode, err := nextHex32(sc)
	if err != nil {
		return winner.Winner{}, ErrMalformedRecord
	}
	places, err := nextInt(sc)
	if err != nil {
		return winner.Winner{}, ErrMalformedRecord
	}
	baseSum, err := nextInt(sc)
	if err != nil {
		return winner.Winner{}, ErrMalformedRecord
	}
	imbalance, err := nextInt(sc)
	if err != nil {
		return winner.Winner{}, ErrMalformedRecord
	}
	maxTrans, err := nextInt(sc)
	if err != nil {
		return winner.Winner{}, ErrMalformedRecord
	}
	maxSpan, err := nextInt(sc)
	if err != nil {
		return winner.Winner{}, ErrMalformedRecord
	}

	var stdDev float64
	if trackStdDev {
		stdDev, err = nextFloat(sc)
		if err != nil {
			return winner.Winner{}, ErrMalformedRecord
		}
	}

	provenVal, err := nextInt(sc)
	if err != nil {
		return winner.Winner{}, ErrMalformedRecord
	}
	n, err := nextInt(sc)
	if err != nil {
		return winner.Winner{}, ErrMalformedRecord
	}

	numerals := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := nextHexInt(sc)
		if err != nil {
			return winner.Winner{}, ErrMalformedRecord
		}
		numerals[i] = v
	}

	return winner.New(setCode, places, baseSum, imbalance, maxTrans, maxSpan, stdDev,
		trackStdDev, provenVal != 0, numerals), nil
}

func nextInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		return 0, io.ErrUnexpectedEOF
	}

	return strconv.Atoi(sc.Text())
}

func nextFloat(sc *bufio.Scanner) (float64, error) {
	if !sc.Scan() {
		return 0, io.ErrUnexpectedEOF
	}

	return strconv.ParseFloat(sc.Text(), 64)
}

func nextHex32(sc *bufio.Scanner) (uint32, error) {
	if !sc.Scan() {
		return 0, io.ErrUnexpectedEOF
	}
	v, err := strconv.ParseUint(sc.Text(), 16, 32)

	return uint32(v), err
}

func nextHexInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		return 0, io.ErrUnexpectedEOF
	}
	v, err := strconv.ParseInt(sc.Text(), 16, 64)

	return int(v), err
}
