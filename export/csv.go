package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/victimofleisure/BalaGrayIter/winner"
)

// WriteCSV writes a CSV table of winners, one row per winner. Layout is
// presentational only, not part of the core contract (§6).
func WriteCSV(w io.Writer, winners []winner.Winner) error {
	cw := csv.NewWriter(w)

	header := []string{"SetCode", "Places", "BaseSum", "Imbalance", "MaxTrans",
		"MaxSpan", "StdDev", "Proven", "N"}
	if err := cw.Write(header); err != nil {
		return wrapf("WriteCSV", err)
	}

	for _, win := range winners {
		record := []string{
			strconv.FormatUint(uint64(win.SetCode), 16),
			strconv.Itoa(win.Places),
			strconv.Itoa(win.BaseSum),
			strconv.Itoa(win.Imbalance),
			strconv.Itoa(win.MaxTrans),
			strconv.Itoa(win.MaxSpan),
			strconv.FormatFloat(win.StdDev, 'g', -1, 64),
			strconv.FormatBool(win.Proven),
			strconv.Itoa(win.N()),
		}
		if err := cw.Write(record); err != nil {
			return wrapf("WriteCSV", err)
		}
	}

	cw.Flush()

	return wrapf("WriteCSV", cw.Error())
}

// WriteStepTrackCSV writes one winner's cycle as a step-by-step table of
// the packed numeral index visited at each step. The radix vector
// itself is not part of winner.Winner, so per-place digits are left to
// a caller that still has the original set code. Layout is
// presentational only, not part of the core contract (§6).
func WriteStepTrackCSV(w io.Writer, win winner.Winner) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"step", "numeral"}); err != nil {
		return wrapf("WriteStepTrackCSV", err)
	}

	for step, numIdx := range win.Numerals() {
		row := []string{strconv.Itoa(step), strconv.Itoa(numIdx)}
		if err := cw.Write(row); err != nil {
			return wrapf("WriteStepTrackCSV", err)
		}
	}

	cw.Flush()

	return wrapf("WriteStepTrackCSV", cw.Error())
}
