package export

import (
	"fmt"
	"io"

	"github.com/victimofleisure/BalaGrayIter/winner"
)

// WriteHTML writes a plain HTML table of winners. Layout is
// presentational only, not part of the core contract (§6).
func WriteHTML(w io.Writer, winners []winner.Winner) error {
	rows := []string{"<table>", "<tr><th>SetCode</th><th>Places</th><th>BaseSum</th>" +
		"<th>Imbalance</th><th>MaxTrans</th><th>MaxSpan</th><th>StdDev</th>" +
		"<th>Proven</th><th>N</th></tr>"}
	for _, row := range rows {
		if _, err := io.WriteString(w, row+"\n"); err != nil {
			return wrapf("WriteHTML", err)
		}
	}

	for _, win := range winners {
		if _, err := fmt.Fprintf(w, "<tr><td>%x</td><td>%d</td><td>%d</td><td>%d</td>"+
			"<td>%d</td><td>%d</td><td>%g</td><td>%t</td><td>%d</td></tr>\n",
			win.SetCode, win.Places, win.BaseSum, win.Imbalance, win.MaxTrans,
			win.MaxSpan, win.StdDev, win.Proven, win.N()); err != nil {
			return wrapf("WriteHTML", err)
		}
	}

	if _, err := io.WriteString(w, "</table>\n"); err != nil {
		return wrapf("WriteHTML", err)
	}

	return nil
}
