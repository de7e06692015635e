package export

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// LogEntry is one "new best" record read back from a crawler per-search
// log file (§6). Digits holds one row per place, each row one entry per
// step, exactly as written.
type LogEntry struct {
	Imbalance   int
	MaxTrans    int
	MaxSpan     int
	StdDev      float64
	TrackStdDev bool
	Digits      [][]int
}

// ReadLog parses a crawler per-search log file back into its entries.
// The crawler owns writing this format (§5); ReadLog exists only so
// tooling and tests can inspect it without duplicating the writer.
func ReadLog(r io.Reader) ([]LogEntry, error) {
	sc := bufio.NewScanner(r)

	var entries []LogEntry
	for sc.Scan() {
		summary := sc.Text()
		if strings.TrimSpace(summary) == "" {
			continue
		}

		entry, err := parseSummaryLine(summary)
		if err != nil {
			return nil, wrapf("ReadLog", err)
		}

		for {
			if !sc.Scan() {
				return nil, wrapf("ReadLog", ErrMalformedLog)
			}
			line := sc.Text()
			if line == "" {
				break
			}
			row, err := parseDigitRow(line)
			if err != nil {
				return nil, wrapf("ReadLog", err)
			}
			entry.Digits = append(entry.Digits, row)
		}

		entries = append(entries, entry)
	}
	if err := sc.Err(); err != nil {
		return nil, wrapf("ReadLog", err)
	}

	return entries, nil
}

func parseSummaryLine(line string) (LogEntry, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return LogEntry{}, ErrMalformedLog
	}

	var entry LogEntry
	var err error
	if entry.Imbalance, err = parseKV(fields[0]); err != nil {
		return LogEntry{}, ErrMalformedLog
	}
	if entry.MaxTrans, err = parseKV(fields[1]); err != nil {
		return LogEntry{}, ErrMalformedLog
	}
	if entry.MaxSpan, err = parseKV(fields[2]); err != nil {
		return LogEntry{}, ErrMalformedLog
	}
	if len(fields) >= 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.SplitN(fields[3], "=", 2)[1]), 64)
		if err != nil {
			return LogEntry{}, ErrMalformedLog
		}
		entry.StdDev = v
		entry.TrackStdDev = true
	}

	return entry, nil
}

func parseKV(field string) (int, error) {
	parts := strings.SplitN(field, "=", 2)
	if len(parts) != 2 {
		return 0, ErrMalformedLog
	}

	return strconv.Atoi(strings.TrimSpace(parts[1]))
}

func parseDigitRow(line string) ([]int, error) {
	toks := strings.Fields(line)
	row := make([]int, len(toks))
	for i, tok := range toks {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, ErrMalformedLog
		}
		row[i] = v
	}

	return row, nil
}
