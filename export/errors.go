package export

import (
	"errors"
	"fmt"
)

// ErrSchemaMismatch indicates a winner-list stream's record-size header
// does not match the reader's trackStdDev-derived field count.
var ErrSchemaMismatch = errors.New("export: winner-list schema mismatch")

// ErrMalformedRecord indicates a winner-list record could not be parsed
// once the schema header had already been accepted.
var ErrMalformedRecord = errors.New("export: malformed winner-list record")

// ErrMalformedLog indicates a per-search log stream does not follow the
// "<summary line>, P digit rows, blank line" format §6 specifies.
var ErrMalformedLog = errors.New("export: malformed log entry")

func wrapf(method string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("export: %s: %w", method, err)
}
