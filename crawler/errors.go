package crawler

import (
	"errors"
	"fmt"
)

// ErrInvalidPlaceCount indicates the radix vector has fewer than 2 or
// more than numeral.MaxPlaces places.
var ErrInvalidPlaceCount = errors.New("crawler: place count out of range [2,8]")

// ErrRadixTooSmall indicates some b_i < 2.
var ErrRadixTooSmall = errors.New("crawler: radix below 2")

// ErrRadixTooLarge indicates some b_i > 15.
var ErrRadixTooLarge = errors.New("crawler: radix above 15")

// ErrCapacityExceeded indicates N exceeds the crawler's bitmask budget,
// or WrapPredict was requested but some successor of numeral 0 has index
// >= 64 (§3, §4.3).
var ErrCapacityExceeded = errors.New("crawler: capacity exceeded")

// ErrIoFailure indicates the per-search log file could not be opened.
var ErrIoFailure = errors.New("crawler: log stream io failure")

func wrapf(method string, err error) error {
	return fmt.Errorf("crawler: %s: %w", method, err)
}
