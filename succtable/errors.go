package succtable

import (
	"errors"
	"fmt"
)

// ErrInvalidPlaceCount indicates the radix vector has fewer than 2 or
// more than numeral.MaxPlaces places.
var ErrInvalidPlaceCount = errors.New("succtable: place count out of range [2,8]")

// ErrRadixTooSmall indicates some b_i < 2.
var ErrRadixTooSmall = errors.New("succtable: radix below 2")

// ErrRadixTooLarge indicates some b_i > 15.
var ErrRadixTooLarge = errors.New("succtable: radix above 15")

// ErrCapacityExceeded indicates N = product(b_i) exceeds the crawler's
// 127-numeral bitmask budget. A successor of numeral 0 with an index
// >= 64 is not an error here; Build reports it through Table.WrapOK.
var ErrCapacityExceeded = errors.New("succtable: capacity exceeded")

func wrapf(method string, err error) error {
	return fmt.Errorf("succtable: %s: %w", method, err)
}
