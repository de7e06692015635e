package setcode

import (
	"errors"
	"fmt"
)

// ErrZeroCode indicates a zero set code was given; zero has no nibbles
// and therefore decodes to zero places.
var ErrZeroCode = errors.New("setcode: code is zero")

// ErrTooManyPlaces indicates the code has more than numeral.MaxPlaces
// hex digits.
var ErrTooManyPlaces = errors.New("setcode: more than 8 hex digits")

// ErrRadixTooSmall indicates some decoded radix is less than 2.
var ErrRadixTooSmall = errors.New("setcode: radix digit below 2")

// wrapf attaches method context to an inner sentinel without losing it
// for errors.Is, matching the wrapping policy used throughout this repo.
func wrapf(method string, err error) error {
	return fmt.Errorf("setcode: %s: %w", method, err)
}
