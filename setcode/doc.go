// Package setcode decodes the compact hexadecimal set-code encoding of a
// radix vector (§4.2).
//
// A set code is a nonzero hexadecimal integer whose digits, read
// left-to-right in the usual textual sense, give the radices in reverse
// place order: the leftmost (most significant) hex digit is the highest
// place, and the rightmost (least significant) hex digit is place 0.
// Decode consumes nibbles from least significant to most significant so
// the first consumed nibble becomes b_0.
package setcode
