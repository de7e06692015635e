// Package succtable builds the dense Gray-successor table G described in
// §3 and §4.3: an N x K table where row i lists the linear indices of
// every numeral reachable from numeral i by changing exactly one place.
//
// Row order is part of the contract (it determines crawler search order):
// for each place in ascending order, for each value v < b_i in ascending
// order, v != d_i, emit the index of the numeral with place i overwritten
// by v. Rows are padded to a power-of-two stride so G's hot-path address
// arithmetic in the crawler is a shift, not a multiply.
package succtable
