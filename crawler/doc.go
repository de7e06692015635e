// Package crawler implements the iterative depth-first Hamiltonian-cycle
// search over a mixed-radix Gray-successor table (§4.4), together with
// its pruning, wrap prediction, and lexicographic objective (§4.5).
//
// Calc is the sole public entry point. It builds its own successor
// table from the radix vector, owns the per-search BalaGray log file for
// the duration of the search (opened on entry, flushed and closed on
// every exit path), and polls an optional cooperative CancelFlag once
// per outer-loop iteration so a supervisor (see package control) can
// bound its wall-clock time while still recovering the best candidate
// found so far.
//
// The search itself follows the same shape as a branch-and-bound
// traveling-salesman solver: a dedicated engine struct holding
// configuration, precomputed tables, and mutable search state, with an
// explicit frame stack instead of recursion so depth is bounded by N
// (up to 127) rather than by the Go call stack.
package crawler
