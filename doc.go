// Package balagrayiter searches mixed-radix numeral systems for
// balanced Gray-code Hamiltonian cycles: permutations that visit every
// combination of place values exactly once, minimizing how unevenly
// each place changes and how long any place goes between changes.
//
// Subpackages:
//
//	numeral/      — mixed-radix pack/unpack, the index<->digit bijection
//	setcode/      — hex set-code decoding into a radix vector
//	succtable/    — dense precomputed Gray-successor table
//	crawler/      — the iterative branch-and-bound search engine
//	winner/       — the immutable search result record
//	control/      — cooperative cancellation: CancelFlag, Signal, Supervisor
//	catalog/      — the batch set-code list and its documented per-set overrides
//	export/       — winner-list serialization, HTML/CSV exports, log readback
//	orchestrator/ — runs one search per catalog entry, sequentially, under timeout
//	internal/config/  — envconfig-tagged process configuration
//	internal/metrics/ — Prometheus counters/gauges/histograms
//	cmd/balagray/ — the CLI driver
//
//	go get github.com/victimofleisure/BalaGrayIter
package balagrayiter
