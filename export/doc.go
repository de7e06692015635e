// Package export implements the presentational and serialization
// formats §6 defines around a winner.Winner: the whitespace-separated
// winner-list format (round-trippable, schema-gated), HTML/CSV tables,
// a per-winner step-track CSV, and a reader for the crawler's per-search
// log file.
//
// None of these formats are part of the core search contract; §5
// reserves ownership of the per-search log's write side to the crawler
// itself, so ReadLog here is read-only tooling support.
package export
