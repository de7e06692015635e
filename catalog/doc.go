// Package catalog holds the ordered list of set codes a batch run
// searches, plus the documented per-set overrides (§6's "Per-set
// overrides (applied by the supervisor, not the crawler)").
//
// Catalog itself never touches crawler.Options directly beyond Resolve;
// it is a data table, not a search strategy.
package catalog
