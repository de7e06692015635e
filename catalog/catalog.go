package catalog

import (
	"time"

	"github.com/victimofleisure/BalaGrayIter/crawler"
)

// Entry is one set code plus its optional per-set override, resolved by
// the orchestrator before a search begins.
type Entry struct {
	SetCode uint32

	// PruneImbalanceOverride, if non-nil, replaces base.PruneImbalance
	// for this entry only.
	PruneImbalanceOverride *int

	// MinTimeout, if non-zero, is a floor applied to the base timeout:
	// the entry's effective timeout is max(baseTimeout, MinTimeout).
	MinTimeout time.Duration
}

// Catalog is an ordered list of entries to search, in the order a batch
// run visits them.
type Catalog struct {
	Entries []Entry
}

func intPtr(v int) *int { return &v }

// allSetCodes is the exhaustive list of prime-form interval sets: every
// mixed-radix set with at least two places, a minimum place range of two,
// and no place range above 15, excluding phase shifts and reversals.
// Ordered by place count, then by sum of place ranges, then by code
// value, matching IntervalSetsList.h.
var allSetCodes = []uint32{
	0x22, 0x23, 0x24, 0x33, 0x25, 0x34, 0x26, 0x35, 0x44, 0x27, 0x36, 0x45,
	0x28, 0x37, 0x46, 0x55, 0x29, 0x38, 0x47, 0x56, 0x2A, 0x39, 0x48, 0x57, 0x66,
	0x222, 0x223, 0x224, 0x233, 0x225, 0x234, 0x333, 0x226, 0x235, 0x244, 0x334,
	0x227, 0x236, 0x245, 0x335, 0x344, 0x228, 0x237, 0x246, 0x255, 0x336, 0x345, 0x444,
	0x2222, 0x2223, 0x2224, 0x2233, 0x2225, 0x2234, 0x2333, 0x2226, 0x2235, 0x2244, 0x2334, 0x3333,
	0x22222, 0x22223, 0x22224, 0x22233,
	0x222222,
}

// Default returns the catalog seeded with every set code in
// IntervalSetsList.h's exhaustive prime-form list, carrying the
// documented per-set overrides on top.
func Default() Catalog {
	imb4 := map[uint32]bool{0x336: true, 0x2334: true, 0x22233: true}
	imb2 := map[uint32]bool{0x22223: true, 0x22224: true}
	timeout120 := map[uint32]bool{0x37: true, 0x46: true, 0x234: true, 0x22222: true}
	timeout180 := map[uint32]bool{0x2225: true}

	entries := make([]Entry, 0, len(allSetCodes))
	for _, code := range allSetCodes {
		e := Entry{SetCode: code}
		switch {
		case imb4[code]:
			e.PruneImbalanceOverride = intPtr(4)
		case imb2[code]:
			e.PruneImbalanceOverride = intPtr(2)
		}
		switch {
		case timeout180[code]:
			e.MinTimeout = 180 * time.Second
		case timeout120[code]:
			e.MinTimeout = 120 * time.Second
		}
		entries = append(entries, e)
	}

	return Catalog{Entries: entries}
}

// Resolve finds the entry for code (falling back to an override-free
// entry if code is not catalogued) and applies its overrides on top of
// base/baseTimeout.
func (c Catalog) Resolve(base crawler.Options, baseTimeout time.Duration, code uint32) (crawler.Options, time.Duration) {
	opts := base
	timeout := baseTimeout

	for _, e := range c.Entries {
		if e.SetCode != code {
			continue
		}
		if e.PruneImbalanceOverride != nil {
			opts.PruneImbalance = *e.PruneImbalanceOverride
		}
		if e.MinTimeout > timeout {
			timeout = e.MinTimeout
		}
		break
	}

	return opts, timeout
}
