package crawler

import (
	"log/slog"
	"math"

	"github.com/victimofleisure/BalaGrayIter/winner"
)

// OptMode selects the lexicographic objective used to compare candidate
// leaves (§4.5).
type OptMode int

const (
	// MaxSpan orders candidates by (maxtrans, imbalance, maxspan).
	MaxSpan OptMode = iota
	// StdDevTiebreak orders candidates by (maxtrans, imbalance, maxspan, stddev).
	StdDevTiebreak
	// StdDevOnly orders candidates by (maxtrans, imbalance, stddev); maxspan
	// is still recorded in the Winner but does not affect ordering.
	StdDevOnly
)

// Options configures a single Calc invocation (§6's "Configuration
// knobs", crawler-owned subset).
type Options struct {
	// PruneMaxTrans caps the per-place transition count during interior
	// pruning. Zero or negative means unlimited (math.MaxInt is used).
	PruneMaxTrans int

	// PruneImbalance caps max-min of per-place transition counts during
	// interior pruning. Negative means unlimited.
	PruneImbalance int

	// OptMode selects the objective ordering.
	OptMode OptMode

	// WrapPredict enables the wrap-impossibility pruning optimization.
	// Requires every successor of numeral 0 to have index < 64.
	WrapPredict bool

	// StartDepth is 1 or 2 (§4.4's starting-state canonicalization).
	// Any other value is treated as 2.
	StartDepth int

	// LogPath, if non-empty, is the path of the per-search BalaGray log
	// file Calc opens on entry and closes on every exit path. Empty
	// disables logging.
	LogPath string

	// OnNewBest, if non-nil, is invoked synchronously each time Calc
	// records a strictly-better candidate, before any log line is
	// written for that candidate.
	OnNewBest func(winner.Winner)

	// Logger receives structured diagnostics (e.g. a log-write failure,
	// which §7 says is reported once but does not abort the crawl).
	// Defaults to slog.Default() when nil.
	Logger *slog.Logger
}

// DefaultOptions returns the configuration §6 documents as default:
// unlimited PruneMaxTrans, PruneImbalance=3, StdDevTiebreak objective,
// wrap prediction on, StartDepth=2.
func DefaultOptions() Options {
	return Options{
		PruneMaxTrans:  math.MaxInt,
		PruneImbalance: 3,
		OptMode:        StdDevTiebreak,
		WrapPredict:    true,
		StartDepth:     2,
	}
}

// resolved returns a copy of o with zero-value knobs filled in so the
// engine never has to special-case "unset".
func (o Options) resolved() Options {
	r := o
	if r.PruneMaxTrans <= 0 {
		r.PruneMaxTrans = math.MaxInt
	}
	if r.PruneImbalance < 0 {
		r.PruneImbalance = math.MaxInt
	}
	if r.StartDepth != 1 {
		r.StartDepth = 2
	}
	if r.Logger == nil {
		r.Logger = slog.Default()
	}

	return r
}

// frameCount holds per-place transition counts. Only the first `places`
// entries are meaningful.
type frameCount [8]int
