package orchestrator

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/victimofleisure/BalaGrayIter/catalog"
	"github.com/victimofleisure/BalaGrayIter/control"
	"github.com/victimofleisure/BalaGrayIter/crawler"
	"github.com/victimofleisure/BalaGrayIter/internal/metrics"
	"github.com/victimofleisure/BalaGrayIter/setcode"
	"github.com/victimofleisure/BalaGrayIter/winner"
)

// Run searches every catalog entry in order, each under its resolved
// options and timeout, and returns the accumulated winner list.
//
// A set code that fails to decode, or whose search returns an error from
// crawler.Calc, is logged and skipped; it does not abort the batch. Every
// other entry contributes a winner to the result, proven or not, per §7's
// "the best-known winner is written to outputs either way".
func Run(cat catalog.Catalog, base crawler.Options, baseTimeout time.Duration, logDir string) ([]winner.Winner, error) {
	logger := base.Logger
	if logger == nil {
		logger = slog.Default()
	}

	winners := make([]winner.Winner, 0, len(cat.Entries))

	for _, entry := range cat.Entries {
		_, radices, err := setcode.Decode(entry.SetCode)
		if err != nil {
			logger.Warn("orchestrator: skipping set code", "code", entry.SetCode, "error", err)
			continue
		}

		opts, timeout := cat.Resolve(base, baseTimeout, entry.SetCode)
		if logDir != "" {
			opts.LogPath = filepath.Join(logDir, crawler.LogFileName(entry.SetCode))
		}

		sup := control.NewSupervisor()
		var w winner.Winner
		var calcErr error

		start := time.Now()
		proven := sup.Run(timeout, func(cancel *control.CancelFlag) {
			w, calcErr = crawler.Calc(radices, opts, cancel)
		})
		metrics.SearchDurationSeconds.Observe(time.Since(start).Seconds())

		if calcErr != nil {
			logger.Warn("orchestrator: search failed", "code", entry.SetCode, "error", calcErr)
			continue
		}

		if proven {
			metrics.SearchesCompletedTotal.Inc()
			logger.Info("orchestrator: done", "code", entry.SetCode)
		} else {
			metrics.SearchesCancelledTotal.Inc()
			logger.Info("orchestrator: timeout", "code", entry.SetCode)
		}

		w = winner.New(entry.SetCode, w.Places, w.BaseSum, w.Imbalance, w.MaxTrans, w.MaxSpan,
			w.StdDev, w.TrackStdDev, w.Proven, w.Numerals())
		winners = append(winners, w)
	}

	return winners, nil
}
