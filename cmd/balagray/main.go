package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/victimofleisure/BalaGrayIter/catalog"
	"github.com/victimofleisure/BalaGrayIter/crawler"
	"github.com/victimofleisure/BalaGrayIter/export"
	"github.com/victimofleisure/BalaGrayIter/internal/config"
	"github.com/victimofleisure/BalaGrayIter/orchestrator"
	"github.com/victimofleisure/BalaGrayIter/winner"
)

var (
	flagLogDir         string
	flagMetricsAddr    string
	flagTimeout        time.Duration
	flagPruneImbalance int
	flagOptMode        string
	flagWrapPredict    bool
	flagStartDepth     int
	flagOutDir         string
)

var rootCmd = &cobra.Command{
	Use:   "balagray",
	Short: "Balanced Gray code search over mixed-radix numeral systems",
}

var searchCmd = &cobra.Command{
	Use:   "search <hexcode>",
	Short: "Run one search and write its log, winner list, and HTML/CSV export",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run the full default catalog and write the aggregate winner list",
	RunE:  runBatch,
}

var serveMetricsCmd = &cobra.Command{
	Use:   "serve-metrics",
	Short: "Start the Prometheus /metrics HTTP endpoint standalone",
	RunE:  runServeMetrics,
}

func init() {
	for _, cmd := range []*cobra.Command{searchCmd, batchCmd} {
		cmd.Flags().StringVar(&flagLogDir, "log-dir", "", "directory for per-search log files")
		cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "per-set wall-clock cap")
		cmd.Flags().IntVar(&flagPruneImbalance, "prune-imbalance", 0, "branch pruning ceiling on imbalance")
		cmd.Flags().StringVar(&flagOptMode, "opt-mode", "", "MaxSpan|StdDevTiebreak|StdDevOnly")
		cmd.Flags().BoolVar(&flagWrapPredict, "wrap-predict", false, "enable wrap-impossibility pruning")
		cmd.Flags().IntVar(&flagStartDepth, "start-depth", 0, "1 or 2")
		cmd.Flags().StringVar(&flagOutDir, "out-dir", ".", "directory for winner list and exports")
	}
	serveMetricsCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "address to listen on for /metrics")

	rootCmd.AddCommand(searchCmd, batchCmd, serveMetricsCmd)
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("balagray: command failed", "error", err)
		os.Exit(1)
	}
}

func baseOptionsFromFlags(cmd *cobra.Command, cfg config.Config) crawler.Options {
	opts := crawler.DefaultOptions()

	pruneImbalance := cfg.PruneImbalance
	if cmd.Flags().Changed("prune-imbalance") {
		pruneImbalance = flagPruneImbalance
	}
	opts.PruneImbalance = pruneImbalance

	optMode := cfg.OptMode
	if flagOptMode != "" {
		optMode = flagOptMode
	}
	opts.OptMode = parseOptMode(optMode)

	wrapPredict := cfg.WrapPredict
	if cmd.Flags().Changed("wrap-predict") {
		wrapPredict = flagWrapPredict
	}
	opts.WrapPredict = wrapPredict

	startDepth := cfg.StartDepth
	if flagStartDepth != 0 {
		startDepth = flagStartDepth
	}
	opts.StartDepth = startDepth

	return opts
}

func parseOptMode(s string) crawler.OptMode {
	switch s {
	case "MaxSpan":
		return crawler.MaxSpan
	case "StdDevOnly":
		return crawler.StdDevOnly
	default:
		return crawler.StdDevTiebreak
	}
}

func baseTimeoutFromFlags(cfg config.Config) time.Duration {
	if flagTimeout != 0 {
		return flagTimeout
	}

	return time.Duration(cfg.TimeoutMillis) * time.Millisecond
}

func logDirFromFlags(cfg config.Config) string {
	if flagLogDir != "" {
		return flagLogDir
	}

	return cfg.LogDir
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	code, err := parseHexCode(args[0])
	if err != nil {
		return err
	}

	cat := catalog.Catalog{Entries: []catalog.Entry{{SetCode: code}}}
	base := baseOptionsFromFlags(cmd, cfg)
	timeout := baseTimeoutFromFlags(cfg)
	logDir := logDirFromFlags(cfg)

	winners, err := orchestrator.Run(cat, base, timeout, logDir)
	if err != nil {
		return err
	}

	for _, w := range winners {
		status := "timeout"
		if w.Proven {
			status = "done"
		}
		fmt.Println(status)
	}

	return writeOutputs(winners, base.OptMode != crawler.MaxSpan)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cat := catalog.Default()
	base := baseOptionsFromFlags(cmd, cfg)
	timeout := baseTimeoutFromFlags(cfg)
	logDir := logDirFromFlags(cfg)

	winners, err := orchestrator.Run(cat, base, timeout, logDir)
	if err != nil {
		return err
	}

	for _, w := range winners {
		status := "timeout"
		if w.Proven {
			status = "done"
		}
		fmt.Printf("%x %s\n", w.SetCode, status)
	}

	return writeOutputs(winners, base.OptMode != crawler.MaxSpan)
}

func runServeMetrics(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	addr := flagMetricsAddr
	if addr == "" {
		addr = cfg.MetricsAddr
	}

	slog.Default().Info("balagray: starting metrics server", "address", addr)
	http.Handle("/metrics", promhttp.Handler())

	return http.ListenAndServe(addr, nil)
}

func writeOutputs(winners []winner.Winner, trackStdDev bool) error {
	if err := os.MkdirAll(flagOutDir, 0o755); err != nil {
		return err
	}

	listPath := filepath.Join(flagOutDir, "winners.txt")
	listFile, err := os.Create(listPath)
	if err != nil {
		return err
	}
	defer listFile.Close()
	if err = export.WriteWinnerList(listFile, winners, trackStdDev); err != nil {
		return err
	}

	htmlFile, err := os.Create(filepath.Join(flagOutDir, "winners.html"))
	if err != nil {
		return err
	}
	defer htmlFile.Close()
	if err = export.WriteHTML(htmlFile, winners); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(flagOutDir, "winners.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	return export.WriteCSV(csvFile, winners)
}

func parseHexCode(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("balagray: invalid set code %q: %w", s, err)
	}

	return uint32(v), nil
}
