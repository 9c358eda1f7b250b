package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/backtester/backtest"
	"github.com/rustyeddy/backtester/config"
	"github.com/rustyeddy/backtester/journal"
	"github.com/rustyeddy/backtester/market"
	"github.com/rustyeddy/backtester/signal"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run a filter-rule threshold sweep over one price series",
	Long: `Sweep runs the filter-rule strategy once per threshold and prints a
comparison table. Runs are independent; a failing run does not stop the rest.

Example:
  backtester sweep --config strategy.yaml --data spy_daily.csv --thresholds 0.05,0.06,0.07`,
	RunE: runSweep,
}

var (
	sweepConfigPath string
	sweepDataPath   string
	sweepThresholds string
)

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringVarP(&sweepConfigPath, "config", "c", "", "path to YAML/JSON config (required)")
	sweepCmd.Flags().StringVarP(&sweepDataPath, "data", "d", "", "path to bar CSV (required)")
	sweepCmd.Flags().StringVarP(&sweepThresholds, "thresholds", "t", "0.05,0.06,0.07", "comma-separated threshold fractions")

	sweepCmd.MarkFlagRequired("config")
	sweepCmd.MarkFlagRequired("data")
}

func runSweep(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := config.LoadFromFile(sweepConfigPath)
	if err != nil {
		return err
	}

	series, err := market.LoadCSV(sweepDataPath, cfg.Strategy.Instrument)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	var runs []backtest.BatchRun
	for _, raw := range strings.Split(sweepThresholds, ",") {
		th, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("bad threshold %q: %w", raw, err)
		}
		rc := cfg.RunConfig()
		rc.Kind = "filter-rule"
		rc.Signal = signal.Config{Threshold: th}
		rc.Name = fmt.Sprintf("filter(%g)", th)
		runs = append(runs, backtest.BatchRun{Series: series, Config: rc})
	}

	runner := backtest.NewRunner(cfg.Instrument())
	results := backtest.NewBatch(runner, log).Run(runs)

	j, err := openJournal(cfg)
	if err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	if j != nil {
		defer j.Close()
	}

	fmt.Printf("\n%-14s %10s %8s %10s %12s\n", "run", "net P/L", "trades", "win rate", "largest win")
	for _, res := range results {
		if j != nil {
			if err := journal.RecordResult(j, res); err != nil {
				return fmt.Errorf("journal: %w", err)
			}
		}
		if res.Failed() {
			fmt.Printf("%-14s FAILED: %v\n", res.Name, res.Err)
			continue
		}
		s := res.Stats
		fmt.Printf("%-14s %10.2f %8d %9.1f%% %12.2f\n",
			res.Name, s.NetPL, s.Trades, s.WinRate, s.LargestWin)
	}
	return nil
}
