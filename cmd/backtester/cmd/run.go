package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/backtester/backtest"
	"github.com/rustyeddy/backtester/config"
	"github.com/rustyeddy/backtester/forecast"
	"github.com/rustyeddy/backtester/journal"
	"github.com/rustyeddy/backtester/market"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single backtest from a config file and a bar CSV",
	Long: `Run loads a price series from CSV (plain, .gz, .xz or .lzma), applies the
configured strategy, and prints the trade statistics.

Example:
  backtester run --config strategy.yaml --data spy_daily.csv`,
	RunE: runRun,
}

var (
	runConfigPath   string
	runDataPath     string
	runForecastName string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "path to YAML/JSON config (required)")
	runCmd.Flags().StringVarP(&runDataPath, "data", "d", "", "path to bar CSV (required)")
	runCmd.Flags().StringVar(&runForecastName, "forecast", "", "backtest a forecast of the data instead: naive or linear")

	runCmd.MarkFlagRequired("config")
	runCmd.MarkFlagRequired("data")
}

func runRun(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := config.LoadFromFile(runConfigPath)
	if err != nil {
		return err
	}

	series, err := market.LoadCSV(runDataPath, cfg.Strategy.Instrument)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	runCfg := cfg.RunConfig()
	if runForecastName != "" {
		series, err = forecastSeries(series, runCfg.Field, runForecastName)
		if err != nil {
			return err
		}
	}

	runner := backtest.NewRunner(cfg.Instrument())
	res := backtest.NewBatch(runner, log).Run([]backtest.BatchRun{
		{Series: series, Config: runCfg},
	})[0]

	if err := journalResult(cfg, res); err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	if res.Failed() {
		return res.Err
	}

	printStats(res)
	return nil
}

func forecastSeries(s *market.Series, f market.Field, name string) (*market.Series, error) {
	var fc forecast.Forecaster
	switch name {
	case "naive":
		fc = forecast.Naive{Lag: 1}
	case "linear":
		fc = forecast.LinearTrend{}
	default:
		return nil, fmt.Errorf("unknown forecaster %q (naive, linear)", name)
	}
	return fc.Forecast(s, f)
}

func journalResult(cfg *config.Config, res backtest.Result) error {
	j, err := openJournal(cfg)
	if err != nil || j == nil {
		return err
	}
	defer j.Close()
	return journal.RecordResult(j, res)
}

func openJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "", "none":
		return nil, nil
	case "csv":
		return journal.NewCSV(cfg.Journal.Dir)
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	default:
		return nil, fmt.Errorf("unknown journal type %q", cfg.Journal.Type)
	}
}

func printStats(res backtest.Result) {
	s := res.Stats
	fmt.Printf("\nRun %s (%s)\n", res.Name, res.RunID)
	fmt.Printf("  Net P/L:       %.2f\n", s.NetPL)
	fmt.Printf("  Avg trade:     %.2f\n", s.AvgPL)
	fmt.Printf("  Trades:        %d (%d transactions)\n", s.Trades, s.Transactions)
	fmt.Printf("  Win rate:      %.1f%% (%d W / %d L)\n", s.WinRate, s.Wins, s.Losses)
	fmt.Printf("  Largest win:   %.2f\n", s.LargestWin)
	fmt.Printf("  Largest loss:  %.2f\n", s.LargestLoss)
	if len(res.Equity) > 0 {
		fmt.Printf("  Final equity:  %.2f\n", res.Equity[len(res.Equity)-1].Equity)
	}
	if res.FinalPosition.Open() {
		fmt.Printf("  Open position: %.0f @ %.4f\n", res.FinalPosition.Quantity, res.FinalPosition.AvgPrice)
	}
}
