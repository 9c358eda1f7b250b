package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "backtester",
	Short: "Backtest rule-based trading strategies against price series",
	Long: `Backtester replays a price series through a strategy definition and
reports the trades that would have occurred and how profitable they were.

Built-in strategies:
  - macd-zero-cross: signal when the MACD line crosses zero
  - filter-rule:     signal when day-over-day percent change crosses a threshold

Prices may be real market data or the output of a forecasting model; the
engine only cares about the bar schema.`,
	SilenceUsage: true,
}

var verbose bool

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// newLogger builds the CLI logger. Development encoding keeps batch output
// readable on a terminal.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
