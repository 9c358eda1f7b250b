package backtest

import (
	"go.uber.org/zap"

	"github.com/rustyeddy/backtester/market"
)

// BatchRun pairs a series with a run configuration. Runs in a batch are
// fully independent: different thresholds, price fields, or real-vs-forecast
// series over the same instrument.
type BatchRun struct {
	Series *market.Series
	Config RunConfig
}

// Batch executes a set of independent runs, collecting every Result. A
// failed run is logged and kept in the output; the remaining runs are
// unaffected.
type Batch struct {
	Runner *Runner
	Log    *zap.Logger
}

// NewBatch wraps a runner. A nil logger disables logging.
func NewBatch(r *Runner, log *zap.Logger) *Batch {
	if log == nil {
		log = zap.NewNop()
	}
	return &Batch{Runner: r, Log: log}
}

// Run executes all runs in order and returns one Result per run.
func (b *Batch) Run(runs []BatchRun) []Result {
	results := make([]Result, 0, len(runs))
	for _, br := range runs {
		res := b.Runner.Run(br.Series, br.Config)
		if res.Failed() {
			b.Log.Warn("run failed",
				zap.String("run_id", res.RunID),
				zap.String("name", res.Name),
				zap.Error(res.Err),
			)
		} else {
			b.Log.Info("run complete",
				zap.String("run_id", res.RunID),
				zap.String("name", res.Name),
				zap.String("strategy", res.Strategy),
				zap.Int("trades", res.Stats.Trades),
				zap.Float64("net_pl", res.Stats.NetPL),
			)
		}
		results = append(results, res)
	}
	return results
}
