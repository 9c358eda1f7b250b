package journal

import (
	"time"

	"github.com/rustyeddy/backtester/backtest"
)

// RecordResult writes one run's summary, trades and equity curve through j.
func RecordResult(j Journal, res backtest.Result) error {
	var start, end time.Time
	if len(res.Equity) > 0 {
		start = res.Equity[0].Time
		end = res.Equity[len(res.Equity)-1].Time
	}

	run := RunRecord{
		RunID:        res.RunID,
		Name:         res.Name,
		Strategy:     res.Strategy,
		Instrument:   res.FinalPosition.Instrument,
		Start:        start,
		End:          end,
		NetPL:        res.Stats.NetPL,
		Trades:       res.Stats.Trades,
		Transactions: res.Stats.Transactions,
	}
	if len(res.Equity) > 0 {
		run.FinalEquity = res.Equity[len(res.Equity)-1].Equity
	}
	if res.Err != nil {
		run.Error = res.Err.Error()
	}
	if err := j.RecordRun(run); err != nil {
		return err
	}

	for _, t := range res.Trades {
		err := j.RecordTrade(TradeRecord{
			TradeID:    t.ID,
			RunID:      res.RunID,
			Instrument: t.Instrument,
			Quantity:   t.Quantity,
			EntryPrice: t.EntryPrice,
			ExitPrice:  t.ExitPrice,
			OpenTime:   t.EntryTime,
			CloseTime:  t.ExitTime,
			RealizedPL: t.RealizedPL,
			Reason:     t.Reason,
		})
		if err != nil {
			return err
		}
	}

	for _, p := range res.Equity {
		if err := j.RecordEquity(EquityRecord{RunID: res.RunID, Time: p.Time, Equity: p.Equity}); err != nil {
			return err
		}
	}
	return nil
}
