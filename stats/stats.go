// Package stats aggregates a completed trade log into summary metrics.
package stats

import "github.com/rustyeddy/backtester/sim"

// Statistics is the read-only rollup of one run's trade log. It is computed
// once, after the run finishes, and never mutated.
type Statistics struct {
	NetPL        float64 // sum of realized trade P/Ls
	AvgPL        float64 // NetPL / Trades, 0 when no trades
	Trades       int     // round trips
	Transactions int     // fills; entry+exit = 2 per round trip
	Wins         int
	Losses       int
	WinRate      float64 // percent of trades with PL >= 0
	LargestWin   float64 // best single trade, 0 when none won
	LargestLoss  float64 // worst single trade, 0 when none lost
	ProfitFactor float64 // gross wins / gross losses, 0 when no losses
}

// Summarize rolls up trades and fills. An empty log yields the zero value,
// never an error.
func Summarize(trades []sim.Trade, fills []sim.Fill) Statistics {
	s := Statistics{
		Trades:       len(trades),
		Transactions: len(fills),
	}

	var grossWins, grossLosses float64
	for _, t := range trades {
		s.NetPL += t.RealizedPL
		if t.RealizedPL >= 0 {
			s.Wins++
			grossWins += t.RealizedPL
			if t.RealizedPL > s.LargestWin {
				s.LargestWin = t.RealizedPL
			}
		} else {
			s.Losses++
			grossLosses += -t.RealizedPL
			if t.RealizedPL < s.LargestLoss {
				s.LargestLoss = t.RealizedPL
			}
		}
	}

	if s.Trades > 0 {
		s.AvgPL = s.NetPL / float64(s.Trades)
		s.WinRate = 100 * float64(s.Wins) / float64(s.Trades)
	}
	if grossLosses > 0 {
		s.ProfitFactor = grossWins / grossLosses
	}
	return s
}
