// Package journal persists backtest runs, trades and equity curves.
package journal

import "time"

// RunRecord summarizes one completed (or failed) backtest run.
type RunRecord struct {
	RunID        string
	Name         string
	Strategy     string
	Instrument   string
	Start        time.Time
	End          time.Time
	NetPL        float64
	Trades       int
	Transactions int
	FinalEquity  float64
	Error        string // empty on success
}

// TradeRecord is one realized round trip.
type TradeRecord struct {
	TradeID    string
	RunID      string
	Instrument string
	Quantity   float64
	EntryPrice float64
	ExitPrice  float64
	OpenTime   time.Time
	CloseTime  time.Time
	RealizedPL float64
	Reason     string
}

// EquityRecord is one bar of a run's equity curve.
type EquityRecord struct {
	RunID  string
	Time   time.Time
	Equity float64
}

// Journal records run output. Implementations: SQLite and CSV.
type Journal interface {
	RecordRun(RunRecord) error
	RecordTrade(TradeRecord) error
	RecordEquity(EquityRecord) error
	Close() error
}
