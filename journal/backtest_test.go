package journal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/backtester/backtest"
	"github.com/rustyeddy/backtester/portfolio"
	"github.com/rustyeddy/backtester/sim"
	"github.com/rustyeddy/backtester/stats"
)

type memJournal struct {
	runs   []RunRecord
	trades []TradeRecord
	equity []EquityRecord
	closed bool
}

func (m *memJournal) RecordRun(r RunRecord) error       { m.runs = append(m.runs, r); return nil }
func (m *memJournal) RecordTrade(t TradeRecord) error   { m.trades = append(m.trades, t); return nil }
func (m *memJournal) RecordEquity(e EquityRecord) error { m.equity = append(m.equity, e); return nil }
func (m *memJournal) Close() error                      { m.closed = true; return nil }

func TestRecordResult(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	res := backtest.Result{
		RunID:    "01RUN",
		Name:     "macd(2,3,2)",
		Strategy: "macd(2,3,2)",
		Trades: []sim.Trade{{
			ID: "01TRADE", Instrument: "SPY", Quantity: 100,
			EntryTime: now, EntryPrice: 11,
			ExitTime: now.AddDate(0, 0, 4), ExitPrice: 12,
			RealizedPL: 100, Reason: "macd(2,3,2)",
		}},
		Equity: []portfolio.EquityPoint{
			{Time: now, Equity: 10_000},
			{Time: now.AddDate(0, 0, 4), Equity: 10_100},
		},
		Stats: stats.Statistics{NetPL: 100, Trades: 1, Transactions: 2},
	}

	j := &memJournal{}
	require.NoError(t, RecordResult(j, res))

	require.Len(t, j.runs, 1)
	assert.Equal(t, "01RUN", j.runs[0].RunID)
	assert.Equal(t, now, j.runs[0].Start)
	assert.InDelta(t, 10_100, j.runs[0].FinalEquity, 1e-9)
	assert.Empty(t, j.runs[0].Error)

	require.Len(t, j.trades, 1)
	assert.Equal(t, "01RUN", j.trades[0].RunID)
	assert.InDelta(t, 100, j.trades[0].RealizedPL, 1e-9)

	assert.Len(t, j.equity, 2)
}

func TestRecordResultFailedRun(t *testing.T) {
	res := backtest.Result{RunID: "01BAD", Name: "broken", Err: fmt.Errorf("boom")}

	j := &memJournal{}
	require.NoError(t, RecordResult(j, res))

	require.Len(t, j.runs, 1)
	assert.Equal(t, "boom", j.runs[0].Error)
	assert.Empty(t, j.trades)
	assert.Empty(t, j.equity)
}
