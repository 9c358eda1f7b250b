package portfolio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/backtester/market"
	"github.com/rustyeddy/backtester/rules"
	"github.com/rustyeddy/backtester/sim"
)

func bar(day int, close float64) market.Bar {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)
	return market.Bar{Time: t, Open: close, High: close, Low: close, Close: close}
}

func TestLedgerCashMoves(t *testing.T) {
	l := NewLedger(10_000, market.DefaultInstrument("TEST"))

	l.Apply(sim.Fill{Side: rules.EnterLong, Quantity: 100, Price: 11})
	assert.InDelta(t, 10_000-1100, l.Cash(), 1e-9)

	l.Apply(sim.Fill{Side: rules.ExitLong, Quantity: 100, Price: 12})
	assert.InDelta(t, 10_000+100, l.Cash(), 1e-9)
}

func TestLedgerMarkToMarket(t *testing.T) {
	l := NewLedger(10_000, market.DefaultInstrument("TEST"))

	l.MarkToMarket(bar(0, 10), 0)
	l.Apply(sim.Fill{Side: rules.EnterLong, Quantity: 100, Price: 11})
	l.MarkToMarket(bar(1, 11), 100)
	l.MarkToMarket(bar(2, 12), 100)

	curve := l.Curve()
	assert.Len(t, curve, 3)
	assert.InDelta(t, 10_000, curve[0].Equity, 1e-9)
	// Entry is cash-neutral at the fill bar: cash down, holdings up.
	assert.InDelta(t, 10_000, curve[1].Equity, 1e-9)
	// One bar later the position is worth 100 more.
	assert.InDelta(t, 10_100, curve[2].Equity, 1e-9)
}

func TestLedgerMultiplier(t *testing.T) {
	inst := market.Instrument{Symbol: "FUT", Currency: "USD", Multiplier: 50}
	l := NewLedger(100_000, inst)

	l.Apply(sim.Fill{Side: rules.EnterLong, Quantity: 2, Price: 10})
	assert.InDelta(t, 100_000-10*2*50, l.Cash(), 1e-9)

	l.MarkToMarket(bar(0, 11), 2)
	assert.InDelta(t, 100_000+(11-10)*2*50, l.FinalEquity(), 1e-9)
}

func TestLedgerFinalEquityBeforeAnyBar(t *testing.T) {
	l := NewLedger(5000, market.DefaultInstrument("TEST"))
	assert.InDelta(t, 5000, l.FinalEquity(), 1e-9)
	assert.Equal(t, 5000.0, l.InitialEquity())
}
