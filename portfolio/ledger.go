// Package portfolio tracks cash and the mark-to-market equity curve over a
// backtest run.
package portfolio

import (
	"time"

	"github.com/rustyeddy/backtester/market"
	"github.com/rustyeddy/backtester/rules"
	"github.com/rustyeddy/backtester/sim"
)

// EquityPoint is one bar's mark-to-market account value.
type EquityPoint struct {
	Time   time.Time
	Equity float64
}

// Ledger applies fills to cash and records the equity curve. The ledger is
// mutated exactly once per processed bar, by MarkToMarket, plus once per
// fill; no other component touches it.
type Ledger struct {
	initial    float64
	cash       float64
	multiplier float64
	curve      []EquityPoint
}

// NewLedger starts a ledger with the given initial equity, all in cash.
func NewLedger(initialEquity float64, inst market.Instrument) *Ledger {
	mult := inst.Multiplier
	if mult == 0 {
		mult = 1
	}
	return &Ledger{initial: initialEquity, cash: initialEquity, multiplier: mult}
}

// Apply moves cash for a fill: out on entry, back in on exit.
func (l *Ledger) Apply(f sim.Fill) {
	notional := f.Price * f.Quantity * l.multiplier
	if f.Side == rules.EnterLong {
		l.cash -= notional
	} else {
		l.cash += notional
	}
}

// MarkToMarket records the equity at one bar: cash plus the open quantity
// valued at that bar's close. Called once per bar whether or not anything
// filled.
func (l *Ledger) MarkToMarket(bar market.Bar, openQuantity float64) {
	equity := l.cash + openQuantity*bar.Close*l.multiplier
	l.curve = append(l.curve, EquityPoint{Time: bar.Time, Equity: equity})
}

// Cash returns the current cash balance.
func (l *Ledger) Cash() float64 { return l.cash }

// InitialEquity returns the starting equity, constant for the run.
func (l *Ledger) InitialEquity() float64 { return l.initial }

// Curve returns the per-bar equity curve recorded so far.
func (l *Ledger) Curve() []EquityPoint { return l.curve }

// FinalEquity returns the last recorded equity, or initial equity when no
// bar has been marked yet.
func (l *Ledger) FinalEquity() float64 {
	if len(l.curve) == 0 {
		return l.initial
	}
	return l.curve[len(l.curve)-1].Equity
}
