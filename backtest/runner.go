// Package backtest composes the pipeline stages into runs: indicator ->
// signals -> order intents -> simulated fills -> ledger -> statistics.
package backtest

import (
	"fmt"

	"github.com/rustyeddy/backtester/internal/id"
	"github.com/rustyeddy/backtester/market"
	"github.com/rustyeddy/backtester/portfolio"
	"github.com/rustyeddy/backtester/rules"
	"github.com/rustyeddy/backtester/signal"
	"github.com/rustyeddy/backtester/sim"
	"github.com/rustyeddy/backtester/stats"
)

// RunConfig describes one backtest run.
type RunConfig struct {
	Name          string        // label for reporting; defaults to the strategy label
	Kind          string        // strategy kind, e.g. "macd-zero-cross", "filter-rule"
	Signal        signal.Config // parameters for the strategy builder
	Field         market.Field  // price field strategies and fills read
	Quantity      float64       // fixed position size
	InitialEquity float64
	CloseEnd      bool // close any open position at the final bar
}

// Result is the complete outcome of one run. A failed run carries Err and
// degenerate (zero) statistics; the caller decides whether that matters.
type Result struct {
	RunID    string
	Name     string
	Strategy string

	Stats         stats.Statistics
	Trades        []sim.Trade
	Fills         []sim.Fill
	Equity        []portfolio.EquityPoint
	FinalPosition sim.Position

	Err error
}

// Failed reports whether the run ended in error.
func (r Result) Failed() bool { return r.Err != nil }

// Session owns all mutable state of a single run: the simulator (position,
// fill and trade logs) and the ledger (cash, equity curve). A fresh Session
// is built for every run; there is no shared or named global state.
type Session struct {
	Engine *sim.Engine
	Ledger *portfolio.Ledger
}

// NewSession builds the per-run state for the given instrument and sizing.
func NewSession(inst market.Instrument, field market.Field, initialEquity float64) *Session {
	return &Session{
		Engine: sim.NewEngine(inst, field),
		Ledger: portfolio.NewLedger(initialEquity, inst),
	}
}

// Runner executes runs against a fixed instrument and strategy registry.
// A Runner itself is stateless across runs and safe to reuse.
type Runner struct {
	Registry   *signal.Registry
	Instrument market.Instrument
}

// NewRunner returns a Runner with the built-in strategy kinds registered.
func NewRunner(inst market.Instrument) *Runner {
	return &Runner{Registry: signal.NewRegistry(), Instrument: inst}
}

// Run executes one backtest. Any failure while applying the strategy -- bad
// config, malformed composition, or an unexpected panic -- is captured in
// the Result rather than propagated, so batches of independent runs can
// continue past it.
func (r *Runner) Run(s *market.Series, cfg RunConfig) (res Result) {
	res.RunID = id.New()
	res.Name = cfg.Name

	defer func() {
		if p := recover(); p != nil {
			res.Err = fmt.Errorf("backtest: strategy application panic: %v", p)
		}
	}()

	gen, err := r.Registry.Build(cfg.Kind, cfg.Signal)
	if err != nil {
		res.Err = err
		return res
	}
	res.Strategy = gen.Name()
	if res.Name == "" {
		res.Name = gen.Name()
	}

	signals, err := gen.Generate(s, cfg.Field)
	if err != nil {
		res.Err = fmt.Errorf("backtest: generate signals: %w", err)
		return res
	}

	intents := rules.DeriveIntents(signals, rules.Sizing{Quantity: cfg.Quantity})
	if cfg.CloseEnd && s.Len() > 0 && openAfter(intents) {
		last := s.At(s.Len() - 1)
		intents = append(intents, rules.Intent{
			Time:   last.Time,
			Index:  s.Len() - 1,
			Side:   rules.ExitLong,
			All:    true,
			Reason: "EndOfSeries",
		})
	}

	sess := NewSession(r.Instrument, cfg.Field, cfg.InitialEquity)
	pos, err := sess.Engine.Run(s, intents)
	if err != nil {
		res.Err = fmt.Errorf("backtest: simulate: %w", err)
		return res
	}

	// Replay fills through the ledger bar by bar, marking to market once per
	// bar whether or not anything filled.
	fills := sess.Engine.Fills()
	next := 0
	openQty := 0.0
	for i := 0; i < s.Len(); i++ {
		for next < len(fills) && fills[next].Index == i {
			f := fills[next]
			sess.Ledger.Apply(f)
			if f.Side == rules.EnterLong {
				openQty += f.Quantity
			} else {
				openQty -= f.Quantity
			}
			next++
		}
		sess.Ledger.MarkToMarket(s.At(i), openQty)
	}

	res.Trades = sess.Engine.Trades()
	res.Fills = fills
	res.Equity = sess.Ledger.Curve()
	res.FinalPosition = pos
	res.Stats = stats.Summarize(res.Trades, res.Fills)
	return res
}

// openAfter reports whether the intent sequence leaves a position open.
func openAfter(intents []rules.Intent) bool {
	open := false
	for _, in := range intents {
		open = in.Side == rules.EnterLong
	}
	return open
}
