// Package sim executes order intents against a price series, maintaining the
// single position and the append-only fill and trade logs for one run.
package sim

import (
	"fmt"
	"sort"

	"github.com/rustyeddy/backtester/internal/id"
	"github.com/rustyeddy/backtester/market"
	"github.com/rustyeddy/backtester/rules"
)

// Fill policy: a market intent fills at the price of the bar the triggering
// signal occurred on (same-bar fill, no next-bar delay). The engine reads the
// same price field the strategy was computed on.

var (
	ErrPositionOpen = fmt.Errorf("sim: enter intent while position already open")
	ErrPositionFlat = fmt.Errorf("sim: exit intent while position flat")
)

// Engine is a per-run, per-asset execution simulator. Construct a fresh one
// for every run; nothing is shared between engines.
type Engine struct {
	instrument market.Instrument
	field      market.Field

	pos       Position
	fills     []Fill
	trades    []Trade
	openEntry *Fill // unmatched entry leg, nil when flat
}

// NewEngine creates a simulator for the given instrument. The price field
// selects which bar price market orders fill at.
func NewEngine(instrument market.Instrument, field market.Field) *Engine {
	return &Engine{
		instrument: instrument,
		field:      field,
		pos:        Position{Instrument: instrument.Symbol},
	}
}

// Position returns a copy of the current position.
func (e *Engine) Position() Position { return e.pos }

// Fills returns the append-only fill log.
func (e *Engine) Fills() []Fill { return e.fills }

// Trades returns the append-only realized trade log.
func (e *Engine) Trades() []Trade { return e.trades }

// Run processes intents strictly in timestamp order (ties broken by
// submission order) and fills each against the series. It returns the final
// position.
func (e *Engine) Run(s *market.Series, intents []rules.Intent) (Position, error) {
	ordered := make([]rules.Intent, len(intents))
	copy(ordered, intents)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Time.Before(ordered[j].Time)
	})

	for _, in := range ordered {
		if in.Index < 0 || in.Index >= s.Len() {
			return e.pos, fmt.Errorf("sim: intent at %s has bar index %d outside series of %d bars",
				in.Time.Format("2006-01-02T15:04:05Z07:00"), in.Index, s.Len())
		}
		bar := s.At(in.Index)
		if !bar.Time.Equal(in.Time) {
			return e.pos, fmt.Errorf("sim: intent time %s does not match bar %d time %s",
				in.Time, in.Index, bar.Time)
		}

		price := bar.Price(e.field)

		switch in.Side {
		case rules.EnterLong:
			if err := e.enter(in, price); err != nil {
				return e.pos, err
			}
		case rules.ExitLong:
			if err := e.exit(in, price); err != nil {
				return e.pos, err
			}
		default:
			return e.pos, fmt.Errorf("sim: unknown intent side %d", in.Side)
		}
	}
	return e.pos, nil
}

func (e *Engine) enter(in rules.Intent, price float64) error {
	if e.pos.Open() {
		return ErrPositionOpen
	}
	if in.Quantity <= 0 {
		return fmt.Errorf("sim: enter intent with non-positive quantity %v", in.Quantity)
	}

	f := Fill{
		ID:       id.New(),
		Time:     in.Time,
		Index:    in.Index,
		Side:     rules.EnterLong,
		Quantity: in.Quantity,
		Price:    price,
	}
	e.fills = append(e.fills, f)
	e.openEntry = &f

	e.pos.State = Long
	e.pos.Quantity = in.Quantity
	e.pos.AvgPrice = price
	return nil
}

func (e *Engine) exit(in rules.Intent, price float64) error {
	if !e.pos.Open() || e.openEntry == nil {
		return ErrPositionFlat
	}

	qty := e.pos.Quantity
	if !in.All && in.Quantity > 0 {
		qty = in.Quantity
	}
	if qty > e.pos.Quantity {
		return fmt.Errorf("sim: exit quantity %v exceeds open quantity %v", qty, e.pos.Quantity)
	}

	f := Fill{
		ID:       id.New(),
		Time:     in.Time,
		Index:    in.Index,
		Side:     rules.ExitLong,
		Quantity: qty,
		Price:    price,
	}
	e.fills = append(e.fills, f)

	entry := e.openEntry
	mult := e.instrument.Multiplier
	if mult == 0 {
		mult = 1
	}

	e.trades = append(e.trades, Trade{
		ID:         id.New(),
		Instrument: e.instrument.Symbol,
		Quantity:   qty,
		EntryTime:  entry.Time,
		EntryPrice: entry.Price,
		ExitTime:   f.Time,
		ExitPrice:  f.Price,
		RealizedPL: (f.Price - entry.Price) * qty * mult,
		Reason:     in.Reason,
	})

	e.pos.Quantity -= qty
	if e.pos.Quantity == 0 {
		e.pos.State = Flat
		e.pos.AvgPrice = 0
		e.openEntry = nil
	}
	return nil
}
