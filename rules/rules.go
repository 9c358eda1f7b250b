// Package rules maps directional signals to order intents while enforcing
// the at-most-one-open-position discipline.
package rules

import (
	"time"

	"github.com/rustyeddy/backtester/signal"
)

// Side is the direction of an order intent.
type Side int

const (
	EnterLong Side = iota
	ExitLong
)

func (s Side) String() string {
	if s == ExitLong {
		return "exit-long"
	}
	return "enter-long"
}

// Intent is a market order request derived from a signal. Exit intents set
// All and close the full open quantity.
type Intent struct {
	Time     time.Time
	Index    int // bar index of the triggering signal
	Side     Side
	Quantity float64
	All      bool
	Reason   string
}

// Sizing is the fixed-quantity position sizing policy.
type Sizing struct {
	Quantity float64
}

// DeriveIntents walks signals in time order carrying a FLAT/LONG tracker:
//
//   - bullish while FLAT  -> enter-long of the fixed quantity, tracker LONG
//   - bearish while LONG  -> exit-long of the full quantity, tracker FLAT
//   - anything else       -> discarded (no pyramiding, no naked exits)
//
// The tracker mirrors what the simulator will do, so intents and fills stay
// consistent even before execution.
func DeriveIntents(signals []signal.Signal, sizing Sizing) []Intent {
	var out []Intent
	long := false

	for _, sig := range signals {
		switch sig.Kind {
		case signal.Bullish:
			if long {
				continue
			}
			out = append(out, Intent{
				Time:     sig.Time,
				Index:    sig.Index,
				Side:     EnterLong,
				Quantity: sizing.Quantity,
				Reason:   sig.Source,
			})
			long = true

		case signal.Bearish:
			if !long {
				continue
			}
			out = append(out, Intent{
				Time:   sig.Time,
				Index:  sig.Index,
				Side:   ExitLong,
				All:    true,
				Reason: sig.Source,
			})
			long = false
		}
	}
	return out
}
