package signal

import "time"

// Kind is the direction of a signal.
type Kind int

const (
	Bullish Kind = iota
	Bearish
)

func (k Kind) String() string {
	if k == Bearish {
		return "bearish"
	}
	return "bullish"
}

// Signal is a directional event at one bar. Signals are produced only at
// bars where a crossing was detected and are never revised afterwards.
type Signal struct {
	Time   time.Time
	Index  int // bar index in the source series
	Kind   Kind
	Source string // label of the generator that produced it
}
