package sim

import (
	"time"

	"github.com/rustyeddy/backtester/rules"
)

// Fill is a realized execution record, immutable once created.
type Fill struct {
	ID       string
	Time     time.Time
	Index    int // bar index the fill occurred at
	Side     rules.Side
	Quantity float64
	Price    float64
}

// Trade is a matched entry/exit fill pair. RealizedPL is computed once, when
// the exit leg fills.
type Trade struct {
	ID         string
	Instrument string
	Quantity   float64

	EntryTime  time.Time
	EntryPrice float64
	ExitTime   time.Time
	ExitPrice  float64

	RealizedPL float64
	Reason     string // label of the signal that closed the trade
}
