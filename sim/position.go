package sim

// State is the position state machine: FLAT is both the initial and
// (potentially) terminal state.
type State int

const (
	Flat State = iota
	Long
)

func (s State) String() string {
	if s == Long {
		return "LONG"
	}
	return "FLAT"
}

// Position is the single per-run position for one instrument.
// Invariant: Quantity > 0 exactly when State == Long.
type Position struct {
	Instrument string
	State      State
	Quantity   float64
	AvgPrice   float64
}

// Open reports whether the position is currently held.
func (p Position) Open() bool { return p.State == Long }
