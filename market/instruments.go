package market

// Instrument describes the thing being traded. It is passed explicitly into
// the execution simulator; there is no process-wide instrument registry.
type Instrument struct {
	Symbol     string
	Currency   string
	Multiplier float64 // contract multiplier; 1 for plain equities
}

// DefaultInstrument returns a plain single-unit equity descriptor.
func DefaultInstrument(symbol string) Instrument {
	return Instrument{Symbol: symbol, Currency: "USD", Multiplier: 1}
}
