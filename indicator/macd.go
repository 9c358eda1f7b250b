package indicator

import "fmt"

// MACDConfig holds the three EMA periods of the moving-average convergence
// indicator. FastPeriod must be strictly less than SlowPeriod.
type MACDConfig struct {
	FastPeriod   int `json:"fast_period" yaml:"fast_period"`
	SlowPeriod   int `json:"slow_period" yaml:"slow_period"`
	SignalPeriod int `json:"signal_period" yaml:"signal_period"`
}

// Validate checks the period constraints.
func (c MACDConfig) Validate() error {
	if c.FastPeriod <= 0 || c.SlowPeriod <= 0 || c.SignalPeriod <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("periods must be positive (fast=%d slow=%d signal=%d)",
			c.FastPeriod, c.SlowPeriod, c.SignalPeriod)}
	}
	if c.FastPeriod >= c.SlowPeriod {
		return &ConfigError{Reason: fmt.Sprintf("fast period %d must be less than slow period %d",
			c.FastPeriod, c.SlowPeriod)}
	}
	return nil
}

// Lookback returns the number of bars needed before the signal line has its
// first defined value.
func (c MACDConfig) Lookback() int { return c.SlowPeriod + c.SignalPeriod }

// MACD holds the computed lines of the indicator, aligned with the input
// prices. Line is defined from bar SlowPeriod-1; SignalLine once Line has
// SignalPeriod defined values.
type MACD struct {
	Line       Series // fast EMA - slow EMA
	SignalLine Series // EMA of Line
}

// ComputeMACD computes the MACD line and signal line over prices.
//
// A ConfigError is fatal. An InsufficientDataError means the series is too
// short for any signal-line value; callers should degrade to zero signals.
func ComputeMACD(prices []float64, cfg MACDConfig) (MACD, error) {
	if err := cfg.Validate(); err != nil {
		return MACD{}, err
	}
	if len(prices) < cfg.Lookback() {
		return MACD{}, &InsufficientDataError{Need: cfg.Lookback(), Have: len(prices)}
	}

	in := FromPrices(prices)

	fast, err := EMA(in, cfg.FastPeriod)
	if err != nil {
		return MACD{}, err
	}
	slow, err := EMA(in, cfg.SlowPeriod)
	if err != nil {
		return MACD{}, err
	}

	// The MACD line exists wherever both EMAs do; slow always starts later.
	line := NewSeries(len(prices), slow.Start())
	for i := line.Start(); i < line.Len(); i++ {
		line.Set(i, fast.At(i)-slow.At(i))
	}

	sig, err := EMA(line, cfg.SignalPeriod)
	if err != nil {
		return MACD{}, err
	}

	return MACD{Line: line, SignalLine: sig}, nil
}
