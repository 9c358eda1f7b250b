package indicator

// EMA computes the exponential moving average of in with the standard
// smoothing factor 2/(period+1), seeded by the simple average of the first
// period defined values. The result is defined from in.Start()+period-1.
//
// An input with fewer than period defined values yields an entirely
// undefined series, not an error; length mismatches are the caller's to
// avoid.
func EMA(in Series, period int) (Series, error) {
	if period <= 0 {
		return Series{}, &ConfigError{Reason: "period must be positive"}
	}

	n := in.Len()
	defined := n - in.Start()
	if defined < period {
		return NewSeries(n, n), nil
	}

	out := NewSeries(n, in.Start()+period-1)

	// Seed with SMA over the first period defined values.
	sum := 0.0
	for i := in.Start(); i < in.Start()+period; i++ {
		sum += in.At(i)
	}
	ema := sum / float64(period)
	out.Set(out.Start(), ema)

	alpha := 2.0 / float64(period+1)
	for i := out.Start() + 1; i < n; i++ {
		ema = (in.At(i)-ema)*alpha + ema
		out.Set(i, ema)
	}
	return out, nil
}

// FromPrices wraps a raw price slice as a fully-defined Series.
func FromPrices(prices []float64) Series {
	s := NewSeries(len(prices), 0)
	for i, p := range prices {
		s.Set(i, p)
	}
	return s
}
