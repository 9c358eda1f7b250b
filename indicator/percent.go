package indicator

// PercentChange computes the day-over-day fractional change
// p[i]/p[i-1] - 1. The first bar has no prior price, so the result is
// defined from index 1.
func PercentChange(prices []float64) Series {
	n := len(prices)
	if n == 0 {
		return NewSeries(0, 0)
	}

	out := NewSeries(n, 1)
	for i := 1; i < n; i++ {
		out.Set(i, prices[i]/prices[i-1]-1)
	}
	return out
}
