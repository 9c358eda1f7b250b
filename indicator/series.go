// Package indicator computes derived numeric series from price data.
//
// Every indicator value has a warm-up region at the front of the series where
// it is mathematically undefined. Series carries that region explicitly so
// downstream stages never mistake "no value yet" for zero.
package indicator

// Series is a numeric series aligned 1:1 by index with the price series that
// produced it. Indices below Start() hold no value.
type Series struct {
	start  int
	values []float64
}

// NewSeries returns a Series of length n whose first defined index is start.
// A start >= n means the series is entirely undefined.
func NewSeries(n, start int) Series {
	if start < 0 {
		start = 0
	}
	return Series{start: start, values: make([]float64, n)}
}

// Constant returns a fully-defined series of length n holding v at every
// index. Useful as a crossing reference (e.g. the zero line).
func Constant(n int, v float64) Series {
	s := NewSeries(n, 0)
	for i := range s.values {
		s.values[i] = v
	}
	return s
}

// Len returns the total length including the undefined warm-up region.
func (s Series) Len() int { return len(s.values) }

// Start returns the index of the first defined value.
func (s Series) Start() int { return s.start }

// Defined reports whether index i holds a value.
func (s Series) Defined(i int) bool {
	return i >= s.start && i < len(s.values)
}

// At returns the value at index i. Callers must check Defined first; an
// undefined index returns 0, which is not distinguishable from a real zero.
func (s Series) At(i int) float64 { return s.values[i] }

// Set stores v at index i. Setting below the declared start is a programming
// error and panics.
func (s Series) Set(i int, v float64) {
	if i < s.start {
		panic("indicator: set inside undefined warm-up region")
	}
	s.values[i] = v
}
