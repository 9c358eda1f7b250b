package market

import (
	"fmt"
	"time"
)

// Series is an ordered sequence of bars for a single instrument.
// Timestamps must be strictly increasing; a Series is immutable for the
// duration of a backtest run.
type Series struct {
	Instrument string
	Bars       []Bar
}

// NewSeries validates bar ordering and returns a Series. Bars must be in
// strictly increasing time order with no duplicate timestamps.
func NewSeries(instrument string, bars []Bar) (*Series, error) {
	for i := 1; i < len(bars); i++ {
		if !bars[i].Time.After(bars[i-1].Time) {
			return nil, fmt.Errorf("market: bars out of order at index %d (%s then %s)",
				i, bars[i-1].Time.Format(time.RFC3339), bars[i].Time.Format(time.RFC3339))
		}
	}
	return &Series{Instrument: instrument, Bars: bars}, nil
}

// Len returns the number of bars.
func (s *Series) Len() int { return len(s.Bars) }

// At returns the bar at index i.
func (s *Series) At(i int) Bar { return s.Bars[i] }

// Prices extracts the selected price field as a flat slice, aligned by index.
func (s *Series) Prices(f Field) []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Price(f)
	}
	return out
}

// Times extracts the bar timestamps, aligned by index.
func (s *Series) Times() []time.Time {
	out := make([]time.Time, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Time
	}
	return out
}

// IndexAt returns the index of the bar with exactly timestamp t, or -1.
func (s *Series) IndexAt(t time.Time) int {
	// Bars are sorted; binary search.
	lo, hi := 0, len(s.Bars)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case s.Bars[mid].Time.Equal(t):
			return mid
		case s.Bars[mid].Time.Before(t):
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}
