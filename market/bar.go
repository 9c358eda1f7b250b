// Package market defines price bars, bar series, and instrument metadata
// shared by every stage of the backtester.
package market

import "time"

// Bar is a single OHLC bar for one period.
type Bar struct {
	Time  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64

	Volume float64 // optional
}

// Field selects which price of a bar a computation reads.
type Field int

const (
	FieldClose Field = iota
	FieldOpen
)

func (f Field) String() string {
	if f == FieldOpen {
		return "open"
	}
	return "close"
}

// ParseField maps "open"/"close" to a Field. Unknown strings default to close.
func ParseField(s string) Field {
	if s == "open" {
		return FieldOpen
	}
	return FieldClose
}

// Price returns the bar price selected by f.
func (b Bar) Price(f Field) float64 {
	if f == FieldOpen {
		return b.Open
	}
	return b.Close
}
