// Package signal turns indicator series into discrete directional trading
// signals via crossing detection.
package signal

import "github.com/rustyeddy/backtester/indicator"

// Relationship is the comparison a crossing must newly satisfy.
type Relationship int

const (
	Above Relationship = iota // series > reference
	Below                     // series < reference
)

func (r Relationship) holds(v, ref float64) bool {
	if r == Above {
		return v > ref
	}
	return v < ref
}

// Detect reports, for each bar, whether the series crossed the reference at
// that bar. A crossing fires at bar i iff both bar i-1 and bar i are defined
// in series and reference, bar i-1 does not satisfy the relationship, and
// bar i does. A sustained run past the reference therefore fires exactly
// once, at its first bar, and the undefined warm-up region never fires.
func Detect(series, reference indicator.Series, rel Relationship) []bool {
	n := series.Len()
	events := make([]bool, n)

	for i := 1; i < n; i++ {
		if !series.Defined(i-1) || !series.Defined(i) {
			continue
		}
		if !reference.Defined(i-1) || !reference.Defined(i) {
			continue
		}
		prev := rel.holds(series.At(i-1), reference.At(i-1))
		cur := rel.holds(series.At(i), reference.At(i))
		if !prev && cur {
			events[i] = true
		}
	}
	return events
}

// DetectConst is Detect against a constant reference level.
func DetectConst(series indicator.Series, level float64, rel Relationship) []bool {
	return Detect(series, indicator.Constant(series.Len(), level), rel)
}
