package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/backtester/signal"
)

func sigs(kinds ...signal.Kind) []signal.Signal {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]signal.Signal, len(kinds))
	for i, k := range kinds {
		out[i] = signal.Signal{Time: start.AddDate(0, 0, i), Index: i, Kind: k, Source: "test"}
	}
	return out
}

func TestDeriveIntentsAlternates(t *testing.T) {
	in := sigs(signal.Bullish, signal.Bearish, signal.Bullish, signal.Bearish)
	out := DeriveIntents(in, Sizing{Quantity: 100})

	assert.Len(t, out, 4)
	assert.Equal(t, EnterLong, out[0].Side)
	assert.Equal(t, 100.0, out[0].Quantity)
	assert.Equal(t, ExitLong, out[1].Side)
	assert.True(t, out[1].All)
	assert.Equal(t, EnterLong, out[2].Side)
	assert.Equal(t, ExitLong, out[3].Side)
}

func TestDeriveIntentsNoPyramiding(t *testing.T) {
	in := sigs(signal.Bullish, signal.Bullish, signal.Bullish, signal.Bearish)
	out := DeriveIntents(in, Sizing{Quantity: 10})

	assert.Len(t, out, 2)
	assert.Equal(t, EnterLong, out[0].Side)
	assert.Equal(t, 0, out[0].Index, "repeat bullish signals while long are discarded")
	assert.Equal(t, ExitLong, out[1].Side)
	assert.Equal(t, 3, out[1].Index)
}

func TestDeriveIntentsDiscardsExitWhileFlat(t *testing.T) {
	in := sigs(signal.Bearish, signal.Bearish, signal.Bullish)
	out := DeriveIntents(in, Sizing{Quantity: 10})

	assert.Len(t, out, 1)
	assert.Equal(t, EnterLong, out[0].Side)
	assert.Equal(t, 2, out[0].Index)
}

func TestDeriveIntentsEmpty(t *testing.T) {
	assert.Empty(t, DeriveIntents(nil, Sizing{Quantity: 10}))
}

// At-most-one-open-position invariant over a pseudo-random signal sequence:
// enters never lead exits by more than one, and no two consecutive intents
// share a side.
func TestDeriveIntentsInvariant(t *testing.T) {
	var kinds []signal.Kind
	for i := 0; i < 200; i++ {
		// Deterministic but irregular mix.
		if (i*7)%5 < 2 {
			kinds = append(kinds, signal.Bullish)
		} else {
			kinds = append(kinds, signal.Bearish)
		}
	}
	out := DeriveIntents(sigs(kinds...), Sizing{Quantity: 1})

	enters, exits := 0, 0
	for i, in := range out {
		if in.Side == EnterLong {
			enters++
		} else {
			exits++
		}
		assert.LessOrEqual(t, enters-exits, 1)
		assert.GreaterOrEqual(t, enters-exits, 0)
		if i > 0 {
			assert.NotEqual(t, out[i-1].Side, in.Side, "intents must alternate")
		}
	}
}
