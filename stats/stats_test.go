package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/backtester/sim"
)

func TestSummarizeEmptyLogIsAllZero(t *testing.T) {
	s := Summarize(nil, nil)
	assert.Equal(t, Statistics{}, s)
}

func TestSummarizeRollup(t *testing.T) {
	trades := []sim.Trade{
		{RealizedPL: 100},
		{RealizedPL: -40},
		{RealizedPL: 250},
		{RealizedPL: -10},
	}
	fills := make([]sim.Fill, 8) // 2 per round trip

	s := Summarize(trades, fills)

	assert.InDelta(t, 300, s.NetPL, 1e-9)
	assert.InDelta(t, 75, s.AvgPL, 1e-9)
	assert.Equal(t, 4, s.Trades)
	assert.Equal(t, 8, s.Transactions)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 2, s.Losses)
	assert.InDelta(t, 50, s.WinRate, 1e-9)
	assert.InDelta(t, 250, s.LargestWin, 1e-9)
	assert.InDelta(t, -40, s.LargestLoss, 1e-9)
	assert.InDelta(t, 350.0/50.0, s.ProfitFactor, 1e-9)
}

func TestSummarizeNetEqualsSumOfTradePL(t *testing.T) {
	trades := []sim.Trade{{RealizedPL: 1.5}, {RealizedPL: -2.25}, {RealizedPL: 3.75}}
	s := Summarize(trades, nil)

	sum := 0.0
	for _, tr := range trades {
		sum += tr.RealizedPL
	}
	assert.Equal(t, sum, s.NetPL)
}

func TestSummarizeAllWinners(t *testing.T) {
	s := Summarize([]sim.Trade{{RealizedPL: 10}, {RealizedPL: 20}}, nil)

	assert.Equal(t, 0, s.Losses)
	assert.InDelta(t, 0, s.ProfitFactor, 1e-9, "no losses leaves profit factor at zero")
	assert.InDelta(t, 0, s.LargestLoss, 1e-9)
	assert.InDelta(t, 100, s.WinRate, 1e-9)
}
