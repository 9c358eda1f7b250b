package signal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/backtester/indicator"
	"github.com/rustyeddy/backtester/market"
)

func dailySeries(t *testing.T, closes ...float64) *market.Series {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]market.Bar, len(closes))
	for i, c := range closes {
		bars[i] = market.Bar{Time: start.AddDate(0, 0, i), Open: c, High: c, Low: c, Close: c}
	}
	s, err := market.NewSeries("TEST", bars)
	require.NoError(t, err)
	return s
}

func TestZeroCrossScenario(t *testing.T) {
	s := dailySeries(t, 10, 10, 10, 11, 12, 14, 13, 12, 11, 10)

	gen, err := NewZeroCross(indicator.MACDConfig{FastPeriod: 2, SlowPeriod: 3, SignalPeriod: 2})
	require.NoError(t, err)

	sigs, err := gen.Generate(s, market.FieldClose)
	require.NoError(t, err)
	require.Len(t, sigs, 2)

	assert.Equal(t, Bullish, sigs[0].Kind)
	assert.Equal(t, 3, sigs[0].Index, "first bullish zero-cross fires at bar 3")
	assert.Equal(t, Bearish, sigs[1].Kind)
	assert.Equal(t, 7, sigs[1].Index)
	assert.Equal(t, "macd(2,3,2)", sigs[0].Source)
}

func TestZeroCrossShortSeriesDegradesToNoSignals(t *testing.T) {
	s := dailySeries(t, 10, 11, 12)

	gen, err := NewZeroCross(indicator.MACDConfig{FastPeriod: 2, SlowPeriod: 3, SignalPeriod: 2})
	require.NoError(t, err)

	sigs, err := gen.Generate(s, market.FieldClose)
	require.NoError(t, err)
	assert.Empty(t, sigs)
}

func TestZeroCrossRejectsBadPeriods(t *testing.T) {
	_, err := NewZeroCross(indicator.MACDConfig{FastPeriod: 26, SlowPeriod: 12, SignalPeriod: 9})
	assert.Error(t, err)
}

func TestFilterRuleSignals(t *testing.T) {
	s := dailySeries(t, 100, 101, 109, 101, 108.5, 101)

	gen, err := NewFilterRule(0.07)
	require.NoError(t, err)

	sigs, err := gen.Generate(s, market.FieldClose)
	require.NoError(t, err)
	require.Len(t, sigs, 3)

	assert.Equal(t, Bullish, sigs[0].Kind)
	assert.Equal(t, 2, sigs[0].Index)
	assert.Equal(t, Bearish, sigs[1].Kind)
	assert.Equal(t, 3, sigs[1].Index)
	assert.Equal(t, Bullish, sigs[2].Kind)
	assert.Equal(t, 4, sigs[2].Index)
}

func TestFilterRuleThresholdAboveEveryMove(t *testing.T) {
	s := dailySeries(t, 100, 101, 102, 101, 100)

	gen, err := NewFilterRule(0.50)
	require.NoError(t, err)

	sigs, err := gen.Generate(s, market.FieldClose)
	require.NoError(t, err)
	assert.Empty(t, sigs, "threshold above every observed move yields zero signals")
}

func TestFilterRuleRejectsNonPositiveThreshold(t *testing.T) {
	_, err := NewFilterRule(0)
	assert.Error(t, err)
}

func TestRegistryBuildsBuiltins(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{"filter-rule", "macd-zero-cross"}, r.Kinds())

	gen, err := r.Build("macd-zero-cross", Config{
		MACD: indicator.MACDConfig{FastPeriod: 12, SlowPeriod: 26, SignalPeriod: 9},
	})
	require.NoError(t, err)
	assert.Equal(t, "macd(12,26,9)", gen.Name())

	_, err = r.Build("nope", Config{})
	assert.Error(t, err)
}
