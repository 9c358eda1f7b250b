// Package forecast produces model-generated price series for the engine to
// backtest against. The engine only consumes the output schema; how the
// numbers were predicted is this package's business alone.
package forecast

import (
	"fmt"
	"time"

	"github.com/rustyeddy/backtester/market"
)

// Forecaster emits a price series aligned in time with the ground-truth
// series it was given.
type Forecaster interface {
	Name() string
	Forecast(s *market.Series, f market.Field) (*market.Series, error)
}

// Naive forecasts each bar as the price observed Lag bars earlier, rescaled
// by Scale. The first Lag bars echo the observed price. This is the classic
// persistence baseline every real model has to beat.
type Naive struct {
	Lag   int
	Scale float64
}

func (n Naive) Name() string { return fmt.Sprintf("naive(lag=%d)", n.Lag) }

func (n Naive) Forecast(s *market.Series, f market.Field) (*market.Series, error) {
	if n.Lag <= 0 {
		return nil, fmt.Errorf("forecast: lag must be positive, got %d", n.Lag)
	}
	scale := n.Scale
	if scale == 0 {
		scale = 1
	}

	bars := make([]market.Bar, s.Len())
	for i := 0; i < s.Len(); i++ {
		src := i - n.Lag
		if src < 0 {
			src = i
		}
		bars[i] = flatBar(s.At(i).Time, s.At(src).Price(f)*scale)
	}
	return market.NewSeries(s.Instrument+"/forecast", bars)
}

// LinearTrend fits a least-squares line through the selected price field and
// emits the fitted values as the forecast series.
type LinearTrend struct{}

func (LinearTrend) Name() string { return "linear-trend" }

func (LinearTrend) Forecast(s *market.Series, f market.Field) (*market.Series, error) {
	n := s.Len()
	if n < 2 {
		return nil, fmt.Errorf("forecast: need at least 2 bars to fit a trend, have %d", n)
	}

	// Ordinary least squares of price against bar index.
	var sumX, sumY, sumXY, sumXX float64
	for i := 0; i < n; i++ {
		x := float64(i)
		y := s.At(i).Price(f)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return nil, fmt.Errorf("forecast: degenerate regression")
	}
	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn

	bars := make([]market.Bar, n)
	for i := 0; i < n; i++ {
		bars[i] = flatBar(s.At(i).Time, intercept+slope*float64(i))
	}
	return market.NewSeries(s.Instrument+"/forecast", bars)
}

// flatBar builds a bar whose OHLC all carry the predicted price; the engine
// reads one field per run, so the schema stays aligned either way.
func flatBar(t time.Time, price float64) market.Bar {
	return market.Bar{Time: t, Open: price, High: price, Low: price, Close: price}
}
