package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEMASeededBySimpleAverage(t *testing.T) {
	// period 2 over [10,10,10,11]: seed = (10+10)/2 = 10 at index 1.
	out, err := EMA(FromPrices([]float64{10, 10, 10, 11}), 2)
	require.NoError(t, err)

	assert.Equal(t, 1, out.Start())
	assert.False(t, out.Defined(0))
	assert.InDelta(t, 10.0, out.At(1), 1e-9)
	assert.InDelta(t, 10.0, out.At(2), 1e-9)
	// alpha = 2/3: (11-10)*2/3 + 10
	assert.InDelta(t, 10.0+2.0/3.0, out.At(3), 1e-9)
}

func TestEMARespectsInputWarmup(t *testing.T) {
	in := NewSeries(6, 2)
	for i := 2; i < 6; i++ {
		in.Set(i, float64(i))
	}

	out, err := EMA(in, 3)
	require.NoError(t, err)

	// First defined at in.Start() + period - 1 = 4.
	assert.Equal(t, 4, out.Start())
	assert.False(t, out.Defined(3))
	assert.InDelta(t, 3.0, out.At(4), 1e-9) // (2+3+4)/3
}

func TestEMABadPeriod(t *testing.T) {
	_, err := EMA(FromPrices([]float64{1, 2, 3}), 0)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestEMATooShortIsAllUndefined(t *testing.T) {
	out, err := EMA(FromPrices([]float64{1, 2}), 5)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Len())
	assert.False(t, out.Defined(0))
	assert.False(t, out.Defined(1))
}

func TestPercentChange(t *testing.T) {
	out := PercentChange([]float64{100, 110, 99})
	assert.Equal(t, 1, out.Start())
	assert.InDelta(t, 0.10, out.At(1), 1e-9)
	assert.InDelta(t, -0.10, out.At(2), 1e-9)
}

func TestPercentChangeEmpty(t *testing.T) {
	out := PercentChange(nil)
	assert.Equal(t, 0, out.Len())
}
