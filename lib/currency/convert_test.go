package currency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func testRates(t testing.TB) RateMap {
	rates, err := NewRateMap(
		Rate{Code: USD, Value: 755},
		Rate{Code: GBP, Value: 400},
		Rate{Code: EUR, Value: 470.5},
	)
	if err != nil {
		t.Fatal(err)
	}
	return rates
}

func TestConvert(t *testing.T) {
	rates := testRates(t)

	result, err := Convert(rates, 1000, NGN, USD)
	require.NoError(t, err)
	require.Equal(t, NGN, result.From)
	require.Equal(t, USD, result.To)
	require.Equal(t, 755.0, result.Rate)
	require.Equal(t, 1.32, result.Rounded())

	result, err = Convert(rates, 2, GBP, NGN)
	require.NoError(t, err)
	require.Equal(t, 800.0, result.Converted)
	require.Equal(t, 400.0, result.Rate)
}

func TestConvertRoundTrip(t *testing.T) {
	rates := testRates(t)

	amounts := []float64{0, 1, 999.99, 1000, 123456.78, 5_000_000}
	for _, code := range Supported {
		for _, amount := range amounts {
			there, err := Convert(rates, amount, NGN, code)
			require.NoError(t, err)
			back, err := Convert(rates, there.Converted, code, NGN)
			require.NoError(t, err)
			require.InDelta(t, amount, back.Converted, 0.005, "%s %v", code, amount)
		}
	}
}

func TestConvertRejectsInvalidPairs(t *testing.T) {
	rates := testRates(t)

	pairs := [][2]Code{
		{USD, GBP},
		{NGN, NGN},
		{USD, USD},
		{Code("jpy"), NGN},
		{NGN, Code("jpy")},
	}
	for _, pair := range pairs {
		_, err := Convert(rates, 10, pair[0], pair[1])
		require.ErrorIs(t, err, ErrInvalidArgument, "%v", pair)
	}
}

func TestConvertRejectsBadAmounts(t *testing.T) {
	rates := testRates(t)

	for _, amount := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := Convert(rates, amount, NGN, USD)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestConvertMissingRate(t *testing.T) {
	rates, err := NewRateMap(Rate{Code: USD, Value: 755})
	require.NoError(t, err)

	_, err = Convert(rates, 10, NGN, EUR)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
