package abokifx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRateType(t *testing.T) {
	rateType, err := ParseRateType(" MoneyGram ")
	require.NoError(t, err)
	require.Equal(t, MoneyGram, rateType)

	_, err = ParseRateType("bitcoin")
	require.ErrorIs(t, err, ErrUnknownRateType)

	require.Equal(t, LagosPrevious, SuggestRateType("lagos previous"))
	require.Equal(t, RateType(""), SuggestRateType("zzzz"))
}

func TestRateTypeNotes(t *testing.T) {
	require.True(t, Movement.HasSessionQuotes())
	require.True(t, OtherParallel.HasSessionQuotes())
	require.False(t, LagosPrevious.HasSessionQuotes())
	require.True(t, LagosPrevious.HasBuySellNote())
	require.False(t, CBN.HasBuySellNote())
}
