package abokifx

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		text     string
		expected Row
	}{
		{
			text:     "",
			expected: Row{},
		},
		{
			text:     "25/12/2023 755 / 765* 400 / 410** 470 / 480***",
			expected: Row{"25/12/2023", "755 / 765*", "400 / 410**", "470 / 480***"},
		},
		{
			text:     "Date USD GBP EUR NGN",
			expected: Row{"Date", "USD", "GBP", "EUR", "NGN"},
		},
		{
			text:     "Buy / Sell Buy / Sell",
			expected: Row{"Buy / Sell", "Buy / Sell"},
		},
		{
			text:     "24/12/2023 468.5 / 478",
			expected: Row{"24/12/2023", "468.5", "478"},
		},
		{
			text:     "rate: 755. (approx) - 10",
			expected: Row{"rate", "755.", "approx", "10"},
		},
		{
			text:     "$$ ## !!",
			expected: Row{},
		},
	}

	for _, test := range testCases {
		row := Tokenize(test.text)
		if diff := cmp.Diff(test.expected, row); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", test.text, diff)
		}
	}
}

func TestTokenizeRejoinsCleanInput(t *testing.T) {
	inputs := []string{
		"25/12/2023 755 / 765* 400 / 410** 470 / 480***",
		"Date USD GBP EUR",
		"Buy / Sell",
		"1.5 2.75 3",
		"Western Union 24/12/2023 750 / 760",
	}

	for _, input := range inputs {
		require.Equal(t, input, strings.Join(Tokenize(input), " "))
	}
}

func TestIsNoiseRow(t *testing.T) {
	testCases := []struct {
		row   Row
		noise bool
	}{
		{row: Row{"Date", "USD", "GBP", "EUR", "NGN"}, noise: true},
		{row: Row{"NGN"}, noise: true},
		{row: Row{"Buy / Sell", "Buy / Sell"}, noise: true},
		{row: Row{"25/12/2023", "755 / 765*"}, noise: false},
		{row: Row{"ngn", "Buy", "Sell"}, noise: false},
		{row: Row{"NGNX"}, noise: false},
		{row: Row{}, noise: false},
	}

	for _, test := range testCases {
		require.Equal(t, test.noise, IsNoiseRow(test.row), "%q", test.row)
	}
}
