package abokifx

import (
	"aboki/lib/currency"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const pairSeparator = " / "

// splitRates recovers the flat list of buy and sell quotes from a data row,
// the first token is the timestamp.
func splitRates(row Row) []string {
	if len(row) < 2 {
		return nil
	}
	return strings.Split(strings.Join(row[1:], pairSeparator), pairSeparator)
}

func parseQuote(quote string) (float64, error) {
	value, err := strconv.ParseFloat(strings.Trim(quote, "* \t\n"), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%q is not finite", quote)
	}
	return value, nil
}

// SelectCurrentRates reads the buy price of each currency from the most
// recent row of table. A currency's quotes sit at the column given by its
// position in currency.Supported, regardless of the order requested.
func SelectCurrentRates(table Table, currencies []currency.Code) (currency.RateMap, error) {
	for _, c := range currencies {
		if !c.IsForeign() {
			return currency.RateMap{}, fmt.Errorf(
				"%w: unsupported currency %q, expected one of %s",
				currency.ErrInvalidArgument, c, currency.SupportedList(),
			)
		}
	}
	if len(table.Rows) == 0 {
		return currency.RateMap{}, fmt.Errorf("%w: rate table has no rows", ErrStructure)
	}

	latest := table.Rows[0]
	quotes := splitRates(latest)

	rates := make([]currency.Rate, 0, len(currencies))
	for _, c := range currencies {
		idx := c.Column() * 2
		if idx >= len(quotes) {
			return currency.RateMap{}, fmt.Errorf(
				"%w: expected a quote for %s at position %d, the latest row %q only has %d",
				ErrStructure, c, idx, strings.Join(latest, " "), len(quotes),
			)
		}
		value, err := parseQuote(quotes[idx])
		if err != nil {
			return currency.RateMap{}, fmt.Errorf(
				"%w: quote %q for %s is not a number",
				ErrStructure, quotes[idx], c,
			)
		}
		rates = append(rates, currency.Rate{Code: c, Value: value})
	}

	return currency.NewRateMap(rates...)
}
