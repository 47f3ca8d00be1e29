// Package abokifx scrapes the parallel market rate tables published on
// abokifx.com.
package abokifx

import (
	"aboki/lib/textutil"
	"fmt"
	"strings"
)

const DefaultBaseUrl = "https://www.abokifx.com"

type RateType string

const (
	CBN           RateType = "cbn"
	Movement      RateType = "movement"
	LagosPrevious RateType = "lagos_previous"
	MoneyGram     RateType = "moneygram"
	WesternUnion  RateType = "westernunion"
	OtherParallel RateType = "otherparallel"
)

var RateTypes = []RateType{CBN, Movement, LagosPrevious, MoneyGram, WesternUnion, OtherParallel}

const DefaultRateType = CBN

func RateTypeNames() []string {
	names := make([]string, len(RateTypes))
	for i, t := range RateTypes {
		names[i] = string(t)
	}
	return names
}

var ErrUnknownRateType = fmt.Errorf("unknown rate type")

func ParseRateType(s string) (RateType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range RateTypes {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownRateType, s)
}

// SuggestRateType returns the known rate type closest to s, or "".
func SuggestRateType(s string) RateType {
	return RateType(textutil.Closest(s, RateTypeNames()))
}

// rows on these pages are stamped with asterisks for the session they
// were quoted in
func (t RateType) HasSessionQuotes() bool {
	return t == Movement || t == OtherParallel
}

func (t RateType) HasBuySellNote() bool {
	return t.HasSessionQuotes() || t == LagosPrevious
}

const QuotesLegend = "Quotes:\t*morning\t**midday\t***evening"
const BuySellNote = "**NOTE**: Buy / Sell => 90 / 100"
