package currency

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

type Conversion struct {
	From      Code    `json:"source_currency"`
	Amount    float64 `json:"amount"`
	To        Code    `json:"target_currency"`
	Converted float64 `json:"converted_amount"`
	Rate      float64 `json:"rate"`
}

// Rounded returns the converted amount to 2 decimal places.
func (c Conversion) Rounded() float64 {
	return Round(c.Converted)
}

func Round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// ValidatePair checks that exactly one side of a conversion is the naira
// and the other is a quoted foreign currency.
func ValidatePair(from, to Code) error {
	switch {
	case from == NGN && to.IsForeign():
		return nil
	case to == NGN && from.IsForeign():
		return nil
	}
	return fmt.Errorf(
		"%w: cannot convert from %q to %q, one side must be ngn and the other one of %s",
		ErrInvalidArgument, from, to, SupportedList(),
	)
}

// Convert converts amount using the naira rate of whichever side is the
// foreign currency.
func Convert(rates RateMap, amount float64, from, to Code) (Conversion, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return Conversion{}, fmt.Errorf("%w: amount must be a non-negative number, got %v", ErrInvalidArgument, amount)
	}
	if err := ValidatePair(from, to); err != nil {
		return Conversion{}, err
	}

	foreign := to
	if from != NGN {
		foreign = from
	}
	rate, ok := rates.Get(foreign)
	if !ok {
		return Conversion{}, fmt.Errorf("%w: no rate for %q", ErrInvalidArgument, foreign)
	}
	if rate <= 0 {
		return Conversion{}, fmt.Errorf("%w: rate for %q is %v", ErrInvalidArgument, foreign, rate)
	}

	a := decimal.NewFromFloat(amount)
	r := decimal.NewFromFloat(rate)
	var converted decimal.Decimal
	if from == NGN {
		converted = a.Div(r)
	} else {
		converted = a.Mul(r)
	}

	return Conversion{
		From:      from,
		Amount:    amount,
		To:        to,
		Converted: converted.InexactFloat64(),
		Rate:      rate,
	}, nil
}
