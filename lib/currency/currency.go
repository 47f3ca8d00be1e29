// Package currency holds the closed set of currencies quoted by abokifx
// and the arithmetic for converting to and from the naira.
package currency

import (
	"fmt"
	"strings"
)

var ErrInvalidArgument = fmt.Errorf("invalid argument")

type Code string

const (
	USD Code = "usd"
	GBP Code = "gbp"
	EUR Code = "eur"

	// NGN is the anchor every foreign currency is quoted against.
	NGN Code = "ngn"
)

// Supported lists the foreign currencies in the order the site lays out
// its rate columns.
var Supported = []Code{USD, GBP, EUR}

func (c Code) String() string {
	return string(c)
}

func (c Code) Upper() string {
	return strings.ToUpper(string(c))
}

func (c Code) IsForeign() bool {
	return c.Column() >= 0
}

// Column returns the position of the currency's rate pair within a row,
// or -1 if the currency is not quoted by the site.
func (c Code) Column() int {
	for i, s := range Supported {
		if s == c {
			return i
		}
	}
	return -1
}

func normalize(s string) Code {
	return Code(strings.ToLower(strings.TrimSpace(s)))
}

// ParseCode accepts any supported foreign code or the anchor code.
func ParseCode(s string) (Code, error) {
	code := normalize(s)
	if code == NGN || code.IsForeign() {
		return code, nil
	}
	return "", fmt.Errorf("%w: unknown currency %q", ErrInvalidArgument, s)
}

func ParseForeign(s string) (Code, error) {
	code := normalize(s)
	if !code.IsForeign() {
		return "", fmt.Errorf("%w: unsupported currency %q, expected one of %s", ErrInvalidArgument, s, SupportedList())
	}
	return code, nil
}

func SupportedList() string {
	names := make([]string, len(Supported))
	for i, c := range Supported {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
