package commands

import (
	"aboki/lib/currency"
	"aboki/lib/scrapers/abokifx"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/text"
)

// report turns an error from a command into a message for the user.
func report(w io.Writer, err error, color bool) {
	slog.Debug("command failed", "err", err)

	var transportErr *abokifx.TransportError
	var lines []string
	switch {
	case errors.Is(err, context.Canceled):
		lines = []string{"Cancelled."}
	case errors.Is(err, abokifx.ErrEmptyResponse):
		lines = []string{
			"Error connecting. Please check network and try again.",
		}
	case errors.As(err, &transportErr):
		lines = []string{
			"Oops! Catastrophic Failure",
			transportErr.Error(),
		}
	case errors.Is(err, abokifx.ErrStructure):
		lines = []string{
			"The rates page did not look as expected, the site layout may have changed.",
			err.Error(),
		}
	case errors.Is(err, currency.ErrInvalidArgument), errors.Is(err, ErrUnsupportedFormat):
		lines = []string{err.Error(), "try --help for usage."}
	default:
		lines = []string{err.Error()}
	}

	for i, line := range lines {
		if color && i == 0 {
			line = text.FgRed.Sprint(line)
		}
		fmt.Fprintln(w, line)
	}
}
