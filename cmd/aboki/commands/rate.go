package commands

import (
	"aboki/lib/currency"
	"aboki/lib/textutil"
	"fmt"

	"github.com/spf13/cobra"
)

func parseForeign(s string) (currency.Code, error) {
	code, err := currency.ParseForeign(s)
	if err == nil {
		return code, nil
	}
	names := make([]string, len(currency.Supported))
	for i, c := range currency.Supported {
		names[i] = c.String()
	}
	if suggestion := textutil.Closest(s, names); suggestion != "" {
		return "", fmt.Errorf("%w (did you mean %q?)", err, suggestion)
	}
	return "", err
}

func newRateCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "rate [currency]",
		Aliases: []string{"r"},
		Short:   "Show the current naira rate of a currency.",
		Long:    fmt.Sprintf("Show the current naira rate of one of %s, defaults to usd.", currency.SupportedList()),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.printer(cmd, output)
			if err != nil {
				return err
			}
			code := currency.USD
			if len(args) > 0 {
				code, err = parseForeign(args[0])
				if err != nil {
					return err
				}
			}

			rates, err := a.client.CurrentRates(cmd.Context(), []currency.Code{code})
			if err != nil {
				return err
			}
			return p.rates(rates)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "The output format (table or json).")
	return cmd
}
