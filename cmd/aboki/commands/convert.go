package commands

import (
	"aboki/lib/currency"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func parseAmount(s string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q is not a number", currency.ErrInvalidArgument, s)
	}
	return amount, nil
}

func newConvertCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "convert <amount> <from> <to>",
		Aliases: []string{"c"},
		Short:   "Convert between naira and a foreign currency at the current rate.",
		Example: `  aboki convert 5000 ngn usd
  aboki convert 20 gbp ngn`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.printer(cmd, output)
			if err != nil {
				return err
			}

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			from, err := currency.ParseCode(args[1])
			if err != nil {
				return err
			}
			to, err := currency.ParseCode(args[2])
			if err != nil {
				return err
			}
			err = currency.ValidatePair(from, to)
			if err != nil {
				return err
			}

			rates, err := a.client.CurrentRates(cmd.Context(), currency.Supported)
			if err != nil {
				return err
			}
			conversion, err := currency.Convert(rates, amount, from, to)
			if err != nil {
				return err
			}

			p.line("Conversion Successful")
			p.line("SEE HOW MUCH YOU GET IF YOU SELL")
			return p.conversion(conversion)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "The output format (table or json).")
	return cmd
}
