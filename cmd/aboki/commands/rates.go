package commands

import (
	"aboki/lib/scrapers/abokifx"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// resolveRateType never fails, anything unrecognized falls back to the
// default type with a warning.
func resolveRateType(p printer, args []string) abokifx.RateType {
	if len(args) == 0 {
		return abokifx.DefaultRateType
	}
	t, err := abokifx.ParseRateType(args[0])
	if err == nil {
		return t
	}

	msg := fmt.Sprintf("%q is not a valid rate type, showing %s rates instead.", args[0], abokifx.DefaultRateType)
	if suggestion := abokifx.SuggestRateType(args[0]); suggestion != "" {
		msg += fmt.Sprintf(" Did you mean %q?", suggestion)
	}
	p.warn(msg)
	return abokifx.DefaultRateType
}

func newRatesCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "rates [type]",
		Short: "Show rates of a given type.",
		Long: fmt.Sprintf(
			"Show rates of a given type, one of: %s. Defaults to %s.",
			strings.Join(abokifx.RateTypeNames(), ", "),
			abokifx.DefaultRateType,
		),
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: abokifx.RateTypeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.printer(cmd, output)
			if err != nil {
				return err
			}
			rateType := resolveRateType(p, args)

			tbl, err := a.client.Rates(cmd.Context(), rateType)
			if err != nil {
				return err
			}

			if rateType.HasSessionQuotes() {
				p.line(abokifx.QuotesLegend)
			}
			if rateType.HasBuySellNote() {
				p.line(abokifx.BuySellNote)
			}
			return p.listing(abokifx.Assemble(tbl), nil)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "The output format (table or json).")
	return cmd
}
