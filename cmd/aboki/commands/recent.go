package commands

import (
	"aboki/lib/scrapers/abokifx"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newRecentCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recent usd, gbp and eur rates.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.printer(cmd, output)
			if err != nil {
				return err
			}

			tbl, err := a.client.Recent(cmd.Context())
			if err != nil {
				return err
			}

			p.line(abokifx.QuotesLegend)
			p.line(abokifx.BuySellNote)
			return p.listing(
				abokifx.Assemble(tbl),
				table.Row{"TIMESTAMP", "USD", "GBP", "EUR"},
			)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "The output format (table or json).")
	return cmd
}
