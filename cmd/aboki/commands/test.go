package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "test",
		Aliases: []string{"t"},
		Short:   "Check that abokifx.com can be reached.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.client.Ping(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Connection to %s is working.\n", a.client.BaseUrl.Host)
			return nil
		},
	}
}
