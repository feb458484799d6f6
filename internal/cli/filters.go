package cli

import (
	"github.com/spf13/cobra"
)

func newFiltersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List quick filters",
		Long:  "List the quick filters. Asking with a filter's label runs its full query.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := openSource()
			if err != nil {
				return err
			}
			filters, err := src.Filters()
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), filters)
			}
			return printFilterTable(cmd.OutOrStdout(), filters)
		},
	}
}
