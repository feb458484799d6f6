package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/property-assistant/internal/history"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent searches",
		Long:  "Show the five most recent questions, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := recentSearches()
			if err != nil {
				return err
			}
			if isJSON() {
				if entries == nil {
					entries = []string{}
				}
				return printJSON(cmd.OutOrStdout(), entries)
			}
			return printHistory(cmd.OutOrStdout(), entries)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear recent searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := clearSearches(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Search history cleared.")
			return nil
		},
	})

	return cmd
}

func recentSearches() ([]string, error) {
	if flagRemote {
		return newAPIClient().History()
	}
	var entries []string
	err := withHistory(func(h *history.History) error {
		entries = h.Entries()
		return nil
	})
	return entries, err
}

func clearSearches() error {
	if flagRemote {
		return newAPIClient().ClearHistory()
	}
	return withHistory(func(h *history.History) error {
		return h.Clear()
	})
}

// withHistory loads the persisted search history for fn.
func withHistory(fn func(*history.History) error) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	h, err := history.Load(history.NewRepository(database))
	if err != nil {
		return err
	}
	return fn(h)
}
