package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/property-assistant/internal/catalog"
)

func newProjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List projects",
		Long:  "List every project in the catalog. The current project is marked with *.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := openSource()
			if err != nil {
				return err
			}
			projects, err := src.Projects()
			if err != nil {
				return err
			}

			if isJSON() {
				if projects == nil {
					projects = []catalog.Project{}
				}
				return printJSON(cmd.OutOrStdout(), projects)
			}

			units := make(map[string][]catalog.Unit, len(projects))
			for _, p := range projects {
				if units[p.ID], err = src.Units(p.ID); err != nil {
					return err
				}
			}
			var first *catalog.Project
			if len(projects) > 0 {
				first = &projects[0]
			}
			return printProjectTable(cmd.OutOrStdout(), projects, units, resolveProject("", false, first))
		},
	}
}
