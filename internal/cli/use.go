package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <project-id>",
		Short: "Set the current project",
		Long:  "Set the project that questions are about when ask is given no --project.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := openSource()
			if err != nil {
				return err
			}
			p, err := src.Project(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cfg.CurrentProject = p.ID
			if err := saveConfig(cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Now asking about %s (%s).\n", p.Name, p.ID)
			return nil
		},
	}
}
