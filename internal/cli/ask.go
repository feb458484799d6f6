package cli

import (
	"database/sql"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/evcraddock/property-assistant/internal/assistant"
	"github.com/evcraddock/property-assistant/internal/catalog"
	"github.com/evcraddock/property-assistant/internal/history"
)

func newAskCmd() *cobra.Command {
	var (
		project string
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask a question about a project",
		Long: `Ask a question about the current project, or about every project with --all.
Quick filter labels such as "3 BHK" or "Under ₹2 Cr" are expanded to their full query.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if flagRemote {
				return runAskRemote(cmd, query, project, all)
			}
			return runAsk(cmd, query, project, all)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project id to ask about (default: current project)")
	cmd.Flags().BoolVar(&all, "all", false, "ask about every project")

	return cmd
}

func runAsk(cmd *cobra.Command, query, project string, all bool) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}
	svc, _, database, err := openService(c)
	if err != nil {
		return err
	}
	defer closeDB(database)

	result, err := svc.Ask(query, resolveProject(project, all, c.DefaultProject()))
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), assistant.NewAnswer(result))
	}
	return printResult(cmd.OutOrStdout(), result.Text, result.Units())
}

func runAskRemote(cmd *cobra.Command, query, project string, all bool) error {
	c := newAPIClient()

	var first *catalog.Project
	if project == "" && !all {
		projects, err := c.Projects()
		if err != nil {
			return err
		}
		if len(projects) > 0 {
			first = &projects[0]
		}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Thinking..."
	s.Writer = cmd.ErrOrStderr()
	s.Start()
	answer, err := c.Query(query, resolveProject(project, all, first))
	s.Stop()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), answer)
	}
	units, err := answer.Result.Units()
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), answer.Result.Text, units)
}

// resolveProject picks the project id for a question. An empty id asks
// about every project.
func resolveProject(flag string, all bool, fallback *catalog.Project) string {
	if all {
		return ""
	}
	if flag != "" {
		return flag
	}
	defaultID := ""
	if fallback != nil {
		defaultID = fallback.ID
	}
	return currentProject(defaultID)
}

// openService wires the catalog to an assistant recording into the
// persisted search history.
func openService(c *catalog.Catalog) (*assistant.Service, *history.History, *sql.DB, error) {
	database, err := openDB()
	if err != nil {
		return nil, nil, nil, err
	}
	hist, err := history.Load(history.NewRepository(database))
	if err != nil {
		closeDB(database)
		return nil, nil, nil, err
	}
	return assistant.NewService(c, hist), hist, database, nil
}
