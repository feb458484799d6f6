// Package cli defines the cobra command tree for the property assistant.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/evcraddock/property-assistant/internal/catalog"
	"github.com/evcraddock/property-assistant/internal/client"
	"github.com/evcraddock/property-assistant/internal/config"
	"github.com/evcraddock/property-assistant/internal/db"
	"github.com/evcraddock/property-assistant/internal/logging"
)

var (
	flagFormat  string
	flagDB      string
	flagNoColor bool
	flagRemote  bool

	// settings is read from the environment before any command runs.
	settings config.Config
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pa",
		Short:         "Ask questions about residential projects",
		Long:          "A rule-based assistant that answers questions about residential projects, their units, pricing and amenities.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			settings = config.Load()
			logging.Setup(os.Stderr, settings.DevMode)
			if flagNoColor {
				color.NoColor = true
			}
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.property-assistant/assistant.db)")
	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVar(&flagRemote, "remote", false, "use the API server (PA_SERVER_URL) instead of the local catalog and database")

	root.AddCommand(
		newAskCmd(),
		newProjectsCmd(),
		newShowCmd(),
		newUseCmd(),
		newFiltersCmd(),
		newHistoryCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// openDB opens the SQLite database using the --db flag, PA_DB or the
// default path.
func openDB() (*sql.DB, error) {
	path := flagDB
	if path == "" {
		path = settings.DBPath
	}
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

// loadCatalog reads the catalog named by PA_CATALOG or the embedded one.
func loadCatalog() (*catalog.Catalog, error) {
	return catalog.Load(settings.CatalogPath)
}

// newAPIClient creates an HTTP client for the assistant API.
func newAPIClient() *client.Client {
	return client.New(getServerURL())
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
