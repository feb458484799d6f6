package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/property-assistant/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start an HTTP server answering questions over a JSON API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == 0 {
				port = settings.Port
			}
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default: PA_PORT or 8080)")

	return cmd
}

func runServe(port int) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}
	svc, hist, database, err := openService(c)
	if err != nil {
		return err
	}
	defer closeDB(database)

	return web.NewServer(svc, hist).ListenAndServe(port)
}
