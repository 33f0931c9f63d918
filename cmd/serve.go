package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AduSharma/CrickStatX/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the query API over HTTP",
	Long: `Serve every query as a JSON endpoint:

  GET /                          health message
  GET /available-files           loaded files as Category/file
  GET /players                   every distinct player name
  GET /player-profile?player_name=
  GET /analyze?player_name=
  GET /tags?player_name=
  GET /compare?players=a,b
  GET /top-performers?format=odi&role=batsman&limit=10
  GET /player-filter?team=&era=&format=&sort_by=`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8000", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "  [serve] %d players loaded, listening on %s\n", len(svc.Players()), serveAddr)
	if err := server.New(svc, os.Stderr).ListenAndServe(serveAddr); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
