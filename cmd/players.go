package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AduSharma/CrickStatX/internal/report"
	"github.com/AduSharma/CrickStatX/internal/service"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List every distinct player name in the dataset",
	Args:  cobra.NoArgs,
	RunE:  runPlayers,
}

func runPlayers(cmd *cobra.Command, args []string) error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	return listPlayers(os.Stdout, svc)
}

func listPlayers(w io.Writer, svc *service.Service) error {
	names := svc.Players()
	return emit(w, names, func(w io.Writer) {
		if len(names) == 0 {
			fmt.Fprintln(w, "No players loaded.")
			return
		}
		report.PrintList(w, names)
		fmt.Fprintf(w, "\n(%d players)\n", len(names))
	})
}
