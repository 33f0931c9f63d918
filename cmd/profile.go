package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AduSharma/CrickStatX/internal/report"
	"github.com/AduSharma/CrickStatX/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile <player name>",
	Short: "Show every raw row matched for a player",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProfile,
}

func runProfile(cmd *cobra.Command, args []string) error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	return queryProfile(os.Stdout, svc, strings.Join(args, " "))
}

func queryProfile(w io.Writer, svc *service.Service, name string) error {
	p, err := svc.Profile(name)
	return emitResult(w, p, err, func(w io.Writer) { report.PrintProfile(w, p) })
}
