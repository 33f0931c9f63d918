package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AduSharma/CrickStatX/internal/report"
	"github.com/AduSharma/CrickStatX/internal/service"
)

var tagsCmd = &cobra.Command{
	Use:   "tags <player name>",
	Short: "Tag each matched player with a role and a best format",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTags,
}

func runTags(cmd *cobra.Command, args []string) error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	return queryTags(os.Stdout, svc, strings.Join(args, " "))
}

func queryTags(w io.Writer, svc *service.Service, name string) error {
	out, err := svc.Tags(name)
	return emitResult(w, out, err, func(w io.Writer) { report.PrintTags(w, out) })
}
