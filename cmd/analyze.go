package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AduSharma/CrickStatX/internal/report"
	"github.com/AduSharma/CrickStatX/internal/service"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <player name>",
	Short: "Write a career narrative for every matched player",
	Long: `Aggregate a player's batting, bowling and fielding rows across all formats,
classify the role and print a short narrative. Ambiguous queries such as a
common surname produce one narrative per matched player.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	return queryAnalyze(os.Stdout, svc, strings.Join(args, " "))
}

func queryAnalyze(w io.Writer, svc *service.Service, name string) error {
	out, err := svc.Analyze(name)
	return emitResult(w, out, err, func(w io.Writer) { report.PrintSummaries(w, out) })
}
