package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AduSharma/CrickStatX/internal/ranker"
	"github.com/AduSharma/CrickStatX/internal/report"
	"github.com/AduSharma/CrickStatX/internal/service"
)

var (
	topFormat string
	topRole   string
	topLimit  int
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the top performers for a role and format",
	Long: `Rank players straight from the format's tables.

Roles:
  batsman     by career runs
  bowler      by career wickets
  wk          by stumpings, then dismissals, with batting figures joined in
  allrounder  1000+ runs and 50+ wickets, by runs plus wickets`,
	Args: cobra.NoArgs,
	RunE: runTop,
}

func init() {
	topCmd.Flags().StringVar(&topFormat, "format", "odi", "match format: test, odi or t20")
	topCmd.Flags().StringVar(&topRole, "role", string(ranker.Batsman), "batsman, bowler, wk or allrounder")
	topCmd.Flags().IntVar(&topLimit, "limit", ranker.DefaultLimit, "number of players to show")
}

func runTop(cmd *cobra.Command, args []string) error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	return queryTop(os.Stdout, svc, topFormat, topRole, topLimit)
}

func queryTop(w io.Writer, svc *service.Service, format, role string, limit int) error {
	out, err := svc.TopPerformers(format, role, limit)
	return emitResult(w, out, err, func(w io.Writer) { report.PrintLeaderboard(w, out) })
}
