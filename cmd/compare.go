package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AduSharma/CrickStatX/internal/model"
	"github.com/AduSharma/CrickStatX/internal/report"
	"github.com/AduSharma/CrickStatX/internal/service"
)

var compareCmd = &cobra.Command{
	Use:   "compare <player> <player>",
	Short: "Compare two players head to head",
	Long: `Compare two players stat by stat for every category and format both appear in,
then pick a winner by weighted career score.

Either pass two arguments or a single comma-separated list:
  crickstatx compare "sachin tendulkar" "ricky ponting"
  crickstatx compare "kohli,smith"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	return queryCompare(os.Stdout, svc, args)
}

// queryCompare treats a single argument as a comma-separated list.
func queryCompare(w io.Writer, svc *service.Service, args []string) error {
	var (
		out model.Comparison
		err error
	)
	if len(args) == 1 {
		out, err = svc.Compare(args[0])
	} else {
		out, err = svc.CompareNames(args)
	}
	return emitResult(w, out, err, func(w io.Writer) { report.PrintComparison(w, out) })
}
