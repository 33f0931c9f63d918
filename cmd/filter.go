package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AduSharma/CrickStatX/internal/filter"
	"github.com/AduSharma/CrickStatX/internal/report"
	"github.com/AduSharma/CrickStatX/internal/service"
)

var (
	filterEra    string
	filterFormat string
	filterSortBy string
)

var filterCmd = &cobra.Command{
	Use:   "filter <team>",
	Short: "List players who represented a team, optionally within a decade",
	Example: `  crickstatx filter india --era 1990s
  crickstatx filter australia --format odi --sort-by wkts`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVar(&filterEra, "era", "", "decade such as 1990s")
	filterCmd.Flags().StringVar(&filterFormat, "format", "", "only scan files whose name contains this (test, odi, t20)")
	filterCmd.Flags().StringVar(&filterSortBy, "sort-by", "", "rank by runs, wkts or st")
}

func runFilter(cmd *cobra.Command, args []string) error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	return queryFilter(os.Stdout, svc, filter.Query{
		Team:   strings.Join(args, " "),
		Era:    filterEra,
		Format: filterFormat,
		SortBy: filterSortBy,
	})
}

func queryFilter(w io.Writer, svc *service.Service, q filter.Query) error {
	out, err := svc.PlayerFilter(q)
	return emitResult(w, out, err, func(w io.Writer) { report.PrintPlayerList(w, out) })
}
