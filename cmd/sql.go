package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AduSharma/CrickStatX/internal/report"
	"github.com/AduSharma/CrickStatX/internal/storage"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against an in-memory copy of the dataset",
	Long: `Load the dataset into an in-memory SQLite database and run an arbitrary query.

Schema overview:
  stat_tables(name, category, file, format, row_count)
  one table per loaded file, named <category>_<file>, e.g. batting_odi_data,
  with the file's columns plus Teams and CareerLength. Numeric cells are stored
  as numbers, missing cells as NULL.

Column names such as "100" or "4s" need double quotes:
  crickstatx sql 'SELECT Player, "100" FROM batting_odi_data ORDER BY "100" DESC LIMIT 5'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	db, err := openMirror(svc)
	if err != nil {
		return err
	}
	defer db.Close()
	return querySQL(os.Stdout, db, strings.Join(args, " "))
}

func querySQL(w io.Writer, db *storage.DB, query string) error {
	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	doc := make([]map[string]string, len(rows))
	for i, row := range rows {
		doc[i] = make(map[string]string, len(cols))
		for j, c := range cols {
			doc[i][c] = row[j]
		}
	}
	return emit(w, doc, func(w io.Writer) { report.PrintRows(w, cols, rows) })
}
