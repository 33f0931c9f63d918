package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AduSharma/CrickStatX/internal/report"
	"github.com/AduSharma/CrickStatX/internal/service"
	"github.com/AduSharma/CrickStatX/internal/storage"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the loaded files and their SQL table names",
	Args:  cobra.NoArgs,
	RunE:  runFiles,
}

func runFiles(cmd *cobra.Command, args []string) error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	db, err := openMirror(svc)
	if err != nil {
		return err
	}
	defer db.Close()
	return listFiles(os.Stdout, svc, db)
}

func listFiles(w io.Writer, svc *service.Service, db *storage.DB) error {
	tables, err := db.ListTables()
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}
	files := map[string][]string{"available_files": svc.Files()}
	return emit(w, files, func(w io.Writer) { report.PrintTables(w, tables) })
}
