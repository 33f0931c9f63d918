package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AduSharma/CrickStatX/internal/ingest"
	"github.com/AduSharma/CrickStatX/internal/report"
	"github.com/AduSharma/CrickStatX/internal/service"
	"github.com/AduSharma/CrickStatX/internal/storage"
)

var (
	dataDir string
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "crickstatx",
	Short: "Cricket statistics query tool",
	Long: `Query historical batting, bowling and fielding statistics across Test, ODI
and T20 formats. Players are resolved by full name, short code, initial or surname.

The data directory must contain Batting/, Bowling/ and Fielding/ sub-directories
of CSV files whose names contain the format (test, odi, t20).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultData := os.Getenv("CRICKSTATX_DATA")
	if defaultData == "" {
		defaultData = "datasets"
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", defaultData, "dataset root directory (falls back to $CRICKSTATX_DATA)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print raw JSON payloads instead of tables")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(askCmd)
}

// loadService reads the dataset under --data. Skipped files are reported on stderr.
func loadService() (*service.Service, error) {
	ds, err := ingest.LoadDir(dataDir, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", dataDir, err)
	}
	return service.New(ds), nil
}

// openMirror copies the service's dataset into a fresh in-memory SQLite database.
func openMirror(svc *service.Service) (*storage.DB, error) {
	db, err := storage.Open(storage.MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	if err := db.LoadDataset(svc.Dataset()); err != nil {
		db.Close()
		return nil, fmt.Errorf("mirror dataset: %w", err)
	}
	return db, nil
}

// emit prints v as JSON under --json, otherwise through render.
func emit(w io.Writer, v any, render func(io.Writer)) error {
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	render(w)
	return nil
}

// emitResult prints a query result. NotFound and InvalidInput are printed as
// their payloads and are not treated as command failures.
func emitResult(w io.Writer, v any, err error, render func(io.Writer)) error {
	if err != nil {
		var nf *service.NotFoundError
		var inv *service.InvalidInputError
		if !errors.As(err, &nf) && !errors.As(err, &inv) {
			return err
		}
		p := service.Payload(err)
		return emit(w, p, func(w io.Writer) { report.PrintMessage(w, p) })
	}
	return emit(w, v, render)
}
