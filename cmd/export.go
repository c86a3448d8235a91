package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/chriserin/gherkin2md/internal/db"
	"github.com/chriserin/gherkin2md/internal/parser"
	"github.com/chriserin/gherkin2md/internal/ui"
	"github.com/spf13/cobra"
)

var dbFlag string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Record parsed features in a SQLite database",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := ""
		if len(args) == 1 {
			target = args[0]
		}
		return RunExport(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), target, dbFlag)
	},
}

func init() {
	exportCmd.Flags().StringVar(&dbFlag, "db", "gherkin.db", "SQLite database to write to")
	rootCmd.AddCommand(exportCmd)
}

// RunExport parses target (or stdin) and appends it to the database at
// dbPath, creating the database on first use.
func RunExport(ctx context.Context, w io.Writer, stdin io.Reader, target, dbPath string) error {
	content, source, err := readInput(stdin, target)
	if err != nil {
		return err
	}
	features := parser.Parse(content)

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	counts, err := db.SaveDocument(ctx, sqlDB, source, features)
	if err != nil {
		return err
	}
	slog.Debug("exported document", "source", source, "db", dbPath, "features", counts.Features)

	ui.ExportLine(w, source, dbPath)
	ui.SummaryLine(w, counts.Features, counts.Scenarios, counts.Steps)
	return nil
}
