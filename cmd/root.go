package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "ssx",
		Short: "Extract EndNote reference data to a spreadsheet",
		Long: `ssx converts an EndNote XML export into a flat spreadsheet.

Each record in the export becomes one row with a fixed set of columns
(Authors, PubDate, Title, Journal, Volume, Label, WorkType). Output can be
written as CSV, XLSX, Parquet, or JSONL.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	cmd.AddCommand(newExtractCmd())
	cmd.AddCommand(newInspectCmd())

	return cmd
}
