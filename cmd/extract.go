package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hickst/ssx/internal/config"
	"github.com/hickst/ssx/internal/endnote"
	"github.com/hickst/ssx/internal/export"
	"github.com/spf13/cobra"
)

// exitCodeInputCheck is the dedicated exit code for a missing or unreadable
// input file, distinct from parse and write failures.
const exitCodeInputCheck = 20

func newExtractCmd() *cobra.Command {
	var inputFile string
	var outputFile string
	var format string
	var configFile string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Convert an EndNote XML export to a spreadsheet",
		Long: `Extract every record from an EndNote XML export into a flat spreadsheet.

Each record becomes one row with the fixed columns Authors, PubDate, Title,
Journal, Volume, Label, and WorkType. Missing fields become empty cells; the
authors of a record are joined into a single cell. The output format is taken
from --format, or derived from the output file extension, defaulting to CSV.`,
		Example: `  # Extract to CSV
  ssx extract -i library.xml -o library.csv

  # Extract to an XLSX workbook, picked up from the extension
  ssx extract -i library.xml -o library.xlsx

  # Force a format regardless of extension
  ssx extract -i library.xml -o library.dat --format parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			checkInputFile(inputFile)
			return executeExtract(inputFile, outputFile, format, configFile)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input-file", "i", "", "Path to a readable EndNote XML export (required)")
	cmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "Destination spreadsheet path, overwritten if present (required)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: csv, xlsx, parquet, or jsonl (default derived from output extension)")
	cmd.Flags().StringVar(&configFile, "config", "", "Optional YAML options file")

	_ = cmd.MarkFlagRequired("input-file")
	_ = cmd.MarkFlagRequired("output-file")

	return cmd
}

func executeExtract(inputFile, outputFile, formatName, configFile string) error {
	opts, err := config.Load(configFile)
	if err != nil {
		return err
	}

	if formatName == "" {
		formatName = opts.Format
	}
	format, err := export.DetectFormat(formatName, outputFile)
	if err != nil {
		return err
	}

	slog.Info("Extracting records", "input", inputFile, "output", outputFile, "format", format)

	extractor := endnote.NewExtractor(opts.Separator)
	records, err := extractor.ExtractFile(inputFile)
	if err != nil {
		return err
	}

	slog.Info("Extracted records", "count", len(records))

	if err := export.Write(records, outputFile, format); err != nil {
		return err
	}

	slog.Info("Spreadsheet written", "path", outputFile, "rows", len(records))
	return nil
}

// checkInputFile verifies the input path points to a readable file before any
// parsing happens. On failure the whole process exits with the dedicated
// validation code so callers can tell bad input apart from later failures.
func checkInputFile(path string) {
	if !readableFilePath(path) {
		fmt.Fprintf(os.Stderr, "(ssx): ERROR: a readable, valid EndNote XML dump file must be specified. Exiting...\n")
		os.Exit(exitCodeInputCheck)
	}
}

// readableFilePath tells whether path points to a readable file. Follows
// symbolic links.
func readableFilePath(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}
