package cmd

import (
	"fmt"
	"strings"

	"github.com/hickst/ssx/internal/endnote"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var inputFile string
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect records in an EndNote XML export",
		Long: `Inspect the records of an EndNote XML export without writing a spreadsheet.

This command is useful for checking which fields a library export actually
populates before extracting it.`,
		Example: `  # Show the first 10 records and the field presence summary
  ssx inspect -i library.xml

  # Show all records
  ssx inspect -i library.xml --limit 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			checkInputFile(inputFile)
			return executeInspect(inputFile, limit)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input-file", "i", "", "Path to a readable EndNote XML export (required)")
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of records to print (0 for all)")

	_ = cmd.MarkFlagRequired("input-file")

	return cmd
}

func executeInspect(inputFile string, limit int) error {
	extractor := endnote.NewExtractor("")
	records, err := extractor.ExtractFile(inputFile)
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %d record(s) from %s\n", len(records), inputFile)
	fmt.Println(strings.Repeat("=", 80))

	shown := len(records)
	if limit > 0 && limit < shown {
		shown = limit
	}

	for i := 0; i < shown; i++ {
		values := records[i].Values()
		fmt.Printf("\n[%d]\n", i+1)
		for j, column := range endnote.Columns {
			fmt.Printf("  %-9s %s\n", column+":", values[j])
		}
	}

	if shown < len(records) {
		fmt.Printf("\n... %d more record(s)\n", len(records)-shown)
	}

	// Presence summary over the whole export, not just the printed records.
	fmt.Println("\nField presence:")
	for j, column := range endnote.Columns {
		populated := 0
		for _, record := range records {
			if record.Values()[j] != "" {
				populated++
			}
		}
		fmt.Printf("  %-9s %d/%d\n", column, populated, len(records))
	}

	return nil
}
