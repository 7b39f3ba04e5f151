package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/hickst/ssx/internal/endnote"
)

// writeCSV writes a header line followed by one line per record, with
// standard CSV quoting so the file round-trips through any CSV reader.
func writeCSV(records []endnote.Record, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(endnote.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(record.Values()); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}

	return nil
}
