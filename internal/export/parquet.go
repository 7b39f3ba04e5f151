package export

import (
	"fmt"
	"os"

	"github.com/hickst/ssx/internal/endnote"
	"github.com/parquet-go/parquet-go"
)

// writeParquet writes records as a Parquet file using the parquet struct tags
// on endnote.Record for the schema.
func writeParquet(records []endnote.Record, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[endnote.Record](file)

	if len(records) > 0 {
		if _, err := writer.Write(records); err != nil {
			return fmt.Errorf("failed to write parquet rows: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}

	return nil
}
