package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hickst/ssx/internal/endnote"
)

// writeJSONL writes one JSON object per record, one per line.
func writeJSONL(records []endnote.Record, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}

	return nil
}
