// Package export writes extracted EndNote records as flat spreadsheet files.
package export

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/hickst/ssx/internal/endnote"
)

// Format identifies a supported spreadsheet format.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatXLSX    Format = "xlsx"
	FormatParquet Format = "parquet"
	FormatJSONL   Format = "jsonl"
)

// DetectFormat resolves the output format. An explicit name wins; otherwise
// the format is derived from the output file extension, falling back to CSV.
func DetectFormat(name, outputPath string) (Format, error) {
	if name == "" {
		switch strings.ToLower(filepath.Ext(outputPath)) {
		case ".xlsx":
			return FormatXLSX, nil
		case ".parquet":
			return FormatParquet, nil
		case ".jsonl":
			return FormatJSONL, nil
		default:
			return FormatCSV, nil
		}
	}

	switch Format(strings.ToLower(name)) {
	case FormatCSV, FormatXLSX, FormatParquet, FormatJSONL:
		return Format(strings.ToLower(name)), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (supported: csv, xlsx, parquet, jsonl)", name)
	}
}

// Write serializes records to outputPath in the given format, overwriting any
// existing file. Every writer emits the fixed column set for every record.
func Write(records []endnote.Record, outputPath string, format Format) error {
	slog.Debug("Writing records", "path", outputPath, "format", format, "count", len(records))

	switch format {
	case FormatCSV:
		return writeCSV(records, outputPath)
	case FormatXLSX:
		return writeXLSX(records, outputPath)
	case FormatParquet:
		return writeParquet(records, outputPath)
	case FormatJSONL:
		return writeJSONL(records, outputPath)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
