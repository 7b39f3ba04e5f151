package export

import (
	"fmt"

	"github.com/hickst/ssx/internal/endnote"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Records"

// writeXLSX writes records to a single-sheet XLSX workbook with a header row.
func writeXLSX(records []endnote.Record, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	if err := setRow(f, 1, endnote.Columns); err != nil {
		return fmt.Errorf("failed to write XLSX header: %w", err)
	}

	for i, record := range records {
		if err := setRow(f, i+2, record.Values()); err != nil {
			return fmt.Errorf("failed to write XLSX row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save XLSX file: %w", err)
	}

	return nil
}

func setRow(f *excelize.File, row int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return err
		}
	}
	return nil
}
