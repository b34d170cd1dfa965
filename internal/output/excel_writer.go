package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	rowsSheet    = "Rows"
	summarySheet = "Summary"
)

// ExcelWriter writes a workbook with a Rows sheet and a Summary sheet.
type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, report Report) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), rowsSheet); err != nil {
		return fmt.Errorf("rename excel sheet: %w", err)
	}
	if _, err := file.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create excel sheet %s: %w", summarySheet, err)
	}

	if err := setRow(file, rowsSheet, 1, rowHeaders); err != nil {
		return err
	}
	for i, entry := range report.Entries {
		if err := setRow(file, rowsSheet, i+2, rowValues(entry)); err != nil {
			return err
		}
	}

	for i, pair := range summaryValues(report) {
		if err := setRow(file, summarySheet, i+1, pair[:]); err != nil {
			return err
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}

func setRow(file *excelize.File, sheet string, row int, values []string) error {
	for col, value := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		if err := file.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("set excel value %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
