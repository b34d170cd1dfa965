package output

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVWriter writes the day's rows followed by a blank line and the summary.
type CSVWriter struct{}

func (w *CSVWriter) Write(path string, report Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(rowHeaders); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	for _, entry := range report.Entries {
		if err := writer.Write(rowValues(entry)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Write(nil); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	for _, pair := range summaryValues(report) {
		if err := writer.Write(pair[:]); err != nil {
			return fmt.Errorf("write csv summary: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
