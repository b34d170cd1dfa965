package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/faizmokh/stint/internal/logbook"
)

func sampleReport() Report {
	lines := []string{
		"2025-11-02 09:00; WORK; START task",
		"2025-11-02 12:00; WORK; PAUSE_START",
		"2025-11-02 12:30; WORK; PAUSE_STOP",
		"2025-11-02 17:00; WORK; STOP task",
	}
	now := time.Date(2025, time.November, 2, 17, 0, 0, 0, time.Local)
	return Report{
		Date:    now,
		Stats:   logbook.ComputeDayStatistics(lines, 0, now),
		Entries: logbook.DayEntries(lines, now),
	}
}

func TestWriterForFormat(t *testing.T) {
	if w, err := WriterForFormat(" CSV "); err != nil {
		t.Fatalf("WriterForFormat(csv) error = %v", err)
	} else if _, ok := w.(*CSVWriter); !ok {
		t.Fatalf("WriterForFormat(csv) = %T, want *CSVWriter", w)
	}
	if w, err := WriterForFormat("xlsx"); err != nil {
		t.Fatalf("WriterForFormat(xlsx) error = %v", err)
	} else if _, ok := w.(*ExcelWriter); !ok {
		t.Fatalf("WriterForFormat(xlsx) = %T, want *ExcelWriter", w)
	}
	if _, err := WriterForFormat("pdf"); err == nil {
		t.Fatalf("WriterForFormat(pdf) expected error")
	}
}

func TestDetectFormat(t *testing.T) {
	cases := map[string]string{
		"day.csv":  "csv",
		"day.XLSX": "xlsx",
		"day":      "csv",
	}
	for path, want := range cases {
		if got := DetectFormat(path); got != want {
			t.Fatalf("DetectFormat(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestCSVWriterWritesRowsAndSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.csv")
	if err := (&CSVWriter{}).Write(path, sampleReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	if len(records) != 1+4+8 {
		t.Fatalf("len(records) = %d, want 13", len(records))
	}
	if records[1][0] != "2025-11-02 09:00" || records[1][2] != "start" {
		t.Fatalf("first row = %v", records[1])
	}
	if got := records[9]; got[0] != "Hours until last entry excl. pauses" || got[1] != "7.50" {
		t.Fatalf("summary row = %v", got)
	}
}

func TestExcelWriterWritesSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.xlsx")
	if err := (&ExcelWriter{}).Write(path, sampleReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows(rowsSheet)
	if err != nil {
		t.Fatalf("GetRows(%s): %v", rowsSheet, err)
	}
	if len(rows) != 5 {
		t.Fatalf("len(rows) = %d, want 5", len(rows))
	}
	if rows[2][2] != "pause-start" {
		t.Fatalf("rows[2] = %v", rows[2])
	}

	paused, err := file.GetCellValue(summarySheet, "B8")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if paused != "0.50" {
		t.Fatalf("paused hours = %q, want 0.50", paused)
	}
}
