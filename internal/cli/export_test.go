package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportCommandWritesCSV(t *testing.T) {
	a := newTestApp(t)
	writeLog(t, a, sampleLog)
	path := filepath.Join(t.TempDir(), "today.csv")

	out := executeCommand(t, newExportCommand(context.Background(), a), "--output", path)
	assertContains(t, out, "Export completed. Rows: 4, Format: csv, File: "+path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "2025-11-02 12:00,WORK,pause-start,PAUSE_START") {
		t.Fatalf("csv missing pause row: %q", data)
	}
}

func TestExportCommandWritesExcelForPastDay(t *testing.T) {
	a := newTestApp(t)
	writeLog(t, a, sampleLog)
	path := filepath.Join(t.TempDir(), "day.out")

	out := executeCommand(t, newExportCommand(context.Background(), a),
		"--date", "2025-11-01",
		"--format", "xlsx",
		"--output", path,
	)
	assertContains(t, out, "Export completed. Rows: 1, Format: xlsx")

	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("expected non-empty workbook at %s: %v", path, err)
	}
}

func TestExportCommandRejectsUnknownFormat(t *testing.T) {
	a := newTestApp(t)

	_, err := tryCommand(newExportCommand(context.Background(), a), "--format", "pdf", "--output", filepath.Join(t.TempDir(), "x.pdf"))
	if err == nil || !strings.Contains(err.Error(), "unsupported output format") {
		t.Fatalf("export error = %v, want unsupported format", err)
	}
}

func TestExportCommandRequiresOutput(t *testing.T) {
	a := newTestApp(t)

	if _, err := tryCommand(newExportCommand(context.Background(), a)); err == nil {
		t.Fatalf("export without --output expected error")
	}
}
