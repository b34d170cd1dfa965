package output

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/faizmokh/stint/internal/logbook"
)

// Report is everything exported for one reference day.
type Report struct {
	Date    time.Time
	Stats   logbook.DayStatistics
	Entries []logbook.DayEntry
}

// Writer persists a Report to path.
type Writer interface {
	Write(path string, report Report) error
}

var rowHeaders = []string{"Time", "Category", "Kind", "Description"}

// WriterForFormat picks the writer for format ("csv", "xlsx" or "excel").
func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// DetectFormat infers the export format from the output file extension.
func DetectFormat(path string) string {
	switch strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".") {
	case "xlsx", "xlsm":
		return "xlsx"
	default:
		return "csv"
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

func rowValues(entry logbook.DayEntry) []string {
	return []string{
		entry.Row.Date.Format(logbook.DateLayout),
		entry.Row.Category,
		entry.Row.Kind.String(),
		entry.Row.Desc,
	}
}

// summaryValues lists the day totals as label/value pairs.
func summaryValues(report Report) [][2]string {
	stats := report.Stats
	hours := func(value float64) string {
		return strconv.FormatFloat(value, 'f', 2, 64)
	}
	return [][2]string{
		{"Date", report.Date.Format("2006-01-02")},
		{"Start", stats.TimeStart},
		{"Last entry", stats.TimeUntilLastEntryStop},
		{"Hours until last entry", hours(stats.HoursUntilLastEntry)},
		{"Hours until last entry excl. pauses", hours(stats.HoursUntilLastEntryWithPauses)},
		{"Hours until now", hours(stats.HoursUntilNow)},
		{"Hours until now excl. pauses", hours(stats.HoursUntilNowWithPauses)},
		{"Paused hours", hours(stats.PausedHours)},
	}
}
