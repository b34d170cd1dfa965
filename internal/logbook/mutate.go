package logbook

import (
	"strings"
	"time"
)

// AppendRow returns lines with row appended. A separator goes in first when
// the log has no parseable row yet or the last one belongs to another day.
func AppendRow(lines []string, row string, at time.Time) []string {
	next := make([]string, len(lines), len(lines)+2)
	copy(next, lines)

	last, ok := LastRow(lines)
	if !ok || !SameDay(last.Date, at) {
		next = append(next, Separator)
	}
	return append(next, row)
}

// RemoveLast drops the final logical entry. Trailing blank lines are ignored
// and a separator found at the end is consumed together with the line above it.
func RemoveLast(lines []string) ([]string, string, error) {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if end == 0 {
		return lines, "", ErrEmptyLog
	}

	end--
	removed := lines[end]
	if IsSeparator(removed) {
		if end == 0 {
			return lines, "", ErrEmptyLog
		}
		end--
		removed = lines[end]
	}

	remaining := make([]string, end)
	copy(remaining, lines[:end])
	return remaining, removed, nil
}

// LastRow returns the last line of the log that parses as a row.
func LastRow(lines []string) (Row, bool) {
	for i := len(lines) - 1; i >= 0; i-- {
		if row, ok := ParseRow(lines[i]); ok {
			return row, true
		}
	}
	return Row{}, false
}
